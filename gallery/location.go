// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery

import (
	"encoding/binary"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/logger"
)

// Place - where a record currently lives
type Place byte

// the possible places
const (
	InHoldings = Place('H')
	InIndex    = Place('I')
	InCustody  = Place('C')
)

// String - place name
func (p Place) String() string {
	switch p {
	case InHoldings:
		return "holdings"
	case InIndex:
		return "index"
	case InCustody:
		return "custody"
	default:
		return "unknown"
	}
}

// MarshalText - place name for JSON
func (p Place) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText - place from its name
func (p *Place) UnmarshalText(s []byte) error {
	for _, place := range []Place{InHoldings, InIndex, InCustody} {
		if place.String() == string(s) {
			*p = place
			return nil
		}
	}
	return fault.ErrInvalidLocation
}

// Location - the single place a record lives
//
// Holder is set for InHoldings; Registry for InIndex and InCustody;
// Key only for InIndex
type Location struct {
	Place    Place             `json:"place"`
	Holder   *account.Account  `json:"holder,omitempty"`
	Registry identity.Identity `json:"registry"`
	Key      uint64            `json:"key"`
}

// key helpers
func indexKey(registryID identity.Identity, key uint64) []byte {
	buffer := make([]byte, identity.Length+8)
	copy(buffer, registryID[:])
	binary.BigEndian.PutUint64(buffer[identity.Length:], key)
	return buffer
}

func pairKey(registryID identity.Identity, id identity.Identity) []byte {
	buffer := make([]byte, 0, 2*identity.Length)
	buffer = append(buffer, registryID[:]...)
	return append(buffer, id[:]...)
}

func holdingKey(holder *account.Account, id identity.Identity) []byte {
	return append(holder.Bytes(), id[:]...)
}

// find a record; retired and unknown identities are both not found
func locate(trx storage.Transaction, id identity.Identity) (*Location, error) {
	return decodeLocation(trx.Get(storage.Pool.Locations, id[:]))
}

func decodeLocation(buffer []byte) (*Location, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrNotFound
	}

	l := &Location{
		Place: Place(buffer[0]),
	}
	data := buffer[1:]
	switch l.Place {
	case InHoldings:
		holder, err := account.AccountFromBytes(data)
		if nil != err {
			return nil, err
		}
		l.Holder = holder
	case InIndex:
		if identity.Length+8 != len(data) {
			return nil, fault.ErrInvalidLocation
		}
		copy(l.Registry[:], data[:identity.Length])
		l.Key = binary.BigEndian.Uint64(data[identity.Length:])
	case InCustody:
		if identity.Length != len(data) {
			return nil, fault.ErrInvalidLocation
		}
		copy(l.Registry[:], data)
	default:
		return nil, fault.ErrInvalidLocation
	}
	return l, nil
}

func (l *Location) encode() []byte {
	buffer := []byte{byte(l.Place)}
	switch l.Place {
	case InHoldings:
		return append(buffer, l.Holder.Bytes()...)
	case InIndex:
		return append(buffer, indexKey(l.Registry, l.Key)...)
	default:
		return append(buffer, l.Registry[:]...)
	}
}

// true if the identity was ever used
func isKnown(trx storage.Transaction, id identity.Identity) bool {
	return trx.Has(storage.Pool.Locations, id[:]) || trx.Has(storage.Pool.Retired, id[:])
}

// the move primitives below keep the location table in step with the
// record pools; each record write is paired with its location write

func putHeld(trx storage.Transaction, record *artwork.Record) {
	packed := mustPack(record)
	trx.Put(storage.Pool.Holdings, holdingKey(record.Owner, record.Identity), packed)
	l := &Location{Place: InHoldings, Holder: record.Owner}
	trx.Put(storage.Pool.Locations, record.Identity[:], l.encode())
}

func getHeld(trx storage.Transaction, holder *account.Account, id identity.Identity) *artwork.Record {
	return mustUnpack(trx.Get(storage.Pool.Holdings, holdingKey(holder, id)))
}

func removeHeld(trx storage.Transaction, holder *account.Account, id identity.Identity) {
	trx.Delete(storage.Pool.Holdings, holdingKey(holder, id))
	trx.Delete(storage.Pool.Locations, id[:])
}

func putIndexed(trx storage.Transaction, registryID identity.Identity, key uint64, record *artwork.Record) {
	trx.Put(storage.Pool.Index, indexKey(registryID, key), record.Identity[:])
	trx.Put(storage.Pool.Artworks, record.Identity[:], mustPack(record))
	l := &Location{Place: InIndex, Registry: registryID, Key: key}
	trx.Put(storage.Pool.Locations, record.Identity[:], l.encode())
}

// lookup by key; returns nil if the slot is empty
func getIndexed(trx storage.Transaction, registryID identity.Identity, key uint64) *artwork.Record {
	id := trx.Get(storage.Pool.Index, indexKey(registryID, key))
	if nil == id {
		return nil
	}
	return mustUnpack(trx.Get(storage.Pool.Artworks, id))
}

func removeIndexed(trx storage.Transaction, registryID identity.Identity, key uint64, id identity.Identity) {
	trx.Delete(storage.Pool.Index, indexKey(registryID, key))
	trx.Delete(storage.Pool.Artworks, id[:])
	trx.Delete(storage.Pool.Locations, id[:])
}

func putCustody(trx storage.Transaction, registryID identity.Identity, record *artwork.Record, price uint64) {
	k := pairKey(registryID, record.Identity)
	trx.Put(storage.Pool.Custody, k, mustPack(record))
	trx.PutN(storage.Pool.Listings, k, price)
	l := &Location{Place: InCustody, Registry: registryID}
	trx.Put(storage.Pool.Locations, record.Identity[:], l.encode())
}

func getCustody(trx storage.Transaction, registryID identity.Identity, id identity.Identity) *artwork.Record {
	return mustUnpack(trx.Get(storage.Pool.Custody, pairKey(registryID, id)))
}

func removeCustody(trx storage.Transaction, registryID identity.Identity, id identity.Identity) {
	k := pairKey(registryID, id)
	trx.Delete(storage.Pool.Custody, k)
	trx.Delete(storage.Pool.Listings, k)
	trx.Delete(storage.Pool.Locations, id[:])
}

// mark an identity as permanently used
func retire(trx storage.Transaction, registryID identity.Identity, id identity.Identity) {
	trx.Put(storage.Pool.Retired, id[:], registryID[:])
}

func mustPack(record *artwork.Record) []byte {
	packed, err := record.Pack()
	logger.PanicIfError("gallery: pack record", err)
	return packed
}

// nil in → nil out
func mustUnpack(packed []byte) *artwork.Record {
	if nil == packed {
		return nil
	}
	record, _, err := artwork.Packed(packed).Unpack()
	if nil != err {
		logger.Panicf("gallery: corrupt artwork record: %x  error: %s", packed, err)
	}
	return record
}
