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
	"github.com/bitmark-inc/gallery/payment"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/logger"
)

// maximum number of records returned by one page
const maximumPageSize = 100

// IndexEntry - one slot of a registry index
type IndexEntry struct {
	Key    uint64          `json:"key"`
	Record *artwork.Record `json:"record"`
}

// GetArtworkInfo - the record at an index key
func (g *Gallery) GetArtworkInfo(registryID identity.Identity, key uint64) (*artwork.Info, error) {
	g.RLock()
	defer g.RUnlock()

	record, err := readIndexed(registryID, key)
	if nil != err {
		return nil, err
	}
	return record.Info(), nil
}

// ArtworkExists - true if an index key holds a record
func (g *Gallery) ArtworkExists(registryID identity.Identity, key uint64) bool {
	g.RLock()
	defer g.RUnlock()

	return storage.Pool.Index.Has(indexKey(registryID, key))
}

// Record - fetch a record by identity from wherever it lives
func (g *Gallery) Record(id identity.Identity) (*artwork.Record, *Location, error) {
	g.RLock()
	defer g.RUnlock()

	l, err := decodeLocation(storage.Pool.Locations.Get(id[:]))
	if nil != err {
		return nil, nil, err
	}

	var record *artwork.Record
	switch l.Place {
	case InHoldings:
		record = mustUnpack(storage.Pool.Holdings.Get(holdingKey(l.Holder, id)))
	case InIndex:
		record = mustUnpack(storage.Pool.Artworks.Get(id[:]))
	case InCustody:
		record = mustUnpack(storage.Pool.Custody.Get(pairKey(l.Registry, id)))
	}
	if nil == record {
		logger.Panicf("gallery: location without record: %s", id)
	}
	return record, l, nil
}

// IsRetired - true if a record was deleted
func (g *Gallery) IsRetired(id identity.Identity) bool {
	g.RLock()
	defer g.RUnlock()

	return storage.Pool.Retired.Has(id[:])
}

// Artworks - page through a registry index from a starting key
//
// returns the entries and the key to start the next page from
func (g *Gallery) Artworks(registryID identity.Identity, start uint64, count int) ([]IndexEntry, uint64, error) {
	if count <= 0 || count > maximumPageSize {
		return nil, 0, fault.ErrInvalidCount
	}

	g.RLock()
	defer g.RUnlock()

	if !storage.Pool.Registries.Has(registryID[:]) {
		return nil, 0, fault.ErrRegistryNotFound
	}

	cursor := storage.Pool.Index.NewFetchCursor().Prefix(registryID[:]).Seek(indexKey(registryID, start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	entries := make([]IndexEntry, 0, len(elements))
	next := start
	for _, e := range elements {
		key := binary.BigEndian.Uint64(e.Key[identity.Length:])
		record := mustUnpack(storage.Pool.Artworks.Get(e.Value))
		if nil == record {
			logger.Panicf("gallery: index without record: %x", e.Value)
		}
		entries = append(entries, IndexEntry{
			Key:    key,
			Record: record,
		})
		next = key + 1
	}
	return entries, next, nil
}

// Holdings - page through the records an account holds directly
//
// start is exclusive; use the zero identity for the first page
func (g *Gallery) Holdings(holder *account.Account, start identity.Identity, count int) ([]*artwork.Record, error) {
	if nil == holder {
		return nil, fault.ErrMissingParameters
	}
	if count <= 0 || count > maximumPageSize {
		return nil, fault.ErrInvalidCount
	}

	g.RLock()
	defer g.RUnlock()

	cursor := storage.Pool.Holdings.NewFetchCursor().Prefix(holder.Bytes())
	if !start.IsZero() {
		cursor.Seek(append(holdingKey(holder, start), 0x00))
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]*artwork.Record, 0, len(elements))
	for _, e := range elements {
		records = append(records, mustUnpack(e.Value))
	}
	return records, nil
}

// Balance - committed balance of an account
func (g *Gallery) Balance(a *account.Account) uint64 {
	g.RLock()
	defer g.RUnlock()

	return payment.Balance(a)
}

// Deposit - fund an account, only on test chains
func (g *Gallery) Deposit(a *account.Account, amount uint64) (uint64, error) {
	if !g.testing {
		return 0, fault.ErrNotAvailableDuringTesting
	}
	if nil == a {
		return 0, fault.ErrMissingParameters
	}

	g.Lock()
	defer g.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	err = payment.Credit(trx, a, amount)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	balance := payment.BalanceIn(trx, a)
	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	g.log.Infof("deposit: %s  amount: %d  balance: %d", a, amount, balance)
	return balance, nil
}

func readIndexed(registryID identity.Identity, key uint64) (*artwork.Record, error) {
	id := storage.Pool.Index.Get(indexKey(registryID, key))
	if nil == id {
		return nil, fault.ErrNotFound
	}
	record := mustUnpack(storage.Pool.Artworks.Get(id))
	if nil == record {
		logger.Panicf("gallery: index without record: %x", id)
	}
	return record, nil
}
