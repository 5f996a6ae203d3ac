// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/payment"
	"github.com/bitmark-inc/gallery/storage"
)

// CreateArtwork - mint a record directly into a registry index
//
// the payment is a minting fee and goes in full to the registry owner;
// returns the new identity and its index key
func (g *Gallery) CreateArtwork(registryID identity.Identity, caller *account.Account, details *artwork.Details, p *payment.Payment) (identity.Identity, uint64, error) {
	if nil == caller || nil == details {
		return identity.Identity{}, 0, fault.ErrMissingParameters
	}
	err := details.Validate(g.MinimumPrice())
	if nil != err {
		return identity.Identity{}, 0, err
	}

	var id identity.Identity
	var key uint64

	err = g.execute("create", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}

		err = collectFee(trx, r, p)
		if nil != err {
			return nil, nil, err
		}

		key = r.nextKey()
		seq := make([]byte, 8)
		binary.BigEndian.PutUint64(seq, key)
		id = identity.Derive([]byte("artwork"), registryID[:], seq)
		if isKnown(trx, id) {
			return nil, nil, fault.ErrAlreadyExists
		}

		record := artwork.New(id, caller, details)
		putIndexed(trx, registryID, key, record)

		return r, &event.ArtCreated{
			Identity:    id,
			Artist:      caller,
			Title:       record.Title,
			Year:        record.Year,
			Description: record.Description,
			Indexed:     true,
		}, nil
	})
	if nil != err {
		return identity.Identity{}, 0, err
	}
	return id, key, nil
}

// MintArtwork - mint a record into the caller's holdings
//
// the registry only collects the minting fee; the record can later be
// indexed with AddToRegistry or listed
func (g *Gallery) MintArtwork(registryID identity.Identity, caller *account.Account, details *artwork.Details, p *payment.Payment) (identity.Identity, error) {
	if nil == caller || nil == details {
		return identity.Identity{}, fault.ErrMissingParameters
	}
	err := details.Validate(g.MinimumPrice())
	if nil != err {
		return identity.Identity{}, err
	}

	var id identity.Identity

	err = g.execute("mint", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}

		err = collectFee(trx, r, p)
		if nil != err {
			return nil, nil, err
		}

		nonce := make([]byte, 16)
		if _, err := rand.Read(nonce); nil != err {
			return nil, nil, err
		}
		id = identity.Derive([]byte("mint"), registryID[:], caller.Bytes(), nonce)
		if isKnown(trx, id) {
			return nil, nil, fault.ErrAlreadyExists
		}

		record := artwork.New(id, caller, details)
		putHeld(trx, record)

		return r, &event.ArtCreated{
			Identity:    id,
			Artist:      caller,
			Title:       record.Title,
			Year:        record.Year,
			Description: record.Description,
			Indexed:     false,
		}, nil
	})
	if nil != err {
		return identity.Identity{}, err
	}
	return id, nil
}

// AddToRegistry - index a record the caller holds
//
// returns the new index key
func (g *Gallery) AddToRegistry(registryID identity.Identity, caller *account.Account, id identity.Identity) (uint64, error) {
	if nil == caller {
		return 0, fault.ErrMissingParameters
	}

	var key uint64

	err := g.execute("add", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}

		record, err := takeHeld(trx, caller, id)
		if nil != err {
			return nil, nil, err
		}

		key = r.nextKey()
		putIndexed(trx, registryID, key, record)

		return r, &event.ArtAdded{
			Identity: id,
			Key:      key,
			Owner:    caller,
		}, nil
	})
	if nil != err {
		return 0, err
	}
	return key, nil
}

// move the fee from the payer to the registry owner
func collectFee(trx storage.Transaction, r *Registry, p *payment.Payment) error {
	err := p.Collect(trx)
	if nil != err {
		return err
	}
	return payment.Credit(trx, r.Owner, p.Amount)
}

// remove a record from the caller's holdings
//
// the caller must be both the holder and the record's owner
func takeHeld(trx storage.Transaction, caller *account.Account, id identity.Identity) (*artwork.Record, error) {
	l, err := locate(trx, id)
	if nil != err {
		return nil, err
	}
	if InHoldings != l.Place || !l.Holder.Equal(caller) {
		return nil, fault.ErrNotOwner
	}
	record := getHeld(trx, caller, id)
	if nil == record {
		return nil, fault.ErrNotFound
	}
	if !record.IsOwnedBy(caller) {
		return nil, fault.ErrNotOwner
	}
	removeHeld(trx, caller, id)
	return record, nil
}
