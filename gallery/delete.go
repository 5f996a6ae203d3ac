// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery

import (
	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/storage"
)

// DeleteArtwork - destroy the record at an index key
func (g *Gallery) DeleteArtwork(registryID identity.Identity, key uint64, caller *account.Account) error {
	if nil == caller {
		return fault.ErrMissingParameters
	}

	return g.execute("delete", func(trx storage.Transaction) (*Registry, event.Event, error) {
		return deleteIndexed(trx, registryID, key, caller)
	})
}

// Delete - destroy a record by identity wherever the caller has it
//
// records in custody must be delisted first
func (g *Gallery) Delete(id identity.Identity, caller *account.Account) error {
	if nil == caller {
		return fault.ErrMissingParameters
	}

	return g.execute("delete", func(trx storage.Transaction) (*Registry, event.Event, error) {
		l, err := locate(trx, id)
		if nil != err {
			return nil, nil, err
		}

		switch l.Place {
		case InIndex:
			return deleteIndexed(trx, l.Registry, l.Key, caller)

		case InHoldings:
			if !l.Holder.Equal(caller) {
				return nil, nil, fault.ErrNotOwner
			}
			record := getHeld(trx, caller, id)
			if nil == record {
				return nil, nil, fault.ErrNotFound
			}
			if !record.IsOwnedBy(caller) {
				return nil, nil, fault.ErrNotOwner
			}
			removeHeld(trx, caller, id)
			retire(trx, identity.Identity{}, id)
			return nil, deleted(record), nil

		default:
			return nil, nil, fault.ErrNotOwner
		}
	})
}

func deleteIndexed(trx storage.Transaction, registryID identity.Identity, key uint64, caller *account.Account) (*Registry, event.Event, error) {
	r, err := getRegistry(trx, registryID)
	if nil != err {
		return nil, nil, err
	}

	record := getIndexed(trx, registryID, key)
	if nil == record {
		return nil, nil, fault.ErrNotFound
	}
	if !record.IsOwnedBy(caller) {
		return nil, nil, fault.ErrNotOwner
	}

	removeIndexed(trx, registryID, key, record.Identity)
	retire(trx, registryID, record.Identity)
	r.release()

	return r, deleted(record), nil
}

func deleted(record *artwork.Record) event.Event {
	return &event.ArtDeleted{
		Identity: record.Identity,
		Title:    record.Title,
		Artist:   record.Artist,
	}
}
