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

// UpdateProperties - overwrite the mutable fields of a record
//
// the record must be held or indexed with caller as owner; a record in
// custody cannot be changed until it is delisted
//
// no minimum price applies here
func (g *Gallery) UpdateProperties(id identity.Identity, caller *account.Account, properties *artwork.Properties) error {
	if nil == caller || nil == properties {
		return fault.ErrMissingParameters
	}

	return g.execute("update", func(trx storage.Transaction) (*Registry, event.Event, error) {
		l, err := locate(trx, id)
		if nil != err {
			return nil, nil, err
		}

		var r *Registry
		var record *artwork.Record

		switch l.Place {
		case InHoldings:
			if !l.Holder.Equal(caller) {
				return nil, nil, fault.ErrNotOwner
			}
			record = getHeld(trx, caller, id)

		case InIndex:
			r, err = getRegistry(trx, l.Registry)
			if nil != err {
				return nil, nil, err
			}
			record = getIndexed(trx, l.Registry, l.Key)

		default:
			return nil, nil, fault.ErrNotOwner
		}

		if nil == record {
			return nil, nil, fault.ErrNotFound
		}
		if !record.IsOwnedBy(caller) {
			return nil, nil, fault.ErrNotOwner
		}

		record.Apply(properties)

		if InIndex == l.Place {
			putIndexed(trx, l.Registry, l.Key, record)
		} else {
			putHeld(trx, record)
		}

		return r, &event.ArtUpdated{
			Identity:    id,
			Owner:       caller,
			Title:       record.Title,
			Year:        record.Year,
			Description: record.Description,
			Price:       record.Price,
			ForSale:     record.ForSale,
		}, nil
	})
}
