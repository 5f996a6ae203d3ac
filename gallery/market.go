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
	"github.com/bitmark-inc/gallery/payment"
	"github.com/bitmark-inc/gallery/storage"
)

// List - move a held record into registry custody at a price
func (g *Gallery) List(registryID identity.Identity, capability *Capability, caller *account.Account, id identity.Identity, price uint64) error {
	if nil == caller {
		return fault.ErrMissingParameters
	}
	if price <= g.MinimumPrice() {
		return fault.ErrInvalidValue
	}

	return g.execute("list", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}
		if !capability.authorises(r) {
			return nil, nil, fault.ErrNotOwner
		}

		record, err := takeHeld(trx, caller, id)
		if nil != err {
			return nil, nil, err
		}

		putCustody(trx, registryID, record, price)
		r.Active += 1

		return r, &event.ArtListed{
			Identity: id,
			Owner:    caller,
			Price:    price,
		}, nil
	})
}

// Delist - withdraw a listed record and return it to its owner
func (g *Gallery) Delist(registryID identity.Identity, capability *Capability, id identity.Identity) (*artwork.Record, error) {

	var result *artwork.Record

	err := g.execute("delist", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}
		if !capability.authorises(r) {
			return nil, nil, fault.ErrNotOwner
		}

		record := getCustody(trx, registryID, id)
		if nil == record {
			return nil, nil, fault.ErrNotFound
		}

		removeCustody(trx, registryID, id)
		putHeld(trx, record)
		r.release()

		result = record
		return r, &event.ArtDelisted{
			Identity: id,
			Owner:    record.Owner,
		}, nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// Purchase - buy a listed record, the payment is kept in escrow
//
// the payment must equal the listed price
func (g *Gallery) Purchase(registryID identity.Identity, id identity.Identity, buyer *account.Account, p *payment.Payment) (*artwork.Record, error) {
	if nil == buyer || nil == p {
		return nil, fault.ErrMissingParameters
	}

	var result *artwork.Record

	err := g.execute("purchase", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}

		price, listed := trx.GetN(storage.Pool.Listings, pairKey(registryID, id))
		if !listed {
			return nil, nil, fault.ErrNotForSale
		}
		record := getCustody(trx, registryID, id)
		if nil == record {
			return nil, nil, fault.ErrNotFound
		}
		if p.Amount != price {
			return nil, nil, fault.ErrInsufficientFunds
		}

		err = p.Collect(trx)
		if nil != err {
			return nil, nil, err
		}
		err = r.deposit(p.Amount)
		if nil != err {
			return nil, nil, err
		}

		seller := record.Owner
		record.Owner = buyer
		record.ForSale = false

		removeCustody(trx, registryID, id)
		putHeld(trx, record)
		r.release()

		result = record
		return r, &event.ArtSold{
			Identity: id,
			Seller:   seller,
			Buyer:    buyer,
			Price:    price,
			Escrow:   true,
		}, nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// BuyArtwork - buy an indexed record, the payment goes to the seller
//
// the payment must cover the record's price and is forwarded in full
func (g *Gallery) BuyArtwork(registryID identity.Identity, key uint64, buyer *account.Account, p *payment.Payment) (*artwork.Record, error) {
	if nil == buyer || nil == p {
		return nil, fault.ErrMissingParameters
	}

	var result *artwork.Record

	err := g.execute("buy", func(trx storage.Transaction) (*Registry, event.Event, error) {
		r, err := getRegistry(trx, registryID)
		if nil != err {
			return nil, nil, err
		}

		record := getIndexed(trx, registryID, key)
		if nil == record {
			return nil, nil, fault.ErrNotFound
		}
		if !record.ForSale {
			return nil, nil, fault.ErrNotForSale
		}
		if p.Amount < record.Price {
			return nil, nil, fault.ErrInsufficientFunds
		}

		if nil == p.Payer {
			return nil, nil, fault.ErrMissingParameters
		}
		seller := record.Owner
		err = payment.Transfer(trx, p.Payer, seller, p.Amount)
		if nil != err {
			return nil, nil, err
		}

		record.Owner = buyer
		record.ForSale = false

		removeIndexed(trx, registryID, key, record.Identity)
		putHeld(trx, record)
		r.release()

		result = record
		return r, &event.ArtSold{
			Identity: record.Identity,
			Seller:   seller,
			Buyer:    buyer,
			Price:    p.Amount,
			Escrow:   false,
		}, nil
	})
	if nil != err {
		return nil, err
	}
	return result, nil
}

// ListingPrice - price of a listed record
func (g *Gallery) ListingPrice(registryID identity.Identity, id identity.Identity) (uint64, bool) {
	g.RLock()
	defer g.RUnlock()
	return storage.Pool.Listings.GetN(pairKey(registryID, id))
}
