// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/market"
)

// List - place a held record into registry custody
func (c *Client) List(registryID identity.Identity, capability *gallery.Capability, id identity.Identity, price uint64) error {
	owner, err := c.Account()
	if nil != err {
		return err
	}
	request := market.ListRequest{
		Registry:   registryID,
		Capability: capability,
		Owner:      owner,
		Identity:   id,
		Price:      price,
	}
	signature, err := c.sign("Market.List", request)
	if nil != err {
		return err
	}
	return c.call("Market.List", &market.ListArguments{Request: request, Signature: signature}, &market.ListReply{})
}

// Delist - return a record from custody, needs only the capability
func (c *Client) Delist(registryID identity.Identity, capability *gallery.Capability, id identity.Identity) (*market.DelistReply, error) {
	arguments := market.DelistArguments{
		Registry:   registryID,
		Capability: capability,
		Identity:   id,
	}
	var reply market.DelistReply
	if err := c.call("Market.Delist", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Purchase - buy a listed record, paying the listed price
func (c *Client) Purchase(registryID identity.Identity, id identity.Identity, amount uint64) (*market.SaleReply, error) {
	buyer, err := c.Account()
	if nil != err {
		return nil, err
	}
	request := market.PurchaseRequest{
		Registry: registryID,
		Identity: id,
		Buyer:    buyer,
		Amount:   amount,
	}
	signature, err := c.sign("Market.Purchase", request)
	if nil != err {
		return nil, err
	}

	var reply market.SaleReply
	err = c.call("Market.Purchase", &market.PurchaseArguments{Request: request, Signature: signature}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Buy - buy an indexed record offered for sale
func (c *Client) Buy(registryID identity.Identity, key uint64, amount uint64) (*market.SaleReply, error) {
	buyer, err := c.Account()
	if nil != err {
		return nil, err
	}
	request := market.BuyRequest{
		Registry: registryID,
		Key:      key,
		Buyer:    buyer,
		Amount:   amount,
	}
	signature, err := c.sign("Market.Buy", request)
	if nil != err {
		return nil, err
	}

	var reply market.SaleReply
	err = c.call("Market.Buy", &market.BuyArguments{Request: request, Signature: signature}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Price - listing price of a record in custody
func (c *Client) Price(registryID identity.Identity, id identity.Identity) (*market.PriceReply, error) {
	var reply market.PriceReply
	if err := c.call("Market.Price", &market.PriceArguments{Registry: registryID, Identity: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
