// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/payment"
	"github.com/bitmark-inc/gallery/rpc/auth"
	"github.com/bitmark-inc/gallery/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitMarket = 100
	rateBurstMarket = 50
)

// Core - escrow and sale operations used by this service
type Core interface {
	List(identity.Identity, *gallery.Capability, *account.Account, identity.Identity, uint64) error
	Delist(identity.Identity, *gallery.Capability, identity.Identity) (*artwork.Record, error)
	Purchase(identity.Identity, identity.Identity, *account.Account, *payment.Payment) (*artwork.Record, error)
	BuyArtwork(identity.Identity, uint64, *account.Account, *payment.Payment) (*artwork.Record, error)
	ListingPrice(identity.Identity, identity.Identity) (uint64, bool)
}

// Market - type for the RPC
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gallery Core
	Testing bool
}

// New - create the market service
func New(log *logger.L, core Core, testing bool) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Gallery: core,
		Testing: testing,
	}
}

// ListRequest - the signed part of ListArguments
type ListRequest struct {
	Registry   identity.Identity   `json:"registry"`
	Capability *gallery.Capability `json:"capability"`
	Owner      *account.Account    `json:"owner"`
	Identity   identity.Identity   `json:"identity"`
	Price      uint64              `json:"price"`
}

// ListArguments - arguments for Market.List
type ListArguments struct {
	Request   ListRequest    `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// ListReply - result of Market.List
type ListReply struct{}

// List - move a held record into registry custody at a price
func (m *Market) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	request := arguments.Request
	err := auth.Verify(m.Testing, request.Owner, "Market.List", request, arguments.Signature)
	if nil != err {
		return err
	}

	m.Log.Infof("Market.List: registry: %s  identity: %s  price: %d", request.Registry, request.Identity, request.Price)

	return m.Gallery.List(request.Registry, request.Capability, request.Owner, request.Identity, request.Price)
}

// DelistArguments - arguments for Market.Delist
//
// the capability alone authorises a delist
type DelistArguments struct {
	Registry   identity.Identity   `json:"registry"`
	Capability *gallery.Capability `json:"capability"`
	Identity   identity.Identity   `json:"identity"`
}

// DelistReply - result of Market.Delist
type DelistReply struct {
	Record *artwork.Record `json:"record"`
}

// Delist - return a record from custody to its owner
func (m *Market) Delist(arguments *DelistArguments, reply *DelistReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	m.Log.Infof("Market.Delist: registry: %s  identity: %s", arguments.Registry, arguments.Identity)

	record, err := m.Gallery.Delist(arguments.Registry, arguments.Capability, arguments.Identity)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// PurchaseRequest - the signed part of PurchaseArguments
//
// Amount is paid from the buyer's balance
type PurchaseRequest struct {
	Registry identity.Identity `json:"registry"`
	Identity identity.Identity `json:"identity"`
	Buyer    *account.Account  `json:"buyer"`
	Amount   uint64            `json:"amount"`
}

// PurchaseArguments - arguments for Market.Purchase
type PurchaseArguments struct {
	Request   PurchaseRequest `json:"request"`
	Signature auth.Signature  `json:"signature"`
}

// SaleReply - result of Market.Purchase and Market.Buy
type SaleReply struct {
	Record *artwork.Record `json:"record"`
}

// Purchase - buy a listed record out of custody
func (m *Market) Purchase(arguments *PurchaseArguments, reply *SaleReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	request := arguments.Request
	err := auth.Verify(m.Testing, request.Buyer, "Market.Purchase", request, arguments.Signature)
	if nil != err {
		return err
	}

	m.Log.Infof("Market.Purchase: registry: %s  identity: %s  buyer: %s", request.Registry, request.Identity, request.Buyer)

	p := &payment.Payment{Payer: request.Buyer, Amount: request.Amount}
	record, err := m.Gallery.Purchase(request.Registry, request.Identity, request.Buyer, p)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// BuyRequest - the signed part of BuyArguments
type BuyRequest struct {
	Registry identity.Identity `json:"registry"`
	Key      uint64            `json:"key"`
	Buyer    *account.Account  `json:"buyer"`
	Amount   uint64            `json:"amount"`
}

// BuyArguments - arguments for Market.Buy
type BuyArguments struct {
	Request   BuyRequest     `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// Buy - buy an indexed record offered for sale
func (m *Market) Buy(arguments *BuyArguments, reply *SaleReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	request := arguments.Request
	err := auth.Verify(m.Testing, request.Buyer, "Market.Buy", request, arguments.Signature)
	if nil != err {
		return err
	}

	m.Log.Infof("Market.Buy: registry: %s  key: %d  buyer: %s", request.Registry, request.Key, request.Buyer)

	p := &payment.Payment{Payer: request.Buyer, Amount: request.Amount}
	record, err := m.Gallery.BuyArtwork(request.Registry, request.Key, request.Buyer, p)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// PriceArguments - arguments for Market.Price
type PriceArguments struct {
	Registry identity.Identity `json:"registry"`
	Identity identity.Identity `json:"identity"`
}

// PriceReply - result of Market.Price
type PriceReply struct {
	Listed bool   `json:"listed"`
	Price  uint64 `json:"price"`
}

// Price - the escrow price of a record in custody
func (m *Market) Price(arguments *PriceArguments, reply *PriceReply) error {
	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	reply.Price, reply.Listed = m.Gallery.ListingPrice(arguments.Registry, arguments.Identity)
	return nil
}
