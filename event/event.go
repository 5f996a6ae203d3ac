// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/identity"
)

// event names
const (
	RegistryCreatedName = "RegistryCreated"
	ArtCreatedName      = "ArtCreated"
	ArtAddedName        = "ArtAdded"
	ArtUpdatedName      = "ArtUpdated"
	ArtListedName       = "ArtListed"
	ArtDelistedName     = "ArtDelisted"
	ArtSoldName         = "ArtSold"
	ArtDeletedName      = "ArtDeleted"
)

// Names - all event names in a fixed order
var Names = []string{
	RegistryCreatedName,
	ArtCreatedName,
	ArtAddedName,
	ArtUpdatedName,
	ArtListedName,
	ArtDelistedName,
	ArtSoldName,
	ArtDeletedName,
}

// Header - common part of every event
//
// Registry is zero for records held outside any registry and then
// Sequence is also zero
type Header struct {
	Registry identity.Identity `json:"registry"`
	Sequence uint64            `json:"sequence"`
}

// Event - a single state change
//
// events are passed by pointer so that the header can be filled in
// when the owning transaction commits
type Event interface {
	Name() string
	Head() Header
	SetHead(Header)
}

// Head - the common header
func (h Header) Head() Header {
	return h
}

// SetHead - replace the common header
func (h *Header) SetHead(header Header) {
	*h = header
}

// RegistryCreated - a registry and its capability were minted
type RegistryCreated struct {
	Header
	Owner *account.Account `json:"owner"`
}

// ArtCreated - a new record was minted
type ArtCreated struct {
	Header
	Identity    identity.Identity `json:"identity"`
	Artist      *account.Account  `json:"artist"`
	Title       string            `json:"title"`
	Year        uint64            `json:"year"`
	Description string            `json:"description"`
	Indexed     bool              `json:"indexed"`
}

// ArtAdded - an existing record entered a registry index
type ArtAdded struct {
	Header
	Identity identity.Identity `json:"identity"`
	Key      uint64            `json:"key"`
	Owner    *account.Account  `json:"owner"`
}

// ArtUpdated - mutable properties were overwritten
type ArtUpdated struct {
	Header
	Identity    identity.Identity `json:"identity"`
	Owner       *account.Account  `json:"owner"`
	Title       string            `json:"title"`
	Year        uint64            `json:"year"`
	Description string            `json:"description"`
	Price       uint64            `json:"price"`
	ForSale     bool              `json:"forSale"`
}

// ArtListed - a record went into registry custody for sale
type ArtListed struct {
	Header
	Identity identity.Identity `json:"identity"`
	Owner    *account.Account  `json:"owner"`
	Price    uint64            `json:"price"`
}

// ArtDelisted - a record left custody back to its holder
type ArtDelisted struct {
	Header
	Identity identity.Identity `json:"identity"`
	Owner    *account.Account  `json:"owner"`
}

// ArtSold - ownership changed against payment
//
// Escrow is set when the payment was retained by the registry rather
// than forwarded to the seller
type ArtSold struct {
	Header
	Identity identity.Identity `json:"identity"`
	Seller   *account.Account  `json:"seller"`
	Buyer    *account.Account  `json:"buyer"`
	Price    uint64            `json:"price"`
	Escrow   bool              `json:"escrow"`
}

// ArtDeleted - a record was destroyed
type ArtDeleted struct {
	Header
	Identity identity.Identity `json:"identity"`
	Title    string            `json:"title"`
	Artist   *account.Account  `json:"artist"`
}

// Name - event name
func (RegistryCreated) Name() string { return RegistryCreatedName }

// Name - event name
func (ArtCreated) Name() string { return ArtCreatedName }

// Name - event name
func (ArtAdded) Name() string { return ArtAddedName }

// Name - event name
func (ArtUpdated) Name() string { return ArtUpdatedName }

// Name - event name
func (ArtListed) Name() string { return ArtListedName }

// Name - event name
func (ArtDelisted) Name() string { return ArtDelistedName }

// Name - event name
func (ArtSold) Name() string { return ArtSoldName }

// Name - event name
func (ArtDeleted) Name() string { return ArtDeletedName }
