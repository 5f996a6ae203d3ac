// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package artwork

import (
	"net/url"
	"strings"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
)

// DefaultMinimumPrice - floor for a price offered through creation or listing
const DefaultMinimumPrice = 2

// TagType - type code for packed records
type TagType uint64

// enumerate the possible packed record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	RecordTag = TagType(iota) // artwork record

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - an artwork
type Record struct {
	Identity       identity.Identity `json:"identity"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Artist         *account.Account  `json:"artist"`
	Owner          *account.Account  `json:"owner"`
	Year           uint64            `json:"year"`
	Price          uint64            `json:"price"`
	ImageReference string            `json:"imageReference"`
	ForSale        bool              `json:"forSale"`
}

// Details - the caller supplied part of a new record
type Details struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Year           uint64 `json:"year"`
	Price          uint64 `json:"price"`
	ImageReference string `json:"imageReference"`
}

// Properties - the fields an owner may overwrite
type Properties struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        uint64 `json:"year"`
	Price       uint64 `json:"price"`
	ForSale     bool   `json:"forSale"`
}

// Info - read only view returned by registry lookups
type Info struct {
	Title          string           `json:"title"`
	Owner          *account.Account `json:"owner"`
	Year           uint64           `json:"year"`
	Price          uint64           `json:"price"`
	ImageReference string           `json:"imageReference"`
	Description    string           `json:"description"`
	ForSale        bool             `json:"forSale"`
}

// schemes accepted for an image reference
var imageSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ipfs":  true,
	"ar":    true,
}

// ValidateImageReference - check that s is an absolute locator
func ValidateImageReference(s string) error {
	if "" == strings.TrimSpace(s) {
		return fault.ErrInvalidImageReference
	}
	u, err := url.Parse(s)
	if nil != err {
		return fault.ErrInvalidImageReference
	}
	scheme := strings.ToLower(u.Scheme)
	if !imageSchemes[scheme] {
		return fault.ErrInvalidImageReference
	}
	switch scheme {
	case "http", "https":
		if "" == u.Host {
			return fault.ErrInvalidImageReference
		}
	default:
		// content addressed: ipfs://<cid> or ipfs:<cid>
		if "" == u.Host && "" == u.Opaque && "" == strings.Trim(u.Path, "/") {
			return fault.ErrInvalidImageReference
		}
	}
	return nil
}

// Validate - check details for a new record offered for sale
func (d *Details) Validate(minimumPrice uint64) error {
	if d.Price <= minimumPrice {
		return fault.ErrInvalidValue
	}
	return ValidateImageReference(d.ImageReference)
}

// New - construct a record held and created by artist
//
// the record is offered for sale from the start
func New(id identity.Identity, artist *account.Account, d *Details) *Record {
	return &Record{
		Identity:       id,
		Title:          d.Title,
		Description:    d.Description,
		Artist:         artist,
		Owner:          artist,
		Year:           d.Year,
		Price:          d.Price,
		ImageReference: d.ImageReference,
		ForSale:        true,
	}
}

// Apply - overwrite the mutable fields
//
// no price floor is applied here
func (record *Record) Apply(p *Properties) {
	record.Title = p.Title
	record.Description = p.Description
	record.Year = p.Year
	record.Price = p.Price
	record.ForSale = p.ForSale
}

// IsOwnedBy - true if a is the current holder
func (record *Record) IsOwnedBy(a *account.Account) bool {
	return nil != record.Owner && record.Owner.Equal(a)
}

// Info - the lookup view of the record
func (record *Record) Info() *Info {
	return &Info{
		Title:          record.Title,
		Owner:          record.Owner,
		Year:           record.Year,
		Price:          record.Price,
		ImageReference: record.ImageReference,
		Description:    record.Description,
		ForSale:        record.ForSale,
	}
}
