// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package artworks

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
	rateLimitArtworks = 200
	rateBurstArtworks = 100
)

// Core - record operations used by this service
type Core interface {
	CreateArtwork(identity.Identity, *account.Account, *artwork.Details, *payment.Payment) (identity.Identity, uint64, error)
	MintArtwork(identity.Identity, *account.Account, *artwork.Details, *payment.Payment) (identity.Identity, error)
	AddToRegistry(identity.Identity, *account.Account, identity.Identity) (uint64, error)
	UpdateProperties(identity.Identity, *account.Account, *artwork.Properties) error
	DeleteArtwork(identity.Identity, uint64, *account.Account) error
	Delete(identity.Identity, *account.Account) error
	GetArtworkInfo(identity.Identity, uint64) (*artwork.Info, error)
	ArtworkExists(identity.Identity, uint64) bool
	Record(identity.Identity) (*artwork.Record, *gallery.Location, error)
	IsRetired(identity.Identity) bool
}

// Artworks - type for the RPC
type Artworks struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gallery Core
	Testing bool
}

// New - create the artworks service
func New(log *logger.L, core Core, testing bool) *Artworks {
	return &Artworks{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitArtworks, rateBurstArtworks),
		Gallery: core,
		Testing: testing,
	}
}

// CreateRequest - the signed part of CreateArguments
//
// Fee is paid from the artist's balance to the registry owner
type CreateRequest struct {
	Registry identity.Identity `json:"registry"`
	Artist   *account.Account  `json:"artist"`
	Details  artwork.Details   `json:"details"`
	Fee      uint64            `json:"fee"`
}

// CreateArguments - arguments for Artworks.Create and Artworks.Mint
type CreateArguments struct {
	Request   CreateRequest  `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// CreateReply - result of Artworks.Create and Artworks.Mint
//
// Key is zero for a minted record
type CreateReply struct {
	Identity identity.Identity `json:"identity"`
	Key      uint64            `json:"key"`
}

// Create - mint a record into a registry index
func (a *Artworks) Create(arguments *CreateArguments, reply *CreateReply) error {
	request, err := a.create("Artworks.Create", arguments)
	if nil != err {
		return err
	}
	details := request.Details
	id, key, err := a.Gallery.CreateArtwork(request.Registry, request.Artist, &details, fee(request))
	if nil != err {
		return err
	}
	reply.Identity = id
	reply.Key = key
	return nil
}

// Mint - mint a record into the artist's holdings
func (a *Artworks) Mint(arguments *CreateArguments, reply *CreateReply) error {
	request, err := a.create("Artworks.Mint", arguments)
	if nil != err {
		return err
	}
	details := request.Details
	id, err := a.Gallery.MintArtwork(request.Registry, request.Artist, &details, fee(request))
	if nil != err {
		return err
	}
	reply.Identity = id
	return nil
}

func (a *Artworks) create(method string, arguments *CreateArguments) (*CreateRequest, error) {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return nil, err
	}
	if nil == arguments {
		return nil, fault.ErrMissingParameters
	}
	request := &arguments.Request
	err := auth.Verify(a.Testing, request.Artist, method, arguments.Request, arguments.Signature)
	if nil != err {
		return nil, err
	}
	a.Log.Infof("%s: registry: %s  artist: %s  title: %q", method, request.Registry, request.Artist, request.Details.Title)
	return request, nil
}

func fee(request *CreateRequest) *payment.Payment {
	return &payment.Payment{
		Payer:  request.Artist,
		Amount: request.Fee,
	}
}

// AddRequest - the signed part of AddArguments
type AddRequest struct {
	Registry identity.Identity `json:"registry"`
	Owner    *account.Account  `json:"owner"`
	Identity identity.Identity `json:"identity"`
}

// AddArguments - arguments for Artworks.Add
type AddArguments struct {
	Request   AddRequest     `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// AddReply - result of Artworks.Add
type AddReply struct {
	Key uint64 `json:"key"`
}

// Add - index a held record
func (a *Artworks) Add(arguments *AddArguments, reply *AddReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	request := arguments.Request
	err := auth.Verify(a.Testing, request.Owner, "Artworks.Add", request, arguments.Signature)
	if nil != err {
		return err
	}

	a.Log.Infof("Artworks.Add: registry: %s  identity: %s", request.Registry, request.Identity)

	key, err := a.Gallery.AddToRegistry(request.Registry, request.Owner, request.Identity)
	if nil != err {
		return err
	}
	reply.Key = key
	return nil
}

// UpdateRequest - the signed part of UpdateArguments
type UpdateRequest struct {
	Identity   identity.Identity  `json:"identity"`
	Owner      *account.Account   `json:"owner"`
	Properties artwork.Properties `json:"properties"`
}

// UpdateArguments - arguments for Artworks.Update
type UpdateArguments struct {
	Request   UpdateRequest  `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// UpdateReply - result of Artworks.Update
type UpdateReply struct{}

// Update - overwrite the mutable properties of a record
func (a *Artworks) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	request := arguments.Request
	err := auth.Verify(a.Testing, request.Owner, "Artworks.Update", request, arguments.Signature)
	if nil != err {
		return err
	}

	a.Log.Infof("Artworks.Update: identity: %s", request.Identity)

	properties := request.Properties
	return a.Gallery.UpdateProperties(request.Identity, request.Owner, &properties)
}

// DeleteRequest - the signed part of DeleteArguments
//
// a non-zero registry selects the record by index key, otherwise it
// is selected by identity
type DeleteRequest struct {
	Registry identity.Identity `json:"registry"`
	Key      uint64            `json:"key"`
	Identity identity.Identity `json:"identity"`
	Owner    *account.Account  `json:"owner"`
}

// DeleteArguments - arguments for Artworks.Delete
type DeleteArguments struct {
	Request   DeleteRequest  `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// DeleteReply - result of Artworks.Delete
type DeleteReply struct{}

// Delete - destroy a record
func (a *Artworks) Delete(arguments *DeleteArguments, reply *DeleteReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	request := arguments.Request
	err := auth.Verify(a.Testing, request.Owner, "Artworks.Delete", request, arguments.Signature)
	if nil != err {
		return err
	}

	if !request.Registry.IsZero() {
		a.Log.Infof("Artworks.Delete: registry: %s  key: %d", request.Registry, request.Key)
		return a.Gallery.DeleteArtwork(request.Registry, request.Key, request.Owner)
	}
	if request.Identity.IsZero() {
		return fault.ErrMissingParameters
	}
	a.Log.Infof("Artworks.Delete: identity: %s", request.Identity)
	return a.Gallery.Delete(request.Identity, request.Owner)
}

// InfoArguments - arguments for Artworks.Info and Artworks.Exists
type InfoArguments struct {
	Registry identity.Identity `json:"registry"`
	Key      uint64            `json:"key"`
}

// InfoReply - result of Artworks.Info
type InfoReply struct {
	Info *artwork.Info `json:"info"`
}

// Info - read the record at an index key
func (a *Artworks) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	info, err := a.Gallery.GetArtworkInfo(arguments.Registry, arguments.Key)
	if nil != err {
		return err
	}
	reply.Info = info
	return nil
}

// ExistsReply - result of Artworks.Exists
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - true if an index key holds a record
func (a *Artworks) Exists(arguments *InfoArguments, reply *ExistsReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	reply.Exists = a.Gallery.ArtworkExists(arguments.Registry, arguments.Key)
	return nil
}

// GetArguments - arguments for Artworks.Get
type GetArguments struct {
	Identity identity.Identity `json:"identity"`
}

// GetReply - result of Artworks.Get
//
// for a retired identity only Retired is set
type GetReply struct {
	Record   *artwork.Record   `json:"record,omitempty"`
	Location *gallery.Location `json:"location,omitempty"`
	Retired  bool              `json:"retired"`
}

// Get - a record by identity wherever it lives
func (a *Artworks) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if a.Gallery.IsRetired(arguments.Identity) {
		reply.Retired = true
		return nil
	}
	record, location, err := a.Gallery.Record(arguments.Identity)
	if nil != err {
		return err
	}
	reply.Record = record
	reply.Location = location
	return nil
}
