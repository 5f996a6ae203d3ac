// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registries

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/auth"
	"github.com/bitmark-inc/gallery/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	// MaximumArtworksCount - largest page of index entries
	MaximumArtworksCount = 100

	rateLimitRegistries = 200
	rateBurstRegistries = 100
)

// Core - registry operations used by this service
type Core interface {
	Init(*account.Account) (*gallery.Registry, *gallery.Capability, error)
	Registry(identity.Identity) (*gallery.Registry, error)
	Artworks(identity.Identity, uint64, int) ([]gallery.IndexEntry, uint64, error)
}

// Registries - type for the RPC
type Registries struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gallery Core
	Testing bool
}

// New - create the registries service
func New(log *logger.L, core Core, testing bool) *Registries {
	return &Registries{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistries, rateBurstRegistries),
		Gallery: core,
		Testing: testing,
	}
}

// InitRequest - the signed part of InitArguments
type InitRequest struct {
	Owner *account.Account `json:"owner"`
}

// InitArguments - arguments for Registries.Init
type InitArguments struct {
	Request   InitRequest    `json:"request"`
	Signature auth.Signature `json:"signature"`
}

// InitReply - result of Registries.Init
//
// the capability is only ever returned here
type InitReply struct {
	Registry   *gallery.Registry   `json:"registry"`
	Capability *gallery.Capability `json:"capability"`
}

// Init - create a registry owned by the signer
func (r *Registries) Init(arguments *InitArguments, reply *InitReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	owner := arguments.Request.Owner
	err := auth.Verify(r.Testing, owner, "Registries.Init", arguments.Request, arguments.Signature)
	if nil != err {
		return err
	}

	r.Log.Infof("Registries.Init: owner: %s", owner)

	registry, capability, err := r.Gallery.Init(owner)
	if nil != err {
		return err
	}
	reply.Registry = registry
	reply.Capability = capability
	return nil
}

// GetArguments - arguments for Registries.Get
type GetArguments struct {
	Registry identity.Identity `json:"registry"`
}

// GetReply - result of Registries.Get
type GetReply struct {
	Registry *gallery.Registry `json:"registry"`
}

// Get - registry header including its owner
func (r *Registries) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r.Log.Debugf("Registries.Get: %s", arguments.Registry)

	registry, err := r.Gallery.Registry(arguments.Registry)
	if nil != err {
		return err
	}
	reply.Registry = registry
	return nil
}

// ArtworksArguments - arguments for Registries.Artworks
type ArtworksArguments struct {
	Registry identity.Identity `json:"registry"`
	Start    uint64            `json:"start"`
	Count    int               `json:"count"`
}

// ArtworksReply - result of Registries.Artworks
type ArtworksReply struct {
	Entries []gallery.IndexEntry `json:"entries"`
	Next    uint64               `json:"next"`
}

// Artworks - page through a registry index
func (r *Registries) Artworks(arguments *ArtworksArguments, reply *ArtworksReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(r.Limiter, arguments.Count, MaximumArtworksCount); nil != err {
		return err
	}

	r.Log.Debugf("Registries.Artworks: %+v", arguments)

	entries, next, err := r.Gallery.Artworks(arguments.Registry, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Entries = entries
	reply.Next = next
	return nil
}
