// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registries_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/auth"
	"github.com/bitmark-inc/gallery/rpc/fixtures"
	"github.com/bitmark-inc/gallery/rpc/mocks"
	"github.com/bitmark-inc/gallery/rpc/registries"
	"github.com/bitmark-inc/logger"
)

var registryID = identity.Identity{0x52}

func TestInit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRegistries(ctl)
	r := registries.New(logger.New(fixtures.LogCategory), core, true)

	owner, err := account.NewKeyPair(true)
	assert.Nil(t, err, "wrong key pair")

	registry := &gallery.Registry{Identity: registryID, Owner: owner.Account, Active: 1}
	capability := &gallery.Capability{}
	core.EXPECT().Init(owner.Account).Return(registry, capability, nil).Times(1)

	request := registries.InitRequest{Owner: owner.Account}
	signature, err := auth.Sign(owner, "Registries.Init", request)
	assert.Nil(t, err, "wrong sign")

	var reply registries.InitReply
	err = r.Init(&registries.InitArguments{Request: request, Signature: signature}, &reply)
	assert.Nil(t, err, "wrong Init")
	assert.Equal(t, registry, reply.Registry, "wrong registry")
	assert.Equal(t, capability, reply.Capability, "wrong capability")

	other, err := account.NewKeyPair(true)
	assert.Nil(t, err, "wrong key pair")
	forged, err := auth.Sign(other, "Registries.Init", request)
	assert.Nil(t, err, "wrong sign")

	err = r.Init(&registries.InitArguments{Request: request, Signature: forged}, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong forged Init")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRegistries(ctl)
	r := registries.New(logger.New(fixtures.LogCategory), core, true)

	registry := &gallery.Registry{Identity: registryID, Sequence: 3}
	gomock.InOrder(
		core.EXPECT().Registry(registryID).Return(registry, nil),
		core.EXPECT().Registry(identity.Identity{}).Return(nil, fault.ErrRegistryNotFound),
	)

	var reply registries.GetReply
	err := r.Get(&registries.GetArguments{Registry: registryID}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, registry, reply.Registry, "wrong registry")

	err = r.Get(&registries.GetArguments{}, &reply)
	assert.Equal(t, fault.ErrRegistryNotFound, err, "wrong unknown registry")
}

func TestArtworks(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockRegistries(ctl)
	r := registries.New(logger.New(fixtures.LogCategory), core, true)

	entries := []gallery.IndexEntry{
		{Key: 1, Record: &artwork.Record{Title: "one"}},
		{Key: 3, Record: &artwork.Record{Title: "three"}},
	}
	core.EXPECT().Artworks(registryID, uint64(0), 2).Return(entries, uint64(4), nil).Times(1)

	var reply registries.ArtworksReply
	err := r.Artworks(&registries.ArtworksArguments{Registry: registryID, Count: 2}, &reply)
	assert.Nil(t, err, "wrong Artworks")
	assert.Equal(t, entries, reply.Entries, "wrong entries")
	assert.Equal(t, uint64(4), reply.Next, "wrong next")

	for _, count := range []int{0, registries.MaximumArtworksCount + 1} {
		err = r.Artworks(&registries.ArtworksArguments{Registry: registryID, Count: count}, &reply)
		assert.Equal(t, fault.ErrInvalidCount, err, "wrong count: %d", count)
	}
}
