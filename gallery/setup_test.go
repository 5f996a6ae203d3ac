// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/payment"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
	minimumPrice   = 2
)

func TestMain(m *testing.M) {
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// a gallery with one registry owned by owner
type fixture struct {
	g          *gallery.Gallery
	events     *event.Recorder
	owner      *account.Account
	registry   identity.Identity
	capability *gallery.Capability
}

func setupStorage(t *testing.T) {
	err := storage.Initialise(filepath.Join(t.TempDir(), "gallery.leveldb"), storage.ReadWrite)
	require.NoError(t, err, "storage initialise")
}

func teardown() {
	storage.Finalise()
}

func setup(t *testing.T) *fixture {
	setupStorage(t)

	f := &fixture{
		events: &event.Recorder{},
		owner:  newAccount(t),
	}
	f.g = gallery.New(f.events, minimumPrice, true)
	f.registry, f.capability = f.newRegistry(t, f.owner)
	f.events.Reset()
	return f
}

func (f *fixture) newRegistry(t require.TestingT, owner *account.Account) (identity.Identity, *gallery.Capability) {
	r, c, err := f.g.Init(owner)
	require.NoError(t, err, "init registry")
	return r.Identity, c
}

func newAccount(t require.TestingT) *account.Account {
	kp, err := account.NewKeyPair(true)
	require.NoError(t, err)
	return kp.Account
}

// fund an account and return a payment of the given amount from it
func (f *fixture) pay(t require.TestingT, payer *account.Account, amount uint64) *payment.Payment {
	if amount > 0 {
		_, err := f.g.Deposit(payer, amount)
		require.NoError(t, err, "deposit")
	}
	return &payment.Payment{
		Payer:  payer,
		Amount: amount,
	}
}

func details(title string, price uint64) *artwork.Details {
	return &artwork.Details{
		Title:          title,
		Description:    "d",
		Year:           2024,
		Price:          price,
		ImageReference: "https://example.org/" + title + ".png",
	}
}

// create an indexed record by artist with no fee
func (f *fixture) create(t require.TestingT, artist *account.Account, title string, price uint64) (identity.Identity, uint64) {
	id, key, err := f.g.CreateArtwork(f.registry, artist, details(title, price), f.pay(t, artist, 0))
	require.NoError(t, err, "create artwork")
	return id, key
}

// mint a held record by artist with no fee
func (f *fixture) mint(t require.TestingT, artist *account.Account, title string) identity.Identity {
	id, err := f.g.MintArtwork(f.registry, artist, details(title, 50), f.pay(t, artist, 0))
	require.NoError(t, err, "mint artwork")
	return id
}
