// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"io/ioutil"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/chain"
	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/fixtures"
	"github.com/bitmark-inc/gallery/rpc/server"
	"github.com/bitmark-inc/logger"
)

var testServer *rpc.Server

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "gallery-cli")
	if nil != err {
		panic(err)
	}
	g, err := fixtures.SetupGallery(dir)
	if nil != err {
		panic(err)
	}

	c := counter.Counter(0)
	testServer = server.Create(logger.New(fixtures.LogCategory), g, "1.0", chain.Testing, &c)

	rc := m.Run()

	fixtures.TeardownGallery()
	os.RemoveAll(dir)
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// client connected to the shared server over an in memory pipe
func pipeClient(t *testing.T, keyPair *account.KeyPair) *Client {
	clientSide, serverSide := net.Pipe()
	go testServer.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	c := newClient(clientSide, keyPair, false, ioutil.Discard)
	t.Cleanup(c.Close)
	return c
}

func keyPair(t *testing.T) *account.KeyPair {
	kp, err := account.NewKeyPair(true)
	require.NoError(t, err)
	return kp
}

func details(title string, price uint64) *artwork.Details {
	return &artwork.Details{
		Title:          title,
		Description:    "ink on paper",
		Year:           1831,
		Price:          price,
		ImageReference: "ipfs://" + title,
	}
}

func TestClientWithoutKey(t *testing.T) {
	c := pipeClient(t, nil)

	_, err := c.Account()
	assert.Equal(t, fault.ErrMissingParameters, err, "account")

	_, err = c.Init()
	assert.Equal(t, fault.ErrMissingParameters, err, "init")

	info, err := c.Info()
	require.NoError(t, err, "info is unsigned")
	assert.Equal(t, chain.Testing, info.Chain)
	assert.Equal(t, uint64(fixtures.MinimumPrice), info.MinimumPrice)
}

func TestServerErrorsRestored(t *testing.T) {
	c := pipeClient(t, keyPair(t))

	_, err := c.Registry(identity.Identity{1, 2, 3})
	assert.Equal(t, fault.ErrRegistryNotFound, err, "registry")

	_, err = c.Artworks(identity.Identity{1, 2, 3}, 0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "count")

	_, err = c.Holdings(keyPair(t).Account, identity.Identity{}, 101)
	assert.Equal(t, fault.ErrInvalidCount, err, "holdings count")

	_, err = c.Artwork(identity.Identity{9})
	assert.Equal(t, fault.ErrNotFound, err, "artwork")
}

func TestCreateAndBuy(t *testing.T) {
	owner := keyPair(t)
	artist := keyPair(t)
	buyer := keyPair(t)

	registry, err := pipeClient(t, owner).Init()
	require.NoError(t, err)
	registryID := registry.Registry.Identity

	artistClient := pipeClient(t, artist)
	_, err = artistClient.Deposit(artist.Account, 5)
	require.NoError(t, err)

	created, err := artistClient.Create(registryID, details("wave", 25), 5, true)
	require.NoError(t, err)

	info, err := artistClient.ArtworkInfo(registryID, created.Key)
	require.NoError(t, err)
	assert.Equal(t, "wave", info.Info.Title)

	balance, err := artistClient.Balance(owner.Account)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), balance.Balance, "fee paid to owner")

	buyerClient := pipeClient(t, buyer)
	_, err = buyerClient.Deposit(buyer.Account, 30)
	require.NoError(t, err)

	_, err = buyerClient.Buy(registryID, created.Key, 10)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "under price")

	sold, err := buyerClient.Buy(registryID, created.Key, 30)
	require.NoError(t, err)
	assert.True(t, buyer.Account.Equal(sold.Record.Owner), "buyer owns")

	held, err := buyerClient.Holdings(buyer.Account, identity.Identity{}, 10)
	require.NoError(t, err)
	require.Len(t, held.Records, 1)
	assert.Equal(t, created.Identity, held.Records[0].Identity)
	assert.True(t, held.Next.IsZero(), "short page has no next")
}

func TestMintListPurchase(t *testing.T) {
	owner := keyPair(t)
	buyer := keyPair(t)

	ownerClient := pipeClient(t, owner)
	registry, err := ownerClient.Init()
	require.NoError(t, err)
	registryID := registry.Registry.Identity

	_, err = ownerClient.Deposit(owner.Account, 1)
	require.NoError(t, err)
	minted, err := ownerClient.Create(registryID, details("moon", 12), 1, false)
	require.NoError(t, err)

	err = ownerClient.List(registryID, registry.Capability, minted.Identity, 15)
	require.NoError(t, err)

	price, err := ownerClient.Price(registryID, minted.Identity)
	require.NoError(t, err)
	assert.True(t, price.Listed)
	assert.Equal(t, uint64(15), price.Price)

	buyerClient := pipeClient(t, buyer)
	_, err = buyerClient.Deposit(buyer.Account, 20)
	require.NoError(t, err)

	_, err = buyerClient.Purchase(registryID, minted.Identity, 20)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "escrow needs the exact price")

	sold, err := buyerClient.Purchase(registryID, minted.Identity, 15)
	require.NoError(t, err)
	assert.True(t, buyer.Account.Equal(sold.Record.Owner))

	got, err := buyerClient.Artwork(minted.Identity)
	require.NoError(t, err)
	assert.Equal(t, gallery.InHoldings, got.Location.Place)

	reg, err := buyerClient.Registry(registryID)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), reg.Registry.Escrow, "payment held in escrow")
}

func TestVerboseOutput(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	go testServer.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	buffer := &bytes.Buffer{}
	c := newClient(clientSide, nil, true, buffer)
	defer c.Close()

	_, err := c.Info()
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "Node.Info")
}
