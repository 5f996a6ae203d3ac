// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
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
	"github.com/bitmark-inc/gallery/rpc/accounts"
	"github.com/bitmark-inc/gallery/rpc/artworks"
	"github.com/bitmark-inc/gallery/rpc/auth"
	"github.com/bitmark-inc/gallery/rpc/fixtures"
	"github.com/bitmark-inc/gallery/rpc/market"
	"github.com/bitmark-inc/gallery/rpc/node"
	"github.com/bitmark-inc/gallery/rpc/registries"
	"github.com/bitmark-inc/gallery/rpc/server"
	"github.com/bitmark-inc/logger"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "gallery-rpc")
	if nil != err {
		panic(err)
	}
	g, err := fixtures.SetupGallery(dir)
	if nil != err {
		panic(err)
	}

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), g, "1.0", chain.Testing, &c)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()
	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	fixtures.TeardownGallery()
	os.RemoveAll(dir)
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func dial(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", address)
	require.NoError(t, err)
	client := jsonrpc.NewClient(conn)
	t.Cleanup(func() { client.Close() })
	return client
}

func newKeyPair(t *testing.T) *account.KeyPair {
	kp, err := account.NewKeyPair(true)
	require.NoError(t, err)
	return kp
}

func sign(t *testing.T, kp *account.KeyPair, method string, request interface{}) auth.Signature {
	s, err := auth.Sign(kp, method, request)
	require.NoError(t, err)
	return s
}

func fund(t *testing.T, client *rpc.Client, a *account.Account, amount uint64) {
	var reply accounts.BalanceReply
	err := client.Call("Accounts.Deposit", &accounts.DepositArguments{Account: a, Amount: amount}, &reply)
	require.NoError(t, err)
}

func initRegistry(t *testing.T, client *rpc.Client, owner *account.KeyPair) registries.InitReply {
	request := registries.InitRequest{Owner: owner.Account}
	arguments := registries.InitArguments{
		Request:   request,
		Signature: sign(t, owner, "Registries.Init", request),
	}
	var reply registries.InitReply
	require.NoError(t, client.Call("Registries.Init", &arguments, &reply))
	return reply
}

func create(t *testing.T, client *rpc.Client, method string, registryID identity.Identity, artist *account.KeyPair, title string, price uint64, fee uint64) (artworks.CreateReply, error) {
	request := artworks.CreateRequest{
		Registry: registryID,
		Artist:   artist.Account,
		Details: artwork.Details{
			Title:          title,
			Description:    "oil on canvas",
			Year:           1889,
			Price:          price,
			ImageReference: "https://example.com/" + title + ".png",
		},
		Fee: fee,
	}
	arguments := artworks.CreateArguments{
		Request:   request,
		Signature: sign(t, artist, method, request),
	}
	var reply artworks.CreateReply
	err := client.Call(method, &arguments, &reply)
	return reply, err
}

func TestNodeInfo(t *testing.T) {
	client := dial(t)

	var reply node.InfoReply
	require.NoError(t, client.Call("Node.Info", &node.InfoArguments{}, &reply))
	assert.Equal(t, chain.Testing, reply.Chain, "chain")
	assert.Equal(t, "1.0", reply.Version, "version")
	assert.Equal(t, uint64(fixtures.MinimumPrice), reply.MinimumPrice, "minimum price")
}

func TestRegistryCreateAndBuy(t *testing.T) {
	client := dial(t)

	owner := newKeyPair(t)
	artist := newKeyPair(t)
	buyer := newKeyPair(t)

	registry := initRegistry(t, client, owner)
	require.NotNil(t, registry.Registry, "registry")
	require.NotNil(t, registry.Capability, "capability")
	assert.True(t, owner.Account.Equal(registry.Registry.Owner), "owner")

	var got registries.GetReply
	require.NoError(t, client.Call("Registries.Get", &registries.GetArguments{Registry: registry.Registry.Identity}, &got))
	assert.True(t, owner.Account.Equal(got.Registry.Owner), "get owner")

	fund(t, client, artist.Account, 10)
	created, err := create(t, client, "Artworks.Create", registry.Registry.Identity, artist, "starry", 50, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.Key, "first key")

	var ownerBalance accounts.BalanceReply
	require.NoError(t, client.Call("Accounts.Balance", &accounts.BalanceArguments{Account: owner.Account}, &ownerBalance))
	assert.Equal(t, uint64(10), ownerBalance.Balance, "fee to registry owner")

	info := artworks.InfoArguments{Registry: registry.Registry.Identity, Key: created.Key}
	var infoReply artworks.InfoReply
	require.NoError(t, client.Call("Artworks.Info", &info, &infoReply))
	assert.Equal(t, "starry", infoReply.Info.Title, "title")
	assert.True(t, artist.Account.Equal(infoReply.Info.Owner), "info owner")

	var exists artworks.ExistsReply
	require.NoError(t, client.Call("Artworks.Exists", &info, &exists))
	assert.True(t, exists.Exists, "exists")

	var page registries.ArtworksReply
	pageArguments := registries.ArtworksArguments{Registry: registry.Registry.Identity, Start: 0, Count: 10}
	require.NoError(t, client.Call("Registries.Artworks", &pageArguments, &page))
	require.Len(t, page.Entries, 1, "entries")

	fund(t, client, buyer.Account, 60)
	buy := market.BuyRequest{
		Registry: registry.Registry.Identity,
		Key:      created.Key,
		Buyer:    buyer.Account,
		Amount:   50,
	}
	var sold market.SaleReply
	err = client.Call("Market.Buy", &market.BuyArguments{Request: buy, Signature: sign(t, buyer, "Market.Buy", buy)}, &sold)
	require.NoError(t, err)
	assert.True(t, buyer.Account.Equal(sold.Record.Owner), "new owner")
	assert.False(t, sold.Record.ForSale, "for sale")

	require.NoError(t, client.Call("Artworks.Exists", &info, &exists))
	assert.False(t, exists.Exists, "left the index")

	var held accounts.HoldingsReply
	require.NoError(t, client.Call("Accounts.Holdings", &accounts.HoldingsArguments{Holder: buyer.Account, Count: 10}, &held))
	require.Len(t, held.Records, 1, "held")
	assert.Equal(t, created.Identity, held.Records[0].Identity, "held identity")
	assert.True(t, held.Next.IsZero(), "last page")

	var get artworks.GetReply
	require.NoError(t, client.Call("Artworks.Get", &artworks.GetArguments{Identity: created.Identity}, &get))
	assert.Equal(t, gallery.InHoldings, get.Location.Place, "place")
	assert.True(t, buyer.Account.Equal(get.Location.Holder), "holder")
}

func TestListPurchaseDelist(t *testing.T) {
	client := dial(t)

	owner := newKeyPair(t)
	artist := newKeyPair(t)
	buyer := newKeyPair(t)

	registry := initRegistry(t, client, owner)
	registryID := registry.Registry.Identity

	fund(t, client, artist.Account, 2)
	first, err := create(t, client, "Artworks.Mint", registryID, artist, "first", 30, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first.Key, "minted records have no key")
	second, err := create(t, client, "Artworks.Mint", registryID, artist, "second", 30, 1)
	require.NoError(t, err)

	for _, id := range []identity.Identity{first.Identity, second.Identity} {
		list := market.ListRequest{
			Registry:   registryID,
			Capability: registry.Capability,
			Owner:      artist.Account,
			Identity:   id,
			Price:      40,
		}
		err = client.Call("Market.List", &market.ListArguments{Request: list, Signature: sign(t, artist, "Market.List", list)}, &market.ListReply{})
		require.NoError(t, err)
	}

	var price market.PriceReply
	require.NoError(t, client.Call("Market.Price", &market.PriceArguments{Registry: registryID, Identity: first.Identity}, &price))
	assert.True(t, price.Listed, "listed")
	assert.Equal(t, uint64(40), price.Price, "price")

	fund(t, client, buyer.Account, 40)
	purchase := market.PurchaseRequest{
		Registry: registryID,
		Identity: first.Identity,
		Buyer:    buyer.Account,
		Amount:   40,
	}
	var sold market.SaleReply
	err = client.Call("Market.Purchase", &market.PurchaseArguments{Request: purchase, Signature: sign(t, buyer, "Market.Purchase", purchase)}, &sold)
	require.NoError(t, err)
	assert.True(t, buyer.Account.Equal(sold.Record.Owner), "buyer owns")

	require.NoError(t, client.Call("Market.Price", &market.PriceArguments{Registry: registryID, Identity: first.Identity}, &price))
	assert.False(t, price.Listed, "no longer listed")

	var delisted market.DelistReply
	err = client.Call("Market.Delist", &market.DelistArguments{Registry: registryID, Capability: registry.Capability, Identity: second.Identity}, &delisted)
	require.NoError(t, err)
	assert.True(t, artist.Account.Equal(delisted.Record.Owner), "returned to artist")

	var get artworks.GetReply
	require.NoError(t, client.Call("Artworks.Get", &artworks.GetArguments{Identity: second.Identity}, &get))
	assert.Equal(t, gallery.InHoldings, get.Location.Place, "place")
	assert.True(t, artist.Account.Equal(get.Location.Holder), "holder")
}

func TestUpdateAndDelete(t *testing.T) {
	client := dial(t)

	owner := newKeyPair(t)
	artist := newKeyPair(t)
	registry := initRegistry(t, client, owner)
	registryID := registry.Registry.Identity

	fund(t, client, artist.Account, 2)
	created, err := create(t, client, "Artworks.Create", registryID, artist, "draft", 30, 1)
	require.NoError(t, err)

	update := artworks.UpdateRequest{
		Identity: created.Identity,
		Owner:    artist.Account,
		Properties: artwork.Properties{
			Title:   "final",
			Year:    1890,
			Price:   35,
			ForSale: false,
		},
	}
	err = client.Call("Artworks.Update", &artworks.UpdateArguments{Request: update, Signature: sign(t, artist, "Artworks.Update", update)}, &artworks.UpdateReply{})
	require.NoError(t, err)

	var infoReply artworks.InfoReply
	require.NoError(t, client.Call("Artworks.Info", &artworks.InfoArguments{Registry: registryID, Key: created.Key}, &infoReply))
	assert.Equal(t, "final", infoReply.Info.Title, "title")
	assert.False(t, infoReply.Info.ForSale, "for sale")

	remove := artworks.DeleteRequest{
		Registry: registryID,
		Key:      created.Key,
		Owner:    artist.Account,
	}
	err = client.Call("Artworks.Delete", &artworks.DeleteArguments{Request: remove, Signature: sign(t, artist, "Artworks.Delete", remove)}, &artworks.DeleteReply{})
	require.NoError(t, err)

	var get artworks.GetReply
	require.NoError(t, client.Call("Artworks.Get", &artworks.GetArguments{Identity: created.Identity}, &get))
	assert.True(t, get.Retired, "retired")
	assert.Nil(t, get.Record, "no record")

	minted, err := create(t, client, "Artworks.Mint", registryID, artist, "sketch", 30, 1)
	require.NoError(t, err)
	remove = artworks.DeleteRequest{
		Identity: minted.Identity,
		Owner:    artist.Account,
	}
	err = client.Call("Artworks.Delete", &artworks.DeleteArguments{Request: remove, Signature: sign(t, artist, "Artworks.Delete", remove)}, &artworks.DeleteReply{})
	require.NoError(t, err)

	remove = artworks.DeleteRequest{Owner: artist.Account}
	err = client.Call("Artworks.Delete", &artworks.DeleteArguments{Request: remove, Signature: sign(t, artist, "Artworks.Delete", remove)}, &artworks.DeleteReply{})
	require.Error(t, err)
	assert.Equal(t, fault.ErrMissingParameters.Error(), err.Error(), "no target")
}

func TestSignatureChecks(t *testing.T) {
	client := dial(t)

	owner := newKeyPair(t)
	other := newKeyPair(t)

	request := registries.InitRequest{Owner: owner.Account}
	arguments := registries.InitArguments{
		Request:   request,
		Signature: sign(t, other, "Registries.Init", request),
	}
	err := client.Call("Registries.Init", &arguments, &registries.InitReply{})
	require.Error(t, err)
	assert.Equal(t, fault.ErrInvalidSignature.Error(), err.Error(), "signed by another key")

	arguments.Signature = sign(t, owner, "Artworks.Create", request)
	err = client.Call("Registries.Init", &arguments, &registries.InitReply{})
	require.Error(t, err)
	assert.Equal(t, fault.ErrInvalidSignature.Error(), err.Error(), "signed for another method")

	live, err := account.NewKeyPair(false)
	require.NoError(t, err)
	request = registries.InitRequest{Owner: live.Account}
	arguments = registries.InitArguments{
		Request:   request,
		Signature: sign(t, live, "Registries.Init", request),
	}
	err = client.Call("Registries.Init", &arguments, &registries.InitReply{})
	require.Error(t, err)
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey.Error(), err.Error(), "live key on test chain")
}

func TestPageCounts(t *testing.T) {
	client := dial(t)
	owner := newKeyPair(t)

	err := client.Call("Registries.Artworks", &registries.ArtworksArguments{Count: 0}, &registries.ArtworksReply{})
	require.Error(t, err)
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "zero count")

	err = client.Call("Accounts.Holdings", &accounts.HoldingsArguments{Holder: owner.Account, Count: accounts.MaximumHoldingsCount + 1}, &accounts.HoldingsReply{})
	require.Error(t, err)
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "too many")
}
