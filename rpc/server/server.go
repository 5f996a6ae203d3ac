// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/gallery/chain"
	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/rpc/accounts"
	"github.com/bitmark-inc/gallery/rpc/artworks"
	"github.com/bitmark-inc/gallery/rpc/market"
	"github.com/bitmark-inc/gallery/rpc/node"
	"github.com/bitmark-inc/gallery/rpc/registries"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every gallery service registered
func Create(log *logger.L, g *gallery.Gallery, version string, chainName string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	testing := chain.IsTesting(chainName)

	server := rpc.NewServer()

	_ = server.Register(registries.New(log, g, testing))
	_ = server.Register(artworks.New(log, g, testing))
	_ = server.Register(market.New(log, g, testing))
	_ = server.Register(accounts.New(log, g))
	_ = server.Register(node.New(log, start, version, chainName, rpcCount, g))

	return server
}
