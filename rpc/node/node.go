// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Pricing - source of the current price floor
type Pricing interface {
	MinimumPrice() uint64
}

// Node - type for the RPC
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Count   *counter.Counter
	Pricing Pricing
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, chain string, count *counter.Counter, pricing Pricing) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Count:   count,
		Pricing: pricing,
	}
}

// InfoArguments - empty arguments for Node.Info
type InfoArguments struct{}

// InfoReply - result of Node.Info
type InfoReply struct {
	Chain        string `json:"chain"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	RPCs         uint64 `json:"rpcs"`
	MinimumPrice uint64 `json:"minimumPrice"`
}

// Info - basic node status
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.Count.Uint64()
	reply.MinimumPrice = node.Pricing.MinimumPrice()
	return nil
}
