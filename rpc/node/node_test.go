// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gallery/chain"
	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/rpc/fixtures"
	"github.com/bitmark-inc/gallery/rpc/mocks"
	"github.com/bitmark-inc/gallery/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPricing(ctl)
	p.EXPECT().MinimumPrice().Return(uint64(25)).Times(1)

	c := counter.Counter(5)
	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().Add(-time.Minute),
		"100",
		chain.Local,
		&c,
		p,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, "100", reply.Version, "wrong version")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, uint64(25), reply.MinimumPrice, "wrong minimum price")

	uptime, err := time.ParseDuration(reply.Uptime)
	assert.Nil(t, err, "wrong uptime format")
	assert.True(t, uptime >= time.Minute, "wrong uptime")
}
