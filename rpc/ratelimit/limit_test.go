// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.NoError(t, ratelimit.Limit(limiter))

	closed := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(closed))
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.NoError(t, ratelimit.LimitN(limiter, 10, 100))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 100))
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 101, 100))

	// more than the burst can never be satisfied
	small := rate.NewLimiter(10, 5)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 6, 100))
}
