// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gallery/fault"
)

// Limit - block until one request is allowed
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - block until count requests are allowed
//
// a count outside 1..maximumCount still costs one request and then
// fails with ErrInvalidCount
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return reserve(limiter, count)
	}
	if err := reserve(limiter, 1); nil != err {
		return err
	}
	return fault.ErrInvalidCount
}

// a reservation larger than the burst can never succeed
func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
