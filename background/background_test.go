// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gallery/background"
)

type ticker struct {
	ticks   int64
	stopped int32
	args    interface{}
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	state.args = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&state.ticks, 1)
		}
	}
	atomic.StoreInt32(&state.stopped, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	processes := background.Processes{
		p1,
		p2,
	}

	b := background.Start(processes, "arguments")
	time.Sleep(30 * time.Millisecond)
	b.Stop()

	for i, p := range []*ticker{p1, p2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&p.stopped), "process[%d] not stopped", i)
		assert.True(t, atomic.LoadInt64(&p.ticks) > 0, "process[%d] never ran", i)
		assert.Equal(t, "arguments", p.args)
	}

	// no further progress after stop
	n := atomic.LoadInt64(&p1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, n, atomic.LoadInt64(&p1.ticks))
}

func TestStopNil(t *testing.T) {
	var b *background.T
	assert.NotPanics(t, b.Stop)

	empty := background.Start(nil, nil)
	assert.NotPanics(t, empty.Stop)
}
