// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/messagebus"
)

func items() []event.Event {
	return []event.Event{
		&event.RegistryCreated{},
		&event.ArtCreated{Title: "one"},
		&event.ArtDeleted{Title: "one"},
	}
}

func TestBroadcast(t *testing.T) {
	q := &messagebus.BroadcastQueue{}

	// nothing listening so these are discarded
	for _, e := range items() {
		q.Send(e)
	}
	assert.Equal(t, uint64(0), q.Dropped())

	const listeners = 5
	queues := make([]<-chan messagebus.Message, listeners)
	for i := range queues {
		queues[i] = q.Chan(0)
	}

	for _, e := range items() {
		q.Emit(e)
	}

	var wg sync.WaitGroup
	for i, c := range queues {
		wg.Add(1)
		go func(n int, c <-chan messagebus.Message) {
			defer wg.Done()
			for _, e := range items() {
				received := <-c
				assert.Equal(t, e.Name(), received.Name, "listener[%d]", n)
				assert.Equal(t, e, received.Event, "listener[%d]", n)
			}
		}(i, c)
	}
	wg.Wait()
}

func TestFullQueueDrops(t *testing.T) {
	q := &messagebus.BroadcastQueue{}
	c := q.Chan(2)

	for _, e := range items() {
		q.Send(e)
	}
	q.Send(nil)

	assert.Equal(t, uint64(1), q.Dropped())
	assert.Equal(t, event.RegistryCreatedName, (<-c).Name)
	assert.Equal(t, event.ArtCreatedName, (<-c).Name)
}

func TestRelease(t *testing.T) {
	q := &messagebus.BroadcastQueue{}
	c1 := q.Chan(10)
	c2 := q.Chan(10)

	q.Release(c1)
	_, ok := <-c1
	require.False(t, ok, "released channel must be closed")

	q.Send(&event.ArtListed{})
	m := <-c2
	assert.Equal(t, event.ArtListedName, m.Name)
	assert.Equal(t, uint64(0), q.Dropped())
}

func TestGlobalBus(t *testing.T) {
	c := messagebus.Bus.Events.Chan(1)
	defer messagebus.Bus.Events.Release(c)

	var emitter event.Emitter = messagebus.Bus.Events
	emitter.Emit(&event.ArtSold{Price: 7})

	m := <-c
	sold, ok := m.Event.(*event.ArtSold)
	require.True(t, ok)
	assert.Equal(t, uint64(7), sold.Price)
}
