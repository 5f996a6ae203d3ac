// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/event"
)

// default queue length for listeners
const defaultQueueSize = 1000

// Message - one queued event
type Message struct {
	Name  string
	Event event.Event
}

// BroadcastQueue - every listener gets a copy of every message
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
	dropped   counter.Counter
}

// Bus - queues shared by the whole process
var Bus = struct {
	Events *BroadcastQueue
}{
	Events: &BroadcastQueue{},
}

// Send - queue an event for all current listeners
func (q *BroadcastQueue) Send(e event.Event) {
	if nil == e {
		return
	}
	m := Message{
		Name:  e.Name(),
		Event: e,
	}

	q.RLock()
	defer q.RUnlock()

	for _, c := range q.listeners {
		select {
		case c <- m:
		default:
			q.dropped.Increment()
		}
	}
}

// Emit - allow the queue to be used as an event sink
func (q *BroadcastQueue) Emit(e event.Event) {
	q.Send(e)
}

// Chan - register a new listener
//
// size <= 0 selects the default queue length
func (q *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	q.Lock()
	q.listeners = append(q.listeners, c)
	q.Unlock()

	return c
}

// Release - unregister a listener and close its channel
func (q *BroadcastQueue) Release(listener <-chan Message) {
	q.Lock()
	defer q.Unlock()

	for i, c := range q.listeners {
		if (<-chan Message)(c) == listener {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			close(c)
			return
		}
	}
}

// Dropped - number of messages lost to full listener queues
func (q *BroadcastQueue) Dropped() uint64 {
	return q.dropped.Uint64()
}
