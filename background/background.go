// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - a long running task
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

type handle struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle to a started set of processes
type T struct {
	handles []handle
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	t := &T{
		handles: make([]handle, len(processes)),
	}

	for i, p := range processes {
		h := handle{
			shutdown: make(chan struct{}),
			finished: make(chan struct{}),
		}
		t.handles[i] = h

		go func(p Process, h handle) {
			defer close(h.finished)
			p.Run(args, h.shutdown)
		}(p, h)
	}
	return t
}

// Stop - signal every process and wait until all have returned
func (t *T) Stop() {
	if nil == t {
		return
	}
	for _, h := range t.handles {
		close(h.shutdown)
	}
	for _, h := range t.handles {
		<-h.finished
	}
}
