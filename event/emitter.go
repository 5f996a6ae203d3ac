// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
)

// Emitter - receives events after commit
//
// implementations must not block for long since emission happens with
// the registry still serialised
type Emitter interface {
	Emit(Event)
}

// Discard - emitter that drops everything
type Discard struct{}

// Emit - drop the event
func (Discard) Emit(Event) {}

// Fanout - send each event to every emitter in order
type Fanout []Emitter

// Emit - forward to all
func (f Fanout) Emit(e Event) {
	for _, emitter := range f {
		emitter.Emit(e)
	}
}

// Recorder - keeps every event in memory
type Recorder struct {
	sync.Mutex
	events []Event
}

// Emit - append to the record
func (r *Recorder) Emit(e Event) {
	r.Lock()
	r.events = append(r.events, e)
	r.Unlock()
}

// Events - copy of all events so far
func (r *Recorder) Events() []Event {
	r.Lock()
	defer r.Unlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}

// Names - names of all events so far
func (r *Recorder) Names() []string {
	r.Lock()
	defer r.Unlock()
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.Name()
	}
	return names
}

// Last - most recent event or nil
func (r *Recorder) Last() Event {
	r.Lock()
	defer r.Unlock()
	if 0 == len(r.events) {
		return nil
	}
	return r.events[len(r.events)-1]
}

// Reset - forget all events
func (r *Recorder) Reset() {
	r.Lock()
	r.events = nil
	r.Unlock()
}

// Logger - writes each event to a log channel
type Logger struct {
	log *logger.L
}

// NewLogger - emitter writing to the named log channel
func NewLogger(name string) *Logger {
	return &Logger{
		log: logger.New(name),
	}
}

// Emit - log the event as JSON
func (l *Logger) Emit(e Event) {
	buffer, err := json.Marshal(e)
	if nil != err {
		l.log.Errorf("%s: marshal error: %s", e.Name(), err)
		return
	}
	h := e.Head()
	l.log.Infof("%s[%s:%d]: %s", e.Name(), h.Registry, h.Sequence, buffer)
}
