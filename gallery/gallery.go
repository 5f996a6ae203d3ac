// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/logger"
)

// Gallery - serialised access to all registries
//
// minimumPrice is first so 64 bit atomics stay aligned on 32 bit
// platforms
type Gallery struct {
	minimumPrice uint64

	sync.RWMutex

	log     *logger.L
	emitter event.Emitter
	testing bool
}

// New - create the registry core
//
// testing enables operations only permitted on test chains
func New(emitter event.Emitter, minimumPrice uint64, testing bool) *Gallery {
	if nil == emitter {
		emitter = event.Discard{}
	}
	return &Gallery{
		log:          logger.New("gallery"),
		emitter:      emitter,
		minimumPrice: minimumPrice,
		testing:      testing,
	}
}

// MinimumPrice - the current price floor
func (g *Gallery) MinimumPrice() uint64 {
	return atomic.LoadUint64(&g.minimumPrice)
}

// SetMinimumPrice - change the price floor for later operations
func (g *Gallery) SetMinimumPrice(price uint64) {
	old := atomic.SwapUint64(&g.minimumPrice, price)
	if old != price {
		g.log.Infof("minimum price: %d → %d", old, price)
	}
}

// a single atomic change
//
// returns the registry whose header must be saved (nil if the change
// involves no registry) and the event to emit on success
type operation func(trx storage.Transaction) (*Registry, event.Event, error)

// run an operation as one transaction and emit its event after commit
func (g *Gallery) execute(name string, op operation) error {
	g.Lock()
	defer g.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		g.log.Errorf("%s: begin transaction error: %s", name, err)
		return err
	}

	r, e, err := op(trx)
	if nil != err {
		trx.Abort()
		g.log.Debugf("%s: rejected: %s", name, err)
		return err
	}

	header := event.Header{}
	if nil != r {
		r.Events += 1
		header.Registry = r.Identity
		header.Sequence = r.Events
		err = r.save(trx)
		if nil != err {
			trx.Abort()
			g.log.Errorf("%s: save registry: %s  error: %s", name, r.Identity, err)
			return err
		}
	}

	err = trx.Commit()
	if nil != err {
		g.log.Criticalf("%s: commit error: %s", name, err)
		return err
	}

	e.SetHead(header)
	g.log.Infof("%s: registry: %s  sequence: %d", name, header.Registry, header.Sequence)
	g.emitter.Emit(e)
	return nil
}
