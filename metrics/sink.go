// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/bitmark-inc/gallery/event"
)

// Sink - an event emitter that only counts
type Sink struct{}

// Emit - count one event
func (Sink) Emit(e event.Event) {
	EventsTotal.WithLabelValues(e.Name()).Inc()

	if sold, ok := e.(*event.ArtSold); ok {
		SalesValue.Add(float64(sold.Price))
		if sold.Escrow {
			EscrowSales.Inc()
		}
	}
}
