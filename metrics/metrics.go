// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/messagebus"
)

const namespace = "gallery"

var (
	// EventsTotal - committed events by name
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "total",
		Help:      "Total events emitted after commit",
	}, []string{"name"})

	// SalesValue - sum of amounts paid in completed sales
	SalesValue = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "market",
		Name:      "sales_value_total",
		Help:      "Total amount paid for sold artworks",
	})

	// EscrowSales - sales whose payment was kept by the registry
	EscrowSales = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "market",
		Name:      "escrow_sales_total",
		Help:      "Total sales settled into registry escrow",
	})

	// RPCCallsTotal - completed RPC calls by method and result
	RPCCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc",
		Name:      "calls_total",
		Help:      "Total RPC calls answered",
	}, []string{"method", "result"})

	// DroppedEvents - events the message bus could not deliver
	DroppedEvents = promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "bus",
		Name:      "dropped_events",
		Help:      "Events dropped because a listener queue was full",
	}, func() float64 {
		return float64(messagebus.Bus.Events.Dropped())
	})
)

// RegisterConnections - export the open RPC connection count
func RegisterConnections(count *counter.Counter) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "rpc",
		Name:      "connections",
		Help:      "Open client RPC connections",
	}, func() float64 {
		return float64(count.Uint64())
	})
	return prometheus.Register(gauge)
}
