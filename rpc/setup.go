// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/metrics"
	"github.com/bitmark-inc/gallery/rpc/certificate"
	"github.com/bitmark-inc/gallery/rpc/listeners"
	"github.com/bitmark-inc/gallery/rpc/server"
	"github.com/bitmark-inc/logger"
)

const tlsName = "client_rpc"

// listener is nil until Initialise succeeds
var state struct {
	sync.Mutex
	log      *logger.L
	listener listeners.Listener
}

// open client connections, exported as a gauge
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, g *gallery.Gallery, version string, chainName string) error {
	state.Lock()
	defer state.Unlock()

	if nil != state.listener {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Read(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	// a second registration after a restart is harmless
	if err := metrics.RegisterConnections(&connectionCountRPC); nil != err {
		log.Warnf("connection gauge: %s", err)
	}

	listener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, g, version, chainName, &connectionCountRPC),
		tlsConfig,
		fingerprint,
		listeners.WithCodec(metrics.Codec),
	)
	if nil != err {
		return err
	}
	if err := listener.Serve(); nil != err {
		listener.Close()
		return err
	}

	state.log = log
	state.listener = listener
	return nil
}

// Finalise - stop accepting client connections
func Finalise() error {
	state.Lock()
	defer state.Unlock()

	if nil == state.listener {
		return fault.ErrNotInitialised
	}

	state.log.Info("shutting down…")
	state.listener.Close()
	state.listener = nil

	state.log.Info("finished")
	state.log.Flush()
	return nil
}
