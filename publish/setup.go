// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/gallery/background"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/messagebus"
	"github.com/bitmark-inc/gallery/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - publishing section of the daemon configuration
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// running is nil until Initialise succeeds
var state struct {
	sync.RWMutex
	log       *logger.L
	brdc      broadcaster
	publicKey []byte
	running   *background.T
}

// Initialise - bind the broadcast sockets and start forwarding events
// from the process message bus
func Initialise(configuration *Configuration) error {
	state.Lock()
	defer state.Unlock()

	if nil != state.running {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("publish")
	log.Info("starting…")

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("private key: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("public key: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	log.Tracef("public key: %x", publicKey)

	state.log = log
	state.publicKey = publicKey
	state.brdc = broadcaster{}
	err = state.brdc.initialise(privateKey, publicKey, configuration.Broadcast, messagebus.Bus.Events)
	if nil != err {
		return err
	}

	state.running = background.Start(background.Processes{&state.brdc}, nil)
	return nil
}

// PublicKey - server key subscribers need
func PublicKey() []byte {
	state.RLock()
	defer state.RUnlock()
	return state.publicKey
}

// Finalise - stop the broadcaster and close its sockets
func Finalise() error {
	state.Lock()
	defer state.Unlock()

	if nil == state.running {
		return fault.ErrNotInitialised
	}

	state.log.Info("shutting down…")
	state.running.Stop()
	state.running = nil

	state.log.Info("finished")
	state.log.Flush()
	return nil
}
