// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/gallery/fault"
)

const (
	publicKeySize  = 32
	privateKeySize = 32
	identifierSize = 32
)

// Subscriber - CURVE client side of a publisher
type Subscriber struct {
	publicKey  []byte
	privateKey []byte
	timeout    time.Duration
	address    string
	socket     *zmq.Socket
}

// NewSubscriber - create an unconnected subscriber
//
// a zero timeout waits for ever on Receive
func NewSubscriber(privateKey []byte, publicKey []byte, timeout time.Duration) (*Subscriber, error) {
	if publicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidPublicKey
	}
	if privateKeySize != len(privateKey) {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &Subscriber{
		publicKey:  append([]byte{}, publicKey...),
		privateKey: append([]byte{}, privateKey...),
		timeout:    timeout,
	}, nil
}

// Connect - subscribe to a publisher at "host:port"
//
// topics filter on the first frame; none receives everything
func (s *Subscriber) Connect(hostPort string, serverPublicKey []byte, topics ...string) error {
	if publicKeySize != len(serverPublicKey) {
		return fault.ErrInvalidPublicKey
	}
	address, v6, err := CanonicalAddress(hostPort)
	if nil != err {
		return err
	}

	s.Close()

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return err
	}

	random := make([]byte, identifierSize)
	if _, err := rand.Read(random); nil != err {
		socket.Close()
		return err
	}

	if 0 == len(topics) {
		topics = []string{""}
	}

	settings := []func() error{
		func() error { return socket.SetCurveServer(0) },
		func() error { return socket.SetCurvePublickey(string(s.publicKey)) },
		func() error { return socket.SetCurveSecretkey(string(s.privateKey)) },
		func() error { return socket.SetCurveServerkey(string(serverPublicKey)) },
		func() error { return socket.SetIdentity(string(random)) },
		func() error { return socket.SetLinger(0) },
		func() error { return socket.SetIpv6(v6) },
	}
	if 0 != s.timeout {
		settings = append(settings, func() error { return socket.SetRcvtimeo(s.timeout) })
	}
	for _, topic := range topics {
		topic := topic
		settings = append(settings, func() error { return socket.SetSubscribe(topic) })
	}
	settings = append(settings, func() error { return socket.Connect(address) })

	for _, set := range settings {
		if err := set(); nil != err {
			socket.Close()
			return err
		}
	}

	s.socket = socket
	s.address = address
	return nil
}

// Receive - wait for the next multipart message
func (s *Subscriber) Receive() ([][]byte, error) {
	if nil == s.socket {
		return nil, fault.ErrNotConnected
	}
	return s.socket.RecvMessageBytes(0)
}

// Close - disconnect, the subscriber can connect again later
func (s *Subscriber) Close() error {
	if nil == s.socket {
		return nil
	}
	err := s.socket.Close()
	s.socket = nil
	s.address = ""
	return err
}

// String - endpoint in use
func (s *Subscriber) String() string {
	return s.address
}
