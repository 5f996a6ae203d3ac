// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/messagebus"
	"github.com/bitmark-inc/gallery/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcastZapDomain = "gallery-broadcast"
	heartbeatInterval  = 60 * time.Second
	queueSize          = 1000

	// Topic - first frame of every event message
	Topic = "gallery"

	// HeartbeatTopic - first frame of heartbeat messages
	HeartbeatTopic = "heart"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	queue   <-chan messagebus.Message
	bus     *messagebus.BroadcastQueue
}

func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, bus *messagebus.BroadcastQueue) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	if 0 == len(broadcast) {
		log.Error("no broadcast addresses")
		return fault.ErrMissingParameters
	}

	err := zmqutil.StartAuthentication()
	if nil != err {
		log.Errorf("start authentication error: %s", err)
		return err
	}

	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcastZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.bus = bus
	brdc.queue = bus.Chan(queueSize)

	return nil
}

// Run - background process forwarding queued events
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	delay := time.After(heartbeatInterval)
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-delay:
			delay = time.After(heartbeatInterval)
			err := brdc.heartbeat()
			if nil != err {
				log.Errorf("heartbeat error: %s", err)
			}

		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			delay = time.After(heartbeatInterval)
			err := brdc.process(item)
			if nil != err {
				log.Errorf("send: %s  error: %s", item.Name, err)
			}
		}
	}

	brdc.bus.Release(brdc.queue)
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) process(item messagebus.Message) error {
	payload, err := Encode(item.Event)
	if nil != err {
		return err
	}

	brdc.log.Debugf("%s: %x", item.Name, payload)

	return brdc.send(Topic, item.Name, payload)
}

func (brdc *broadcaster) heartbeat() error {
	now := make([]byte, 8)
	binary.BigEndian.PutUint64(now, uint64(time.Now().Unix()))
	return brdc.send(HeartbeatTopic, "", now)
}

func (brdc *broadcaster) send(topic string, name string, payload []byte) error {
	for _, socket := range []*zmq.Socket{brdc.socket4, brdc.socket6} {
		if nil == socket {
			continue
		}
		_, err := socket.SendMessage(topic, name, payload)
		if nil != err {
			return err
		}
	}
	return nil
}
