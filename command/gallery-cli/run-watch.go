// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/golang/protobuf/proto"
	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/gallery/publish"
	"github.com/bitmark-inc/gallery/zmqutil"
)

type watchedEvent struct {
	Name         string `json:"name"`
	Registry     string `json:"registry,omitempty"`
	Sequence     uint64 `json:"sequence"`
	Identity     string `json:"identity,omitempty"`
	Key          uint64 `json:"key,omitempty"`
	Owner        string `json:"owner,omitempty"`
	Counterparty string `json:"counterparty,omitempty"`
	Title        string `json:"title,omitempty"`
	Price        uint64 `json:"price,omitempty"`
	ForSale      bool   `json:"forSale,omitempty"`
	Escrow       bool   `json:"escrow,omitempty"`
	Indexed      bool   `json:"indexed,omitempty"`
}

func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	publisher := c.String("publisher")
	if "" == publisher {
		return fmt.Errorf("publisher is required")
	}
	serverKeyFile := c.String("server-key")
	if "" == serverKeyFile {
		return fmt.Errorf("server-key is required")
	}
	serverKey, err := zmqutil.ReadPublicKeyFile(serverKeyFile)
	if nil != err {
		return err
	}

	// a throwaway client key, the publisher does not check clients
	publicText, privateText, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}
	subscriber, err := zmqutil.NewSubscriber(
		[]byte(zmq.Z85decode(privateText)),
		[]byte(zmq.Z85decode(publicText)),
		0,
	)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	err = subscriber.Connect(publisher, serverKey, publish.Topic)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "subscribed: %s\n", subscriber)
	}

	limit := c.Int("limit")
	for n := 0; 0 == limit || n < limit; n++ {
		data, err := subscriber.Receive()
		if nil != err {
			return err
		}
		if 3 != len(data) {
			fmt.Fprintf(m.e, "ignored %d part message\n", len(data))
			continue
		}

		message := &publish.Message{}
		err = proto.Unmarshal(data[2], message)
		if nil != err {
			return err
		}

		err = printJson(m.w, watchedEvent{
			Name:         string(data[1]),
			Registry:     hex.EncodeToString(message.Registry),
			Sequence:     message.Sequence,
			Identity:     hex.EncodeToString(message.Identity),
			Key:          message.Key,
			Owner:        message.Owner,
			Counterparty: message.Counterparty,
			Title:        message.Title,
			Price:        message.Price,
			ForSale:      message.ForSale,
			Escrow:       message.Escrow,
			Indexed:      message.Indexed,
		})
		if nil != err {
			return err
		}
	}
	return nil
}
