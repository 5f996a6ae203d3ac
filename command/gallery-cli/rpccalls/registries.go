// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/node"
	"github.com/bitmark-inc/gallery/rpc/registries"
)

// Info - status of the connected node
func (c *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Init - create a registry owned by the signing account
func (c *Client) Init() (*registries.InitReply, error) {
	owner, err := c.Account()
	if nil != err {
		return nil, err
	}
	request := registries.InitRequest{Owner: owner}
	signature, err := c.sign("Registries.Init", request)
	if nil != err {
		return nil, err
	}

	var reply registries.InitReply
	err = c.call("Registries.Init", &registries.InitArguments{Request: request, Signature: signature}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Registry - read a registry header
func (c *Client) Registry(id identity.Identity) (*registries.GetReply, error) {
	var reply registries.GetReply
	if err := c.call("Registries.Get", &registries.GetArguments{Registry: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Artworks - one page of a registry index
func (c *Client) Artworks(id identity.Identity, start uint64, count int) (*registries.ArtworksReply, error) {
	arguments := registries.ArtworksArguments{
		Registry: id,
		Start:    start,
		Count:    count,
	}
	var reply registries.ArtworksReply
	if err := c.call("Registries.Artworks", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
