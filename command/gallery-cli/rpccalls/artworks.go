// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/artworks"
)

// Create - mint into a registry index, or into the caller's holdings
// when indexed is false
func (c *Client) Create(registryID identity.Identity, details *artwork.Details, fee uint64, indexed bool) (*artworks.CreateReply, error) {
	artist, err := c.Account()
	if nil != err {
		return nil, err
	}
	method := "Artworks.Mint"
	if indexed {
		method = "Artworks.Create"
	}

	request := artworks.CreateRequest{
		Registry: registryID,
		Artist:   artist,
		Details:  *details,
		Fee:      fee,
	}
	signature, err := c.sign(method, request)
	if nil != err {
		return nil, err
	}

	var reply artworks.CreateReply
	err = c.call(method, &artworks.CreateArguments{Request: request, Signature: signature}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Add - index a held record
func (c *Client) Add(registryID identity.Identity, id identity.Identity) (*artworks.AddReply, error) {
	owner, err := c.Account()
	if nil != err {
		return nil, err
	}
	request := artworks.AddRequest{
		Registry: registryID,
		Owner:    owner,
		Identity: id,
	}
	signature, err := c.sign("Artworks.Add", request)
	if nil != err {
		return nil, err
	}

	var reply artworks.AddReply
	err = c.call("Artworks.Add", &artworks.AddArguments{Request: request, Signature: signature}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Update - overwrite the mutable properties of an owned record
func (c *Client) Update(id identity.Identity, properties *artwork.Properties) error {
	owner, err := c.Account()
	if nil != err {
		return err
	}
	request := artworks.UpdateRequest{
		Identity:   id,
		Owner:      owner,
		Properties: *properties,
	}
	signature, err := c.sign("Artworks.Update", request)
	if nil != err {
		return err
	}
	return c.call("Artworks.Update", &artworks.UpdateArguments{Request: request, Signature: signature}, &artworks.UpdateReply{})
}

// Delete - destroy an owned record, by index key when registryID is
// set otherwise by identity
func (c *Client) Delete(registryID identity.Identity, key uint64, id identity.Identity) error {
	owner, err := c.Account()
	if nil != err {
		return err
	}
	request := artworks.DeleteRequest{
		Registry: registryID,
		Key:      key,
		Identity: id,
		Owner:    owner,
	}
	signature, err := c.sign("Artworks.Delete", request)
	if nil != err {
		return err
	}
	return c.call("Artworks.Delete", &artworks.DeleteArguments{Request: request, Signature: signature}, &artworks.DeleteReply{})
}

// ArtworkInfo - the record at an index key
func (c *Client) ArtworkInfo(registryID identity.Identity, key uint64) (*artworks.InfoReply, error) {
	var reply artworks.InfoReply
	if err := c.call("Artworks.Info", &artworks.InfoArguments{Registry: registryID, Key: key}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Artwork - a record and its location by identity
func (c *Client) Artwork(id identity.Identity) (*artworks.GetReply, error) {
	var reply artworks.GetReply
	if err := c.call("Artworks.Get", &artworks.GetArguments{Identity: id}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
