// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/gallery/artwork"
)

func runCreate(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}
	details := &artwork.Details{
		Title:          c.String("title"),
		Description:    c.String("description"),
		Year:           c.Uint64("year"),
		Price:          c.Uint64("price"),
		ImageReference: c.String("image"),
	}
	if "" == details.Title {
		return fmt.Errorf("title is required")
	}
	if err := artwork.ValidateImageReference(details.ImageReference); nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Create(registryID, details, c.Uint64("fee"), !c.Bool("held"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runAdd(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}
	id, err := checkIdentity(c, "identity")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Add(registryID, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runUpdate(c *cli.Context) error {
	id, err := checkIdentity(c, "identity")
	if nil != err {
		return err
	}
	properties := &artwork.Properties{
		Title:       c.String("title"),
		Description: c.String("description"),
		Year:        c.Uint64("year"),
		Price:       c.Uint64("price"),
		ForSale:     c.Bool("for-sale"),
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.Update(id, properties)
	if nil != err {
		return err
	}
	return printJson(m.w, properties)
}

func runDelete(c *cli.Context) error {
	registryID, err := optionalIdentity(c, "registry")
	if nil != err {
		return err
	}
	id, err := optionalIdentity(c, "identity")
	if nil != err {
		return err
	}
	if registryID.IsZero() == id.IsZero() {
		return fmt.Errorf("one of registry and identity is required")
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.Delete(registryID, c.Uint64("index"), id)
}

func runArtwork(c *cli.Context) error {
	registryID, err := optionalIdentity(c, "registry")
	if nil != err {
		return err
	}
	id, err := optionalIdentity(c, "identity")
	if nil != err {
		return err
	}
	if registryID.IsZero() == id.IsZero() {
		return fmt.Errorf("one of registry and identity is required")
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if !registryID.IsZero() {
		reply, err := client.ArtworkInfo(registryID, c.Uint64("index"))
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	reply, err := client.Artwork(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
