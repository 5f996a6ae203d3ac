// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/gallery/account"
)

type generateReply struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := account.NewKeyPair(m.testnet)
	if nil != err {
		return err
	}
	return printJson(m.w, generateReply{
		Account:    keyPair.Account,
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey.Seed()),
	})
}

func runInfo(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInit(c *cli.Context) error {
	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Init()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRegistry(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Registry(registryID)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runArtworks(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Artworks(registryID, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
