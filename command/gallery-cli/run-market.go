// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}
	capability, err := checkCapability(c)
	if nil != err {
		return err
	}
	id, err := checkIdentity(c, "identity")
	if nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.List(registryID, capability, id, c.Uint64("price"))
}

func runDelist(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}
	capability, err := checkCapability(c)
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

	reply, err := client.Delist(registryID, capability, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPurchase(c *cli.Context) error {
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

	reply, err := client.Purchase(registryID, id, c.Uint64("amount"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBuy(c *cli.Context) error {
	registryID, err := checkIdentity(c, "registry")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Buy(registryID, c.Uint64("index"), c.Uint64("amount"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runPrice(c *cli.Context) error {
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

	reply, err := client.Price(registryID, id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
