// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	a, err := checkAccount(c, m)
	if nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(a)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDeposit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	a, err := checkAccount(c, m)
	if nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Deposit(a, c.Uint64("amount"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runHoldings(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	a, err := checkAccount(c, m)
	if nil != err {
		return err
	}
	start, err := optionalIdentity(c, "start")
	if nil != err {
		return err
	}

	_, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Holdings(a, start, c.Int("count"))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
