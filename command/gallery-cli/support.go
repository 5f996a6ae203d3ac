// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/command/gallery-cli/rpccalls"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	client, err := rpccalls.NewClient(m.connect, m.keyPair, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

func checkIdentity(c *cli.Context, name string) (identity.Identity, error) {
	s := c.String(name)
	if "" == s {
		return identity.Identity{}, fmt.Errorf("%s is required", name)
	}
	return identity.FromHex(s)
}

// an empty flag gives the zero identity
func optionalIdentity(c *cli.Context, name string) (identity.Identity, error) {
	if "" == c.String(name) {
		return identity.Identity{}, nil
	}
	return identity.FromHex(c.String(name))
}

func checkCapability(c *cli.Context) (*gallery.Capability, error) {
	s := c.String("capability")
	if "" == s {
		return nil, fmt.Errorf("capability is required")
	}
	capability := &gallery.Capability{}
	if err := capability.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}
	return capability, nil
}

// account from the flag or else the signing account
func checkAccount(c *cli.Context, m *metadata) (*account.Account, error) {
	if s := c.String("account"); "" != s {
		a, err := account.AccountFromBase58(s)
		if nil != err {
			return nil, err
		}
		if a.IsTesting() != m.testnet {
			return nil, fmt.Errorf("account: %s is for another network", s)
		}
		return a, nil
	}
	if nil == m.keyPair {
		return nil, fmt.Errorf("account or key is required")
	}
	return m.keyPair.Account, nil
}
