// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/chain"
)

type metadata struct {
	connect string
	keyPair *account.KeyPair
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "gallery-cli"
	app.Usage = "client for the galleryd artwork registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Gallery,
			Usage: " key variant for `NETWORK` [gallery|testing|local]",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " galleryd RPC `HOST:PORT`",
			EnvVar: "GALLERY_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " signing private key `HEX`",
			EnvVar: "GALLERY_PRIVATE_KEY",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be gallery/testing/local", network)
		}

		m := &metadata{
			connect: c.GlobalString("connect"),
			testnet: chain.IsTesting(network),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if key := c.GlobalString("key"); "" != key {
			keyPair, err := account.KeyPairFromHex(key, m.testnet)
			if nil != err {
				return err
			}
			m.keyPair = keyPair
			if m.verbose {
				fmt.Fprintf(m.e, "account: %s\n", keyPair.Account)
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
