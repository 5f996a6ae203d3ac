// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

var (
	registryFlag = cli.StringFlag{
		Name:  "registry, r",
		Value: "",
		Usage: "*registry `ID`",
	}
	identityFlag = cli.StringFlag{
		Name:  "identity, i",
		Value: "",
		Usage: "*artwork `ID`",
	}
	keyFlag = cli.Uint64Flag{
		Name:  "index, x",
		Value: 0,
		Usage: "*registry index `KEY`",
	}
	capabilityFlag = cli.StringFlag{
		Name:  "capability, p",
		Value: "",
		Usage: "*registry capability `TOKEN`",
	}
	amountFlag = cli.Uint64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*payment `AMOUNT`",
	}
	countFlag = cli.IntFlag{
		Name:  "count, n",
		Value: 20,
		Usage: " page size `COUNT`",
	}
)

func detailFlags(required string) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "title, t",
			Usage: required + "artwork `TITLE`",
		},
		cli.StringFlag{
			Name:  "description, d",
			Usage: " artwork `DESCRIPTION`",
		},
		cli.Uint64Flag{
			Name:  "year, y",
			Usage: " year of creation `YEAR`",
		},
		cli.Uint64Flag{
			Name:  "price, P",
			Usage: required + "asking `PRICE`",
		},
	}
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a signing key pair",
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display galleryd status",
			Action: runInfo,
		},
		{
			Name:   "init",
			Usage:  "create a registry owned by the signing key",
			Action: runInit,
		},
		{
			Name:      "registry",
			Usage:     "display a registry header",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{registryFlag},
			Action:    runRegistry,
		},
		{
			Name:      "artworks",
			Usage:     "page through a registry index",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				registryFlag,
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first index `KEY`",
				},
				countFlag,
			},
			Action: runArtworks,
		},
		{
			Name:      "create",
			Usage:     "create an artwork in a registry index",
			ArgsUsage: "\n   (* = required)",
			Flags:     append(createFlags(), cli.BoolFlag{Name: "held", Usage: "keep in own holdings instead of the index"}),
			Action:    runCreate,
		},
		{
			Name:      "add",
			Usage:     "add a held artwork to a registry index",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{registryFlag, identityFlag},
			Action:    runAdd,
		},
		{
			Name:      "update",
			Usage:     "overwrite the properties of an owned artwork",
			ArgsUsage: "\n   (* = required)",
			Flags: append(detailFlags(" "), identityFlag, cli.BoolFlag{
				Name:  "for-sale, f",
				Usage: " offer for sale",
			}),
			Action: runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "destroy an owned artwork by index key or by identity",
			ArgsUsage: "\n   (+ = select one)",
			Flags:     []cli.Flag{registryFlag, keyFlag, identityFlag},
			Action:    runDelete,
		},
		{
			Name:      "artwork",
			Usage:     "display an artwork by index key or by identity",
			ArgsUsage: "\n   (+ = select one)",
			Flags:     []cli.Flag{registryFlag, keyFlag, identityFlag},
			Action:    runArtwork,
		},
		{
			Name:      "list",
			Usage:     "place a held artwork into registry custody",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				registryFlag,
				capabilityFlag,
				identityFlag,
				cli.Uint64Flag{
					Name:  "price, P",
					Usage: "*listing `PRICE`",
				},
			},
			Action: runList,
		},
		{
			Name:      "delist",
			Usage:     "return an artwork from custody to its owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{registryFlag, capabilityFlag, identityFlag},
			Action:    runDelist,
		},
		{
			Name:      "purchase",
			Usage:     "buy an artwork from registry custody",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{registryFlag, identityFlag, amountFlag},
			Action:    runPurchase,
		},
		{
			Name:      "buy",
			Usage:     "buy an indexed artwork from its owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{registryFlag, keyFlag, amountFlag},
			Action:    runBuy,
		},
		{
			Name:      "price",
			Usage:     "display the listing price of an artwork in custody",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{registryFlag, identityFlag},
			Action:    runPrice,
		},
		{
			Name:      "balance",
			Usage:     "display an account balance",
			ArgsUsage: "\n   (default: the signing account)",
			Flags:     []cli.Flag{accountFlag()},
			Action:    runBalance,
		},
		{
			Name:      "deposit",
			Usage:     "fund an account on a test chain",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag(), amountFlag},
			Action:    runDeposit,
		},
		{
			Name:      "holdings",
			Usage:     "page through the artworks held by an account",
			ArgsUsage: "\n   (default: the signing account)",
			Flags: []cli.Flag{
				accountFlag(),
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " continue after artwork `ID`",
				},
				countFlag,
			},
			Action: runHoldings,
		},
		{
			Name:      "watch",
			Usage:     "print published events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, b",
					Value: "",
					Usage: "*galleryd broadcast `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, s",
					Value: "",
					Usage: "*publisher public key `FILE`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: "stop after `COUNT` events",
				},
			},
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display gallery-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}

func createFlags() []cli.Flag {
	return append(detailFlags("*"),
		registryFlag,
		cli.StringFlag{
			Name:  "image, m",
			Usage: "*image `URL`",
		},
		cli.Uint64Flag{
			Name:  "fee, e",
			Value: 0,
			Usage: " minting fee paid to the registry owner `AMOUNT`",
		},
	)
}

func accountFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "account, A",
		Value: "",
		Usage: " base58 `ACCOUNT`",
	}
}
