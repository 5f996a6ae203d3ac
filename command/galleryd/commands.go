// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/configuration"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/certificate"
	"github.com/bitmark-inc/gallery/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"

	holdingsPageSize = 100
)

// stage at which a command runs
type stage int

const (
	beforeConfiguration stage = iota
	afterConfiguration
	afterStorage
)

type command struct {
	name  string
	alias string
	args  string
	stage stage
	help  []string
}

var commands = []command{
	{"help", "h", "", beforeConfiguration, []string{"display this message"}},
	{"version", "v", "", beforeConfiguration, []string{"display the version string"}},
	{"gen-rpc-cert", "rpc", "[DIR [IPs...]]", beforeConfiguration, []string{
		"create private key in: DIR/" + rpcPrivateKeyFilename,
		"and the certificate in: DIR/" + rpcCertificateKeyFilename,
		"IPs are added to the certificate",
	}},
	{"gen-publisher-key", "publisher", "[DIR]", beforeConfiguration, []string{
		"create private key in: DIR/" + publisherPrivateKeyFilename,
		"and the public key in: DIR/" + publisherPublicKeyFilename,
	}},
	{"start", "run", "", afterStorage, []string{"run the daemon, same as no command"}},
	{"config-test", "cfg", "", afterConfiguration, []string{"print the decoded configuration file"}},
	{"registry", "reg", "ID", afterStorage, []string{"print a registry header as JSON"}},
	{"holdings", "held", "ACCOUNT", afterStorage, []string{"print the records an account holds as JSON"}},
}

// match a command by name or alias
func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if name == c.name || name == c.alias {
			return c, true
		}
	}
	return command{}, false
}

func splitCommand(arguments []string) (string, []string) {
	if 0 == len(arguments) {
		return "help", nil
	}
	c, ok := lookupCommand(arguments[0])
	if !ok {
		return arguments[0], arguments[1:]
	}
	return c.name, arguments[1:]
}

// commands that create key and certificate files
//
// they run before the configuration file is read; false means main
// should continue
func processSetupCommand(program string, arguments []string) bool {
	name, arguments := splitCommand(arguments)

	switch name {
	case "gen-rpc-cert":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) > 1 {
			for _, a := range arguments[1:] {
				if "" != strings.TrimSpace(a) {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			exitwithstatus.Message("RPC key: %q  certificate: %q  error: %s", privateKeyFilename, certificateFilename, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publisher-key":
		publicKeyFilename := getFilenameWithDirectory(arguments, publisherPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publisherPrivateKeyFilename)

		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			exitwithstatus.Message("publisher private key: %q  public key: %q  error: %s", privateKeyFilename, publicKeyFilename, err)
		}
		fmt.Printf("generated publisher private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "version":
		fmt.Println(version)

	case "help":
		usage(program)

	default:
		c, ok := lookupCommand(name)
		if ok && beforeConfiguration != c.stage {
			return false
		}
		if "" == strings.TrimSpace(name) {
			fmt.Printf("error: missing command\n")
		} else {
			fmt.Printf("error: no such command: %q\n", name)
		}
		usage(program)
		exitwithstatus.Exit(1)
	}
	return true
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [command [arguments...]]\n", program)
	fmt.Printf("supported commands:\n")
	for _, c := range commands {
		fmt.Printf("\n  %-32s (%s)\n", strings.TrimSpace(c.name+" "+c.args), c.alias)
		for _, line := range c.help {
			fmt.Printf("      %s\n", line)
		}
	}
}

// commands that only need the decoded configuration
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {
	name, _ := splitCommand(arguments)
	if "config-test" != name {
		return false
	}
	printJSON(options)
	return true
}

// commands that read the registry pools of an open database
func processDataCommand(log *logger.L, arguments []string, g *gallery.Gallery) bool {
	name, arguments := splitCommand(arguments)

	switch name {
	case "registry":
		if 1 != len(arguments) {
			exitwithstatus.Message("registry: identity argument required")
		}
		id, err := identity.FromHex(arguments[0])
		if nil != err {
			exitwithstatus.Message("registry: %q  error: %s", arguments[0], err)
		}
		r, err := g.Registry(id)
		if nil != err {
			exitwithstatus.Message("registry: %s  error: %s", id, err)
		}
		log.Infof("dump registry: %s", id)
		printJSON(r)

	case "holdings":
		if 1 != len(arguments) {
			exitwithstatus.Message("holdings: account argument required")
		}
		holder, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("holdings: %q  error: %s", arguments[0], err)
		}
		log.Infof("dump holdings: %s", holder)
		dumpHoldings(g, holder)

	default:
		return false
	}
	return true
}

// page through every record of one holder
func dumpHoldings(g *gallery.Gallery, holder *account.Account) {
	start := identity.Identity{}
	for {
		records, err := g.Holdings(holder, start, holdingsPageSize)
		if nil != err {
			exitwithstatus.Message("holdings: %s  error: %s", holder, err)
		}
		for _, record := range records {
			printJSON(record)
		}
		if len(records) < holdingsPageSize {
			return
		}
		start = records[len(records)-1].Identity
	}
}

func printJSON(item interface{}) {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	fmt.Fprintf(os.Stdout, "%s\n", b)
}

// first argument is the directory, defaulting to the current one
func getFilenameWithDirectory(arguments []string, name string) string {
	if 0 == len(arguments) || "" == arguments[0] {
		return name
	}
	return filepath.Join(arguments[0], name)
}
