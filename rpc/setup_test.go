// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/chain"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/rpc"
	"github.com/bitmark-inc/gallery/rpc/certificate"
	"github.com/bitmark-inc/gallery/rpc/fixtures"
	"github.com/bitmark-inc/gallery/rpc/listeners"
	"github.com/bitmark-inc/gallery/rpc/node"
)

// a port that was free a moment ago
func freeAddress(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := l.Addr().String()
	require.NoError(t, l.Close())
	return address
}

func TestInitialiseServesTLS(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "gallery-rpc-setup")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{freeAddress(t)},
		Certificate:        filepath.Join(dir, "rpc.crt"),
		PrivateKey:         filepath.Join(dir, "rpc.key"),
	}
	err = certificate.MakeSelfSigned("test", configuration.Certificate, configuration.PrivateKey, false, nil)
	require.NoError(t, err)

	g := gallery.New(nil, 9, true)
	err = rpc.Initialise(configuration, g, "v0", chain.Local)
	require.NoError(t, err)

	err = rpc.Initialise(configuration, g, "v0", chain.Local)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	conn, err := tls.Dial("tcp", configuration.Listen[0], &tls.Config{InsecureSkipVerify: true})
	require.NoError(t, err)
	client := jsonrpc.NewClient(conn)

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	require.NoError(t, err)
	assert.Equal(t, chain.Local, reply.Chain)
	assert.Equal(t, uint64(9), reply.MinimumPrice)
	assert.Equal(t, uint64(1), reply.RPCs, "this connection")
	client.Close()

	assert.NoError(t, rpc.Finalise())
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "second finalise")
}

func TestInitialiseMissingCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Certificate:        "no-such.crt",
		PrivateKey:         "no-such.key",
	}
	err := rpc.Initialise(configuration, gallery.New(nil, 2, true), "v0", chain.Local)
	assert.Error(t, err, "missing certificate")
	assert.Equal(t, fault.ErrNotInitialised, rpc.Finalise(), "nothing started")
}
