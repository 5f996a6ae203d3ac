// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/configuration"
	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/gallery/util"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	_ = os.Mkdir("testing", 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: "testing",
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll("testing")
	os.Exit(rc)
}

func TestGetFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "rpc.key", getFilenameWithDirectory(nil, "rpc.key"))
	assert.Equal(t, "/etc/gallery/rpc.key", getFilenameWithDirectory([]string{"/etc/gallery", "127.0.0.1"}, "rpc.key"))
}

func TestSetupCommands(t *testing.T) {
	dir, err := ioutil.TempDir("", "galleryd-setup")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	assert.True(t, processSetupCommand("galleryd", []string{"gen-rpc-cert", dir, "127.0.0.1"}), "rpc")
	assert.True(t, util.EnsureFileExists(filepath.Join(dir, rpcCertificateKeyFilename)), "certificate")
	assert.True(t, util.EnsureFileExists(filepath.Join(dir, rpcPrivateKeyFilename)), "key")

	assert.True(t, processSetupCommand("galleryd", []string{"publisher", dir}), "publisher")
	assert.True(t, util.EnsureFileExists(filepath.Join(dir, publisherPublicKeyFilename)), "public")
	assert.True(t, util.EnsureFileExists(filepath.Join(dir, publisherPrivateKeyFilename)), "private")

	for _, command := range []string{"start", "run", "registry", "held", "cfg"} {
		assert.False(t, processSetupCommand("galleryd", []string{command}), "deferred: %s", command)
	}
	assert.True(t, processSetupCommand("galleryd", []string{"version"}), "version")
}

func TestConfigCommand(t *testing.T) {
	options := &configuration.Configuration{Chain: "local", MinimumPrice: 3}
	assert.True(t, processConfigCommand([]string{"config-test"}, options), "config-test")
	assert.False(t, processConfigCommand([]string{"holdings"}, options), "falls through")
	assert.False(t, processConfigCommand(nil, options), "no command")
}

func TestDataCommands(t *testing.T) {
	dir, err := ioutil.TempDir("", "galleryd-data")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	err = storage.Initialise(filepath.Join(dir, "gallery.leveldb"), storage.ReadWrite)
	require.NoError(t, err)
	defer storage.Finalise()

	g := gallery.New(nil, 2, true)
	owner, err := account.NewKeyPair(true)
	require.NoError(t, err)
	r, _, err := g.Init(owner.Account)
	require.NoError(t, err)

	log := logger.New("testing")
	assert.True(t, processDataCommand(log, []string{"registry", r.Identity.String()}, g), "registry")
	assert.True(t, processDataCommand(log, []string{"holdings", owner.Account.String()}, g), "holdings")
	assert.False(t, processDataCommand(log, []string{"start"}, g), "not a data command")
}

func TestReloader(t *testing.T) {
	g := gallery.New(nil, 2, true)
	reload := reloader(g)

	reload(&configuration.Configuration{MinimumPrice: 9})
	assert.Equal(t, uint64(9), g.MinimumPrice(), "changed price applied")

	reload(&configuration.Configuration{MinimumPrice: 9})
	assert.Equal(t, uint64(9), g.MinimumPrice(), "unchanged price")
}
