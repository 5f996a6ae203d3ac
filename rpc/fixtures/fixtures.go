// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the RPC tests
package fixtures

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/gallery/gallery"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/logger"
)

const (
	// LogCategory - log channel used by the tests
	LogCategory = "testing"

	testingDirName = "testing"

	// MinimumPrice - price floor of the test gallery
	MinimumPrice = 2
)

// SetupTestLogger - start a file logger under the working directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})
}

// TeardownTestLogger - stop the logger and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// SetupGallery - open a fresh database in dir and return a testing
// gallery over it
func SetupGallery(dir string) (*gallery.Gallery, error) {
	err := storage.Initialise(filepath.Join(dir, "gallery.leveldb"), storage.ReadWrite)
	if nil != err {
		return nil, err
	}
	return gallery.New(nil, MinimumPrice, true), nil
}

// TeardownGallery - close the database
func TeardownGallery() {
	storage.Finalise()
}
