// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/chain"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/metrics"
	"github.com/bitmark-inc/gallery/publish"
	"github.com/bitmark-inc/gallery/rpc/listeners"
	"github.com/bitmark-inc/gallery/util"
	"github.com/bitmark-inc/logger"
)

// defaults, relative names resolve against data_directory
const (
	defaultDataDirectory = "" // must be set, "." means beside the configuration file

	defaultPublisherPublicKeyFile  = "publisher.public"
	defaultPublisherPrivateKeyFile = "publisher.private"
	defaultKeyFile                 = "rpc.key"
	defaultCertificateFile         = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultGalleryDatabase  = chain.Gallery + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "galleryd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// DatabaseType - location of the LevelDB database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	MinimumPrice  uint64       `gluamapper:"minimum_price" json:"minimum_price"`

	ClientRPC  listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Metrics    metrics.Configuration      `gluamapper:"metrics" json:"metrics"`
	Logging    logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
//
// all file names in the result are absolute and the database and log
// directories exist
func GetConfiguration(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := defaults()
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}

	// each chain keeps a separate database unless one is named
	if defaultGalleryDatabase == options.Database.Name && chain.Gallery != options.Chain {
		options.Database.Name = options.Chain + ".leveldb"
	}

	switch options.DataDirectory {
	case "", "~":
		return nil, fault.ErrInvalidDirectory
	case ".":
		options.DataDirectory = filepath.Dir(configurationFileName)
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// never created here
	if !util.IsDirectory(options.DataDirectory) {
		return nil, fault.ErrInvalidDirectory
	}

	if err := options.resolvePaths(); nil != err {
		return nil, err
	}

	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}
	return options, nil
}

func defaults() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Gallery,
		MinimumPrice:  artwork.DefaultMinimumPrice,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultGalleryDatabase,
		},
		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},
		Publishing: publish.Configuration{
			PublicKey:  defaultPublisherPublicKeyFile,
			PrivateKey: defaultPublisherPrivateKeyFile,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// make every file and directory absolute under DataDirectory
//
// the database and log file settings are plain names; the database
// name is joined to its directory and the logger joins its own
func (options *Configuration) resolvePaths() error {
	for _, name := range []string{options.Database.Name, options.Logging.File} {
		if "." != filepath.Dir(name) {
			return fault.ErrInvalidFileName
		}
	}

	for _, f := range []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	} {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}
	return nil
}
