// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse the daemon's Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items. The last value
// left on the Lua stack must be a table, which is mapped onto the Go
// structure through its gluamapper tags.
//
// A Watcher reports changes to the file so that settings that can be
// changed at run time are applied without a restart.
package configuration
