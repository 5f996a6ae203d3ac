// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain a LevelDB database of registries, artworks and their
// locations
//
// all pools live in a single database and are distinguished by a
// one byte key prefix, so that one batch can span any set of pools
//
// writes are only possible through a Transaction obtained from
// NewDBTransaction; reads inside the transaction observe all staged
// writes and nothing reaches the disk until Commit
package storage
