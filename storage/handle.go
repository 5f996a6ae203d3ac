// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Handle - read side of a pool, writes are staged by a Transaction
//
// reads through a Handle see committed data only; a Transaction reads
// its own staged writes as well
type Handle interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	NewFetchCursor() *FetchCursor

	getStaged([]byte) []byte
	hasStaged([]byte) bool
	put([]byte, []byte)
	remove([]byte)
}

// PoolHandle - one prefix of the database
type PoolHandle struct {
	prefix     byte
	dataAccess Access
}

// Element - a key/value pair with the pool prefix removed
type Element struct {
	Key   []byte
	Value []byte
}

func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixed := make([]byte, 1, len(key)+1)
	prefixed[0] = p.prefix
	return append(prefixed, key...)
}

// run f with the access layer under the read lock
//
// false if the database is closed
func (p *PoolHandle) with(f func(Access)) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.dataAccess {
		return false
	}
	f(p.dataAccess)
	return true
}

func (p *PoolHandle) put(key []byte, value []byte) {
	if !p.with(func(a Access) { a.Put(p.prefixKey(key), value) }) {
		logger.Panicf("pool: %c put on closed database", p.prefix)
	}
}

func (p *PoolHandle) remove(key []byte) {
	if !p.with(func(a Access) { a.Delete(p.prefixKey(key)) }) {
		logger.Panicf("pool: %c remove on closed database", p.prefix)
	}
}

// Get - committed value for key or nil
func (p *PoolHandle) Get(key []byte) []byte {
	return p.read(key, Access.GetCommitted)
}

func (p *PoolHandle) getStaged(key []byte) []byte {
	return p.read(key, Access.Get)
}

func (p *PoolHandle) read(key []byte, get func(Access, []byte) ([]byte, error)) []byte {
	var value []byte
	p.with(func(a Access) {
		v, err := get(a, p.prefixKey(key))
		if leveldb.ErrNotFound == err {
			return
		}
		logger.PanicIfError("pool.Get", err)
		value = v
	})
	return value
}

// GetN - committed value for key as a big endian uint64
//
// false if absent; a value shorter than 8 bytes is corruption and panics
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool: truncated number for: %x", key)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	return p.exists(key, Access.HasCommitted)
}

func (p *PoolHandle) hasStaged(key []byte) bool {
	return p.exists(key, Access.Has)
}

func (p *PoolHandle) exists(key []byte, has func(Access, []byte) (bool, error)) bool {
	found := false
	p.with(func(a Access) {
		ok, err := has(a, p.prefixKey(key))
		logger.PanicIfError("pool.Has", err)
		found = ok
	})
	return found
}
