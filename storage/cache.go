// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - overlay of writes staged by the open transaction
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// entries never expire; the janitor only runs to drop flushed items
const janitorInterval = 2 * time.Minute

type stagedWrite struct {
	op    dbOperation
	value []byte
}

type stagedWrites struct {
	items *cache.Cache
}

func newCache() *stagedWrites {
	return &stagedWrites{
		items: cache.New(cache.NoExpiration, janitorInterval),
	}
}

// a staged delete is found with op == dbDelete so the caller does not
// fall through to the database
func (s *stagedWrites) Get(key string) ([]byte, dbOperation, bool) {
	item, found := s.items.Get(key)
	if !found {
		return nil, dbPut, false
	}
	w := item.(stagedWrite)
	return w.value, w.op, true
}

func (s *stagedWrites) Set(op dbOperation, key string, value []byte) {
	s.items.Set(key, stagedWrite{op: op, value: value}, cache.NoExpiration)
}

func (s *stagedWrites) Clear() {
	s.items.Flush()
}
