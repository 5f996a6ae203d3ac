// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/gallery/fault"
)

// FetchCursor - forward iteration over part of one pool
//
// the cursor remembers where the last Fetch stopped, so repeated calls
// page through the range
type FetchCursor struct {
	pool *PoolHandle
	span util.Range
}

// NewFetchCursor - cursor over the whole pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		span: *util.BytesPrefix([]byte{p.prefix}),
	}
}

// Prefix - restrict the cursor to keys starting with prefix
func (cursor *FetchCursor) Prefix(prefix []byte) *FetchCursor {
	cursor.span = *util.BytesPrefix(cursor.pool.prefixKey(prefix))
	return cursor
}

// Seek - start at key (inclusive) keeping the current limit
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.span.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - the next count elements at most; empty at the end
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.scan(func(e Element) bool {
		results = append(results, e)
		return len(results) < count
	})

	if n := len(results); n > 0 {
		cursor.span.Start = append(cursor.pool.prefixKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - call f on each element until it returns an error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	var stop error
	err := cursor.scan(func(e Element) bool {
		stop = f(e.Key, e.Value)
		return nil == stop
	})
	if nil != stop {
		return stop
	}
	return err
}

// visit returns false to end the scan
func (cursor *FetchCursor) scan(visit func(Element) bool) error {
	var err error = fault.ErrDatabaseIsNotSet
	cursor.pool.with(func(a Access) {
		iter := a.Iterator(&cursor.span)
		defer iter.Release()

		// iterator slices are reused by Next so both are copied
		for iter.Next() {
			e := Element{
				Key:   append([]byte{}, iter.Key()[1:]...),
				Value: append([]byte{}, iter.Value()...),
			}
			if !visit(e) {
				break
			}
		}
		err = iter.Error()
	})
	return err
}
