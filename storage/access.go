// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/logger"
)

// Access - the database seen through the staged writes of one batch
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	GetCommitted([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	HasCommitted([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type batchAccess struct {
	sync.Mutex
	open    bool
	db      *leveldb.DB
	batch   *leveldb.Batch
	overlay Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, overlay Cache) Access {
	return &batchAccess{
		db:      db,
		batch:   batch,
		overlay: overlay,
	}
}

func (d *batchAccess) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.open {
		return fault.ErrTransactionInUse
	}
	d.open = true
	return nil
}

func (d *batchAccess) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.open
}

// the caller may reuse value after Put returns
func (d *batchAccess) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	d.mustBeOpen("put", key)
	stored := append([]byte{}, value...)
	d.overlay.Set(dbPut, string(key), stored)
	d.batch.Put(key, stored)
}

func (d *batchAccess) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.mustBeOpen("delete", key)
	d.overlay.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// a write outside Begin would leak into the next commit
func (d *batchAccess) mustBeOpen(action string, key []byte) {
	if !d.open {
		logger.Panicf("storage: %s outside transaction  key: %x", action, key)
	}
}

func (d *batchAccess) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.open {
		return fault.ErrTransactionNotStarted
	}
	err := d.db.Write(d.batch, nil)
	d.discard()
	return err
}

func (d *batchAccess) Abort() {
	d.Lock()
	defer d.Unlock()
	d.discard()
}

func (d *batchAccess) discard() {
	d.batch.Reset()
	d.overlay.Clear()
	d.open = false
}

// staged writes win over committed data
func (d *batchAccess) Get(key []byte) ([]byte, error) {
	if value, op, staged := d.overlay.Get(string(key)); staged {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *batchAccess) Has(key []byte) (bool, error) {
	if _, op, staged := d.overlay.Get(string(key)); staged {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

// GetCommitted - ignore any open batch
func (d *batchAccess) GetCommitted(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// HasCommitted - ignore any open batch
func (d *batchAccess) HasCommitted(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

// committed data only, staged writes are not visible
func (d *batchAccess) Iterator(span *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(span, nil)
}
