// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// every field must be exported and carry a distinct one byte prefix
type pools struct {
	Registries *PoolHandle `prefix:"R"`
	Index      *PoolHandle `prefix:"I"`
	Artworks   *PoolHandle `prefix:"A"`
	Custody    *PoolHandle `prefix:"C"`
	Listings   *PoolHandle `prefix:"L"`
	Holdings   *PoolHandle `prefix:"H"`
	Locations  *PoolHandle `prefix:"W"`
	Balances   *PoolHandle `prefix:"B"`
	Retired    *PoolHandle `prefix:"X"`
	TestData   *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// the schema key sorts before every pool prefix
var schemaKey = []byte("\x00schema")

const schemaVersion = 1

var poolData struct {
	sync.RWMutex
	db  *leveldb.DB
	trx Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open the database and bind every pool to it
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return err
	}

	err = checkSchema(db, database, readOnly)
	if nil == err {
		access := newDA(db, new(leveldb.Batch), newCache())
		err = bindPools(access)
		if nil == err {
			poolData.db = db
			poolData.trx = newTransaction(access)
			return nil
		}
	}

	db.Close()
	Pool = pools{}
	return err
}

// an empty writable database is stamped with the current schema; an
// older or newer stamp is refused
func checkSchema(db *leveldb.DB, name string, readOnly bool) error {
	value, err := db.Get(schemaKey, nil)
	if leveldb.ErrNotFound == err {
		if readOnly {
			logger.Criticalf("database: %s is empty", name)
			return fmt.Errorf("database: %s is empty", name)
		}
		stamp := make([]byte, 4)
		binary.BigEndian.PutUint32(stamp, schemaVersion)
		return db.Put(schemaKey, stamp, nil)
	}
	if nil != err {
		return err
	}

	if 4 != len(value) {
		return fmt.Errorf("database: %s schema stamp has %d bytes", name, len(value))
	}
	if version := binary.BigEndian.Uint32(value); schemaVersion != version {
		logger.Criticalf("database: %s schema: %d  expected: %d", name, version, schemaVersion)
		return fmt.Errorf("database: %s schema: %d  expected: %d", name, version, schemaVersion)
	}
	return nil
}

// fill each Pool field from its prefix tag
func bindPools(access Access) error {
	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	seen := make(map[byte]string)
	for i := 0; i < poolType.NumField(); i += 1 {
		field := poolType.Field(i)

		tag := field.Tag.Get("prefix")
		if 1 != len(tag) || 0 == tag[0] {
			return fmt.Errorf("pool: %s has invalid prefix: %q", field.Name, tag)
		}
		if other, ok := seen[tag[0]]; ok {
			return fmt.Errorf("pool: %s reuses prefix: %q of: %s", field.Name, tag, other)
		}
		seen[tag[0]] = field.Name

		poolValue.Field(i).Set(reflect.ValueOf(&PoolHandle{
			prefix:     tag[0],
			dataAccess: access,
		}))
	}
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.trx = nil
	Pool = pools{}
}

// NewDBTransaction - start the single write transaction
//
// fails with ErrTransactionInUse if another transaction has not yet
// been committed or aborted
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.ErrDatabaseIsNotSet
	}
	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}
