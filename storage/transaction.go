// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - all-or-nothing group of writes across pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

// TransactionData - transaction over a single data access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start the transaction
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a key/value pair
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

// PutN - stage a big endian uint64 value
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	h.put(key, buffer)
}

// Delete - stage removal of a key
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

// Get - read including staged writes
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.getStaged(key)
}

// GetN - read a uint64 including staged writes
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return decodeN(key, h.getStaged(key))
}

// Has - key existence including staged writes
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.hasStaged(key)
}

// InUse - true while the transaction is open
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write all staged data
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard all staged data
func (t *TransactionData) Abort() {
	t.access.Abort()
}
