// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gallery/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)
	return newTransaction(mock), mock, ctl
}

func TestTransactionBegin(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	gomock.InOrder(
		mock.EXPECT().Begin().Return(nil).Times(1),
		mock.EXPECT().Begin().Return(errors.New("busy")).Times(1),
	)

	err := tx.Begin()
	assert.Nil(t, err, "first time Begin should not return any error")

	err = tx.Begin()
	assert.NotNil(t, err, "second time Begin should return error")
}

func TestTransactionPutRoutesThroughHandle(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	h := &PoolHandle{
		prefix:     'T',
		dataAccess: mock,
	}

	mock.EXPECT().Put([]byte("Tkey"), []byte("value")).Times(1)
	mock.EXPECT().Put([]byte("Tnum"), []byte{0, 0, 0, 0, 0, 0, 0, 5}).Times(1)
	mock.EXPECT().Delete([]byte("Tkey")).Times(1)

	tx.Put(h, []byte("key"), []byte("value"))
	tx.PutN(h, []byte("num"), 5)
	tx.Delete(h, []byte("key"))
}

func TestTransactionCommitAbort(t *testing.T) {
	tx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Commit().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)
	mock.EXPECT().InUse().Return(false).Times(1)

	assert.Nil(t, tx.Commit())
	tx.Abort()
	assert.False(t, tx.InUse())
}

func TestCacheOverlay(t *testing.T) {
	c := newCache()

	_, _, found := c.Get("missing")
	assert.False(t, found)

	c.Set(dbPut, "k", []byte("v"))
	v, op, found := c.Get("k")
	assert.True(t, found)
	assert.Equal(t, dbPut, op)
	assert.Equal(t, []byte("v"), v)

	c.Set(dbDelete, "k", nil)
	_, op, found = c.Get("k")
	assert.True(t, found, "deleted key must shadow the database")
	assert.Equal(t, dbDelete, op)

	c.Clear()
	_, _, found = c.Get("k")
	assert.False(t, found)
}
