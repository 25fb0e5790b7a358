// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
)

func TestTransactionCommit(t *testing.T) {
	err := storage.InitialiseMemory()
	require.NoError(t, err, "initialise")
	defer storage.Finalise()

	p := storage.Pool.TestData
	poolPut(p, "key-old", "data-old")

	tx, err := storage.Begin()
	require.NoError(t, err, "begin")

	poolPut(p, "key-new", "data-new")
	p.Delete([]byte("key-old"))

	// reads inside see the uncommitted writes
	assert.Equal(t, []byte("data-new"), p.Get([]byte("key-new")))
	assert.False(t, p.Has([]byte("key-old")))
	elements, err := p.NewFetchCursor().Fetch(10)
	require.NoError(t, err)
	assert.Len(t, elements, 1)

	_, err = storage.Begin()
	assert.Equal(t, fault.ErrDatabaseTransactionInUse, err, "nested begin")

	require.NoError(t, tx.Commit(), "commit")
	assert.Equal(t, fault.ErrDatabaseTransactionClosed, tx.Commit(), "second commit")
	tx.Abort()

	assert.Equal(t, []byte("data-new"), p.Get([]byte("key-new")))
	assert.Nil(t, p.Get([]byte("key-old")))
}

func TestTransactionAbort(t *testing.T) {
	err := storage.InitialiseMemory()
	require.NoError(t, err, "initialise")
	defer storage.Finalise()

	p := storage.Pool.TestData
	poolPut(p, "key-old", "data-old")
	p.PutN([]byte("n"), 7)

	generation := storage.Generation()

	tx, err := storage.Begin()
	require.NoError(t, err, "begin")

	poolPut(p, "key-new", "data-new")
	poolPut(p, "key-old", "data-changed")
	p.PutN([]byte("n"), 8)
	n, _ := p.GetN([]byte("n"))
	assert.Equal(t, uint64(8), n)

	tx.Abort()
	assert.NotEqual(t, generation, storage.Generation(), "generation unchanged")

	assert.Nil(t, p.Get([]byte("key-new")), "write survived abort")
	assert.Equal(t, []byte("data-old"), p.Get([]byte("key-old")))
	n, _ = p.GetN([]byte("n"))
	assert.Equal(t, uint64(7), n)

	// writes go straight to the database again
	poolPut(p, "key-after", "data-after")
	assert.True(t, p.Has([]byte("key-after")))

	tx, err = storage.Begin()
	require.NoError(t, err, "begin after abort")
	tx.Abort()
}

func TestTransactionNotInitialised(t *testing.T) {
	_, err := storage.Begin()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err)
}

func TestAfterCommit(t *testing.T) {
	err := storage.InitialiseMemory()
	require.NoError(t, err, "initialise")
	defer storage.Finalise()

	calls := 0
	storage.AfterCommit(func() { calls += 1 })
	assert.Equal(t, 1, calls, "not run at once outside a transaction")

	tx, err := storage.Begin()
	require.NoError(t, err)
	storage.AfterCommit(func() { calls += 10 })
	assert.Equal(t, 1, calls, "run before commit")
	tx.Abort()
	assert.Equal(t, 1, calls, "run after abort")

	tx, err = storage.Begin()
	require.NoError(t, err)
	storage.AfterCommit(func() { calls += 100 })
	require.NoError(t, tx.Commit())
	assert.Equal(t, 101, calls, "not run after commit")
}
