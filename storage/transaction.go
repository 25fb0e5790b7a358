// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/logger"
)

// the operations shared by the database and an open transaction
type access interface {
	Get([]byte, *ldb_opt.ReadOptions) ([]byte, error)
	Has([]byte, *ldb_opt.ReadOptions) (bool, error)
	NewIterator(*ldb_util.Range, *ldb_opt.ReadOptions) iterator.Iterator
	Put([]byte, []byte, *ldb_opt.WriteOptions) error
	Delete([]byte, *ldb_opt.WriteOptions) error
}

// Transaction - an atomic group of writes across all pools
//
// while it is open every pool reads and writes through it, so reads
// see its uncommitted writes; nothing reaches the database until
// Commit and Abort leaves no trace
type Transaction struct {
	tx     *leveldb.Transaction
	closed bool
}

// AfterCommit - run f once the current writes are durable
//
// outside a transaction f runs at once; inside one it is queued
// until Commit and dropped by Abort
func AfterCommit(f func()) {
	poolData.Lock()
	if nil != poolData.transaction {
		poolData.afterCommit = append(poolData.afterCommit, f)
		poolData.Unlock()
		return
	}
	poolData.Unlock()
	f()
}

// Begin - open the single database transaction
func Begin() (*Transaction, error) {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if nil != poolData.transaction {
		return nil, fault.ErrDatabaseTransactionInUse
	}

	tx, err := poolData.database.OpenTransaction()
	if nil != err {
		return nil, err
	}
	poolData.transaction = tx
	return &Transaction{tx: tx}, nil
}

// Commit - write everything since Begin
//
// a failed commit is discarded
func (t *Transaction) Commit() error {
	poolData.Lock()

	if t.closed {
		poolData.Unlock()
		return fault.ErrDatabaseTransactionClosed
	}
	t.closed = true
	poolData.transaction = nil

	queued := poolData.afterCommit
	poolData.afterCommit = nil

	err := t.tx.Commit()
	if nil != err {
		logger.Criticalf("storage: commit failed: %s", err)
		t.tx.Discard()
		poolData.generation += 1
		poolData.Unlock()
		return err
	}
	poolData.Unlock()

	for _, f := range queued {
		f()
	}
	return nil
}

// Abort - discard everything since Begin
//
// safe to call after Commit, so it can be deferred
func (t *Transaction) Abort() {
	poolData.Lock()
	defer poolData.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	poolData.transaction = nil
	poolData.afterCommit = nil

	t.tx.Discard()
	poolData.generation += 1
}

// Generation - changes whenever a transaction is discarded
//
// anything cached from pool reads must be dropped when it changes
func Generation() uint64 {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.generation
}

// must hold poolData lock
func (p *PoolHandle) access() access {
	if nil != poolData.transaction {
		return poolData.transaction
	}
	return p.database
}
