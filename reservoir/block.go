// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/exchanged/blockheader"
	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// ApplyBlock - settle the transactions of a block
//
// all pending reservations are released first; the block is then
// applied at its height in order inside one storage transaction and
// the pending transactions that were not included are resubmitted
// against the new state. If any transaction fails the whole block is
// discarded: height, balances and records are as before the call and
// the pending pool is restored.
func ApplyBlock(height uint64, timestamp uint64, txs []*transactionrecord.Transaction) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	log := globalData.log
	previous := globalData.releaseAll()
	included := make(map[uint64]struct{}, len(txs))

	log.Infof("block: %d  transactions: %d  pending: %d", height, len(txs), len(previous))

	err := applyBlock(height, timestamp, txs, included)
	if nil != err {
		log.Errorf("block: %d  rejected: %s", height, err)
		included = map[uint64]struct{}{}
	}

	// resubmit the survivors
	for _, item := range previous {
		if _, ok := included[item.tx.Id]; ok {
			continue
		}
		e := globalData.add(item.tx, item.sequence, item.received)
		if nil != e {
			log.Infof("%s: tx: %d  dropped after block: %d  error: %s", item.descriptor.Name(), item.tx.Id, height, e)
			expiredCounter.WithLabelValues(item.tx.Subtype.String()).Inc()
		}
	}
	pendingGauge.Set(float64(len(globalData.pending)))

	return err
}

// all or nothing
//
// must hold lock
func applyBlock(height uint64, timestamp uint64, txs []*transactionrecord.Transaction, included map[uint64]struct{}) error {
	previousHeight, previousTimestamp := blockheader.Get()

	dbTx, err := storage.Begin()
	if nil != err {
		return err
	}

	blockheader.Set(height, timestamp)

	err = applyTransactions(height, txs)
	if nil == err {
		err = dbTx.Commit()
	} else {
		dbTx.Abort()
	}
	if nil != err {
		blockheader.Restore(previousHeight, previousTimestamp)
		return err
	}

	for _, tx := range txs {
		included[tx.Id] = struct{}{}
		d, _ := exchange.ForTransaction(tx)
		appliedCounter.WithLabelValues(d.Name()).Inc()
	}
	return nil
}

// must hold lock
func applyTransactions(height uint64, txs []*transactionrecord.Transaction) error {
	env := globalData.env
	duplicates := exchange.NewDuplicates()

	for i, tx := range txs {
		tx.Height = height
		tx.Index = uint32(i)

		d, err := exchange.ForTransaction(tx)
		if nil != err {
			return fault.Detail(err, "block: %d  index: %d  tx: %d", height, i, tx.Id)
		}
		err = d.Validate(env, tx)
		if nil != err {
			return fault.Detail(err, "block: %d  index: %d  tx: %d", height, i, tx.Id)
		}
		if d.IsDuplicate(tx, duplicates) || d.IsBlockDuplicate(tx, duplicates) {
			return fault.Detail(fault.ErrDuplicateTransaction, "block: %d  index: %d  tx: %d", height, i, tx.Id)
		}
		if !d.ApplyUnconfirmed(env, tx) {
			return fault.Detail(fault.ErrInsufficientBalance, "block: %d  index: %d  tx: %d", height, i, tx.Id)
		}
		err = d.Apply(env, tx)
		if nil != err {
			return fault.Detail(err, "block: %d  index: %d  tx: %d", height, i, tx.Id)
		}
	}
	return nil
}
