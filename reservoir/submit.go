// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// Submit - validate a transaction and reserve its balances
//
// returns ErrDuplicateTransaction for a transaction already pending
// or one that conflicts with a pending transaction and
// ErrInsufficientBalance if the reservation could not be made
func Submit(tx *transactionrecord.Transaction) error {
	if nil == tx {
		return fault.ErrTransactionNotFound
	}

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !globalData.enabled {
		return fault.ErrPoolNotEnabled
	}

	if !globalData.limiter.Allow() {
		rejectedCounter.WithLabelValues(tx.Subtype.String(), reasonRateLimited).Inc()
		return fault.ErrRateLimited
	}

	if _, ok := globalData.pending[tx.Id]; ok {
		rejectedCounter.WithLabelValues(tx.Subtype.String(), reasonDuplicate).Inc()
		return fault.Detail(fault.ErrDuplicateTransaction, "tx: %d", tx.Id)
	}
	if len(globalData.pending) >= globalData.maximumPending {
		rejectedCounter.WithLabelValues(tx.Subtype.String(), reasonFull).Inc()
		return fault.Detail(fault.ErrTooManyItemsToProcess, "pending: %d", len(globalData.pending))
	}

	globalData.sequence += 1
	return globalData.add(tx, globalData.sequence, time.Now())
}

// add a transaction to the pool
//
// must hold lock
func (g *globalDataType) add(tx *transactionrecord.Transaction, sequence uint64, received time.Time) error {
	label := tx.Subtype.String()

	if tx.Expiry() <= g.env.Blockchain.LastBlockTimestamp() {
		rejectedCounter.WithLabelValues(label, reasonExpired).Inc()
		return fault.Detail(fault.ErrTransactionExpired, "tx: %d  expiry: %d", tx.Id, tx.Expiry())
	}

	d, err := exchange.ForTransaction(tx)
	if nil != err {
		rejectedCounter.WithLabelValues(label, reasonInvalid).Inc()
		return err
	}

	err = d.Validate(g.env, tx)
	if nil != err {
		rejectedCounter.WithLabelValues(label, rejectReason(err)).Inc()
		g.log.Debugf("%s: tx: %d  rejected: %s", d.Name(), tx.Id, err)
		return err
	}

	if d.IsDuplicate(tx, g.duplicates) || d.IsUnconfirmedDuplicate(tx, g.duplicates) {
		g.rebuildDuplicates()
		rejectedCounter.WithLabelValues(label, reasonDuplicate).Inc()
		return fault.Detail(fault.ErrDuplicateTransaction, "%s: tx: %d conflicts with a pending transaction", d.Name(), tx.Id)
	}

	if !d.ApplyUnconfirmed(g.env, tx) {
		g.rebuildDuplicates()
		rejectedCounter.WithLabelValues(label, reasonBalance).Inc()
		return fault.Detail(fault.ErrInsufficientBalance, "%s: tx: %d  sender: %s", d.Name(), tx.Id, tx.Sender)
	}

	g.pending[tx.Id] = &pendingItem{
		tx:         tx,
		descriptor: d,
		sequence:   sequence,
		received:   received,
	}
	acceptedCounter.WithLabelValues(label).Inc()
	pendingGauge.Set(float64(len(g.pending)))

	g.log.Debugf("%s: tx: %d  accepted", d.Name(), tx.Id)
	return nil
}

// Get - a pending transaction
func Get(id uint64) (*transactionrecord.Transaction, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	item, ok := globalData.pending[id]
	if !ok {
		return nil, false
	}
	return item.tx, true
}

// List - pending transactions in arrival order
func List() []*transactionrecord.Transaction {
	globalData.RLock()
	defer globalData.RUnlock()

	items := globalData.ordered()
	txs := make([]*transactionrecord.Transaction, len(items))
	for i, item := range items {
		txs[i] = item.tx
	}
	return txs
}

// ReadCounters - number of pending transactions
func ReadCounters() int {
	globalData.RLock()
	defer globalData.RUnlock()
	return len(globalData.pending)
}

// Remove - drop a pending transaction and release its reservation
func Remove(id uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	item, ok := globalData.pending[id]
	if !ok {
		return fault.Detail(fault.ErrTransactionNotFound, "tx: %d", id)
	}
	globalData.release(item)
	delete(globalData.pending, id)
	globalData.rebuildDuplicates()
	pendingGauge.Set(float64(len(globalData.pending)))
	return nil
}
