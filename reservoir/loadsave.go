// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// pending records are keyed by arrival sequence
//   key:   sequence(8)
//   value: packed transaction

// continue numbering after any records left by an earlier run
func lastSequence() uint64 {
	pool := storage.Pool.Pending
	if nil == pool {
		return 0
	}
	last, ok := pool.LastElement()
	if !ok || len(last.Key) < 8 {
		return 0
	}
	return storage.KeyUint64(last.Key, 0)
}

// save the released transactions for the next start
//
// must hold lock
func save(items []*pendingItem) error {
	pool := storage.Pool.Pending
	if nil == pool {
		return fault.ErrDatabaseIsNotSet
	}

	for _, item := range items {
		packed, err := item.tx.Pack()
		if nil != err {
			globalData.log.Errorf("tx: %d  pack error: %s", item.tx.Id, err)
			continue
		}
		pool.Put(storage.Key(item.sequence), packed)
	}
	globalData.log.Infof("saved: %d", len(items))
	return nil
}

// LoadFromStorage - resubmit the transactions saved by Finalise
//
// the saved records are removed; transactions that no longer pass
// validation are logged and dropped. Returns the number restored.
func LoadFromStorage() (int, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	pool := storage.Pool.Pending
	if nil == pool {
		return 0, fault.ErrDatabaseIsNotSet
	}

	log := globalData.log
	log.Info("restoring…")

	keys := make([][]byte, 0)
	records := make([]transactionrecord.Packed, 0)
	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		keys = append(keys, key)
		records = append(records, value)
		return nil
	})
	if nil != err {
		return 0, err
	}

	restored := 0
	now := time.Now()
	for i, record := range records {
		pool.Delete(keys[i])

		tx, err := transactionrecord.UnpackTransaction(record)
		if nil != err {
			log.Errorf("unable to unpack pending record: %s", err)
			continue
		}
		if _, ok := globalData.pending[tx.Id]; ok {
			continue
		}

		globalData.sequence += 1
		err = globalData.add(tx, globalData.sequence, now)
		if nil != err {
			log.Infof("tx: %d  not restored: %s", tx.Id, err)
			continue
		}
		restored += 1
	}

	log.Infof("restored: %d of %d", restored, len(records))
	return restored, nil
}
