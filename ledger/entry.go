// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/util"
	"github.com/bitmark-inc/logger"
)

// Entry - audit record of one confirmed balance change
type Entry struct {
	Event     Event           `json:"event"`
	EventId   EventId         `json:"eventId"`
	Account   account.Id      `json:"account"`
	Holding   holding.Holding `json:"holding"`
	Change    int64           `json:"change"`
	Balance   int64           `json:"balance"`
	Height    uint64          `json:"height"`
	Timestamp uint64          `json:"timestamp"`
}

// must hold lock
func (l *Ledger) appendEntry(e Entry) {

	// entries written by a discarded storage transaction are gone
	if g := storage.Generation(); g != l.generation {
		l.generation = g
		l.sequence = lastSequence(l.entries)
	}
	l.sequence += 1
	record := util.Packer{}.
		Uint64(uint64(e.Event)).
		Uint64(e.EventId.TransactionId).
		Bytes(e.EventId.FullHash[:]).
		Uint64(e.EventId.ChainId).
		Uint64(uint64(e.Account)).
		Uint64(uint64(e.Holding.Type)).
		Uint64(e.Holding.Id).
		Int64(e.Change).
		Int64(e.Balance).
		Uint64(e.Height).
		Uint64(e.Timestamp)
	l.entries.Put(storage.Key(l.sequence), record)
}

func unpackEntry(record []byte) (Entry, error) {
	u := util.NewUnpacker(record)
	e := Entry{
		Event: Event(u.Uint64()),
		EventId: EventId{
			TransactionId: u.Uint64(),
		},
	}
	hash := u.Bytes()
	e.EventId.ChainId = u.Uint64()
	e.Account = account.Id(u.Uint64())
	e.Holding = holding.Holding{
		Type: holding.Type(u.Uint64()),
		Id:   u.Uint64(),
	}
	e.Change = u.Int64()
	e.Balance = u.Int64()
	e.Height = u.Uint64()
	e.Timestamp = u.Uint64()
	if nil != u.Err() {
		return Entry{}, u.Err()
	}
	if 0 != u.Remaining() {
		return Entry{}, fault.ErrUnexpectedRecordLength
	}
	err := merkle.DigestFromBytes(&e.EventId.FullHash, hash)
	return e, err
}

// Entries - the audit entries of an account in order of application
//
// a zero account selects all entries; at most count are returned
func (l *Ledger) Entries(a account.Id, count int) ([]Entry, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	result := make([]Entry, 0, count)
	err := l.entries.NewFetchCursor().Map(func(key []byte, value []byte) error {
		e, err := unpackEntry(value)
		if nil != err {
			logger.Panicf("ledger: entry: %x  corrupt: %s", key, err)
		}
		if 0 != a && e.Account != a {
			return nil
		}
		result = append(result, e)
		if len(result) >= count {
			return errDone
		}
		return nil
	})
	if errDone == err {
		err = nil
	}
	return result, err
}

// stops a Map early
var errDone = fault.ProcessError("done")
