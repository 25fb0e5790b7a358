// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - confirmed and unconfirmed balances of every holding
//
// the confirmed balance is the settled state of the chain, the
// unconfirmed balance is the confirmed balance less everything
// reserved by pending transactions; each confirmed change is also
// written to a per-height history and an audit entry
package ledger

import (
	"sync"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/util"
	"github.com/bitmark-inc/logger"
)

// Blockchain - source of the height and timestamp for history rows
type Blockchain interface {
	Height() uint64
	LastBlockTimestamp() uint64
}

// Holder - an account and its confirmed balance of some holding
type Holder struct {
	Account account.Id `json:"account"`
	Balance int64      `json:"balance"`
}

// Ledger - storage backed balance ledger
type Ledger struct {
	sync.Mutex
	log        *logger.L
	blockchain Blockchain
	balances   storage.Handle
	history    storage.Handle
	entries    storage.Handle
	sequence   uint64
	generation uint64
}

// New - create a ledger over the balance pools
func New(blockchain Blockchain, balances storage.Handle, history storage.Handle, entries storage.Handle) *Ledger {
	l := &Ledger{
		log:        logger.New("ledger"),
		blockchain: blockchain,
		balances:   balances,
		history:    history,
		entries:    entries,
		generation: storage.Generation(),
	}
	l.sequence = lastSequence(entries)
	return l
}

func lastSequence(entries storage.Handle) uint64 {
	if last, found := entries.LastElement(); found {
		return storage.KeyUint64(last.Key, 0)
	}
	return 0
}

func balanceKey(a account.Id, h holding.Holding) []byte {
	return storage.Key(a, h)
}

// read confirmed and unconfirmed
func (l *Ledger) get(a account.Id, h holding.Holding) (int64, int64) {
	record := l.balances.Get(balanceKey(a, h))
	if nil == record {
		return 0, 0
	}
	u := util.NewUnpacker(record)
	confirmed := u.Int64()
	unconfirmed := u.Int64()
	if nil != u.Err() {
		logger.Panicf("ledger: account: %d  holding: %s  corrupt balance: %x", a, h, record)
	}
	return confirmed, unconfirmed
}

func (l *Ledger) put(a account.Id, h holding.Holding, confirmed int64, unconfirmed int64) {
	key := balanceKey(a, h)
	if 0 == confirmed && 0 == unconfirmed {
		l.balances.Delete(key)
		return
	}
	l.balances.Put(key, util.Packer{}.Int64(confirmed).Int64(unconfirmed))
}

// Balance - current confirmed and unconfirmed balance
func (l *Ledger) Balance(a account.Id, h holding.Holding) (int64, int64) {
	l.Lock()
	defer l.Unlock()
	return l.get(a, h)
}

// BalanceAt - confirmed balance in force at a height
func (l *Ledger) BalanceAt(a account.Id, h holding.Holding, height uint64) int64 {
	record, _, found := l.history.AtOrBefore(storage.Key(h, a), height)
	if !found {
		return 0
	}
	value, n := util.FromVarint64(record)
	if 0 == n {
		logger.Panicf("ledger: account: %d  holding: %s  corrupt history: %x", a, h, record)
	}
	return int64(value)
}

// AddToBalance - change the confirmed balance only
func (l *Ledger) AddToBalance(event Event, eventId EventId, a account.Id, h holding.Holding, delta int64) error {
	return l.add(event, eventId, a, h, delta, true, false)
}

// AddToUnconfirmedBalance - change the unconfirmed balance only
func (l *Ledger) AddToUnconfirmedBalance(event Event, eventId EventId, a account.Id, h holding.Holding, delta int64) error {
	return l.add(event, eventId, a, h, delta, false, true)
}

// AddToBalanceAndUnconfirmedBalance - change both balances
func (l *Ledger) AddToBalanceAndUnconfirmedBalance(event Event, eventId EventId, a account.Id, h holding.Holding, delta int64) error {
	return l.add(event, eventId, a, h, delta, true, true)
}

func (l *Ledger) add(event Event, eventId EventId, a account.Id, h holding.Holding, delta int64, toConfirmed bool, toUnconfirmed bool) error {
	if 0 == delta {
		return nil
	}

	l.Lock()
	defer l.Unlock()

	confirmed, unconfirmed := l.get(a, h)

	var err error
	if toConfirmed {
		confirmed, err = util.SafeAdd(confirmed, delta)
		if nil != err {
			return err
		}
		if confirmed < 0 {
			return fault.Detail(fault.ErrInsufficientBalance, "account: %d  holding: %s  confirmed: %d", a, h, confirmed)
		}
	}
	if toUnconfirmed {
		unconfirmed, err = util.SafeAdd(unconfirmed, delta)
		if nil != err {
			return err
		}
		if unconfirmed < 0 {
			return fault.Detail(fault.ErrInsufficientBalance, "account: %d  holding: %s  unconfirmed: %d", a, h, unconfirmed)
		}
	}

	l.put(a, h, confirmed, unconfirmed)

	if toConfirmed {
		height := l.blockchain.Height()
		l.history.Put(storage.Key(h, a, height), util.ToVarint64(uint64(confirmed)))
		l.appendEntry(Entry{
			Event:     event,
			EventId:   eventId,
			Account:   a,
			Holding:   h,
			Change:    delta,
			Balance:   confirmed,
			Height:    height,
			Timestamp: l.blockchain.LastBlockTimestamp(),
		})
	}

	l.log.Debugf("%s: account: %d  holding: %s  delta: %d  confirmed: %d  unconfirmed: %d", event, a, h, delta, confirmed, unconfirmed)
	return nil
}

// Holders - every account with a positive confirmed balance of a
// holding at a height, ordered by account id
func (l *Ledger) Holders(h holding.Holding, height uint64) []Holder {
	prefix := h.Bytes()
	accountOffset := len(prefix)
	heightOffset := accountOffset + 8

	holders := make([]Holder, 0)
	current := Holder{}
	seen := false

	flush := func() {
		if seen && current.Balance > 0 {
			holders = append(holders, current)
		}
	}

	err := l.history.NewFetchCursor().Prefix(prefix).Map(func(key []byte, value []byte) error {
		if heightOffset+8 != len(key) {
			return fault.ErrUnexpectedRecordLength
		}
		a := account.Id(storage.KeyUint64(key, accountOffset))
		if !seen || a != current.Account {
			flush()
			current = Holder{Account: a}
			seen = true
		}
		// rows are in height order; keep the last one not after height
		if storage.KeyUint64(key, heightOffset) <= height {
			balance, n := util.FromVarint64(value)
			if 0 == n {
				return fault.ErrRecordTruncated
			}
			current.Balance = int64(balance)
		}
		return nil
	})
	logger.PanicIfError("ledger.Holders", err)
	flush()

	return holders
}
