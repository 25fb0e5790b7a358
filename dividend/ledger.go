// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dividend

import (
	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/util"
	"github.com/bitmark-inc/logger"
)

// Blockchain - source of the application height and timestamp
type Blockchain interface {
	Height() uint64
	LastBlockTimestamp() uint64
}

// Balances - the parts of the balance ledger a payment uses
type Balances interface {
	Holders(holding.Holding, uint64) []ledger.Holder
	AddToBalance(ledger.Event, ledger.EventId, account.Id, holding.Holding, int64) error
	AddToUnconfirmedBalance(ledger.Event, ledger.EventId, account.Id, holding.Holding, int64) error
	AddToBalanceAndUnconfirmedBalance(ledger.Event, ledger.EventId, account.Id, holding.Holding, int64) error
}

// Payment - a dividend to disburse
//
// Total is the amount reserved from the sender's unconfirmed
// balance when the payment was accepted
type Payment struct {
	EventId         ledger.EventId
	Sender          account.Id
	AssetId         uint64
	AssetDecimals   uint8
	Height          uint64
	Holding         holding.Holding
	HoldingDecimals uint8
	AmountPerUnit   int64
	Total           int64
}

// Ledger - storage backed dividend record
type Ledger struct {
	log        *logger.L
	blockchain Blockchain
	balances   Balances
	events     storage.Handle
	last       storage.Handle
}

// New - create a dividend ledger
func New(blockchain Blockchain, balances Balances, events storage.Handle, last storage.Handle) *Ledger {
	return &Ledger{
		log:        logger.New("dividend"),
		blockchain: blockchain,
		balances:   balances,
		events:     events,
		last:       last,
	}
}

// Last - the most recent dividend of an asset, nil if none
func (l *Ledger) Last(assetId uint64) *Event {
	record := l.last.Get(storage.Key(assetId))
	if nil == record {
		return nil
	}
	e, err := unpack(record)
	if nil != err {
		logger.Panicf("dividend: asset: %d  corrupt record: %s", assetId, err)
	}
	return e
}

// Pay - disburse a dividend to every holder except the sender
//
// each holder with a positive balance at the snapshot height
// receives balance × amount per unit, in account id order; the
// sender's confirmed balance is debited by the sum actually paid and
// any reserved residue is returned to its unconfirmed balance
//
// returns the recorded event, or nil if nothing was owed; a payment
// that was owed something is recorded even when every share rounds
// down to zero
func (l *Ledger) Pay(p Payment) (*Event, error) {
	assetHolding := holding.Holding{Type: holding.Asset, Id: p.AssetId}

	paid := int64(0)
	count := uint64(0)
	for _, h := range l.balances.Holders(assetHolding, p.Height) {
		if h.Account == p.Sender || h.Balance <= 0 {
			continue
		}
		amount, err := util.UnitRateToAmount(h.Balance, p.AssetDecimals, p.AmountPerUnit, p.HoldingDecimals)
		if nil != err {
			return nil, err
		}
		if 0 == amount {
			continue
		}
		err = l.balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetDividendPayment, p.EventId, h.Account, p.Holding, amount)
		if nil != err {
			return nil, err
		}
		paid, err = util.SafeAdd(paid, amount)
		if nil != err {
			return nil, err
		}
		count += 1
	}

	if paid > p.Total {
		return nil, fault.Detail(fault.ErrInsufficientBalance, "dividend: asset: %d  paid: %d  reserved: %d", p.AssetId, paid, p.Total)
	}

	err := l.balances.AddToBalance(ledger.AssetDividendPayment, p.EventId, p.Sender, p.Holding, -paid)
	if nil != err {
		return nil, err
	}
	err = l.balances.AddToUnconfirmedBalance(ledger.AssetDividendPayment, p.EventId, p.Sender, p.Holding, p.Total-paid)
	if nil != err {
		return nil, err
	}

	l.log.Infof("asset: %d  height: %d  paid: %d  accounts: %d  reserved: %d", p.AssetId, p.Height, paid, count, p.Total)

	if 0 == p.Total {
		return nil, nil
	}

	e := &Event{
		Id:               p.EventId.TransactionId,
		FullHash:         p.EventId.FullHash,
		ChainId:          p.EventId.ChainId,
		AssetId:          p.AssetId,
		Sender:           p.Sender,
		Height:           p.Height,
		Holding:          p.Holding,
		AmountPerUnit:    p.AmountPerUnit,
		TotalDividend:    paid,
		NumberOfAccounts: count,
		Timestamp:        l.blockchain.LastBlockTimestamp(),
		DividendHeight:   l.blockchain.Height(),
	}
	record := e.pack()
	l.events.Put(storage.Key(p.AssetId, storage.Descending(e.DividendHeight), e.Id), record)
	l.last.Put(storage.Key(p.AssetId), record)
	return e, nil
}

// Events - dividends paid on an asset, newest first
func (l *Ledger) Events(assetId uint64, count int) ([]*Event, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	elements, err := l.events.NewFetchCursor().Prefix(storage.Key(assetId)).Fetch(count)
	if nil != err {
		return nil, err
	}
	result := make([]*Event, 0, len(elements))
	for _, element := range elements {
		e, err := unpack(element.Value)
		if nil != err {
			logger.Panicf("dividend: asset: %d  corrupt event: %s", assetId, err)
		}
		result = append(result, e)
	}
	return result, nil
}
