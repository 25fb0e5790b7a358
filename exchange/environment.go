// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/chain"
	"github.com/bitmark-inc/exchanged/currency"
	"github.com/bitmark-inc/exchanged/dividend"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/order"
	"github.com/bitmark-inc/exchanged/phasing"
)

// Blockchain - current application height and block time
type Blockchain interface {
	Height() uint64
	LastBlockTimestamp() uint64
}

// Ledger - confirmed and unconfirmed balances of any holding
type Ledger interface {
	Balance(account.Id, holding.Holding) (int64, int64)
	BalanceAt(account.Id, holding.Holding, uint64) int64
	AddToBalance(ledger.Event, ledger.EventId, account.Id, holding.Holding, int64) error
	AddToUnconfirmedBalance(ledger.Event, ledger.EventId, account.Id, holding.Holding, int64) error
	AddToBalanceAndUnconfirmedBalance(ledger.Event, ledger.EventId, account.Id, holding.Holding, int64) error
}

// AssetRegistry - current and historical asset records
type AssetRegistry interface {
	Get(uint64) *asset.Asset
	GetAt(uint64, uint64) *asset.Asset
	Add(*asset.Asset) error
	DeleteQuantity(asset.History) error
	IncreaseQuantity(asset.History) error
	SetPhasingControl(uint64, bool) error
}

// TransferRecorder - append only asset transfer history
type TransferRecorder interface {
	Add(asset.Transfer) (*asset.Transfer, error)
}

// OrderBook - open asks and bids
type OrderBook interface {
	Add(*order.Order) error
	Get(order.Kind, uint64) *order.Order
	Remove(order.Kind, uint64) *order.Order
}

// DividendLedger - dividend records and disbursement
type DividendLedger interface {
	Last(uint64) *dividend.Event
	Pay(dividend.Payment) (*dividend.Event, error)
}

// Currencies - monetary system currencies
type Currencies interface {
	Get(uint64) *currency.Currency
}

// AssetControl - phasing parameters of controlled assets
type AssetControl interface {
	Get(uint64) *phasing.Params
	Set(uint64, *phasing.Params) bool
}

// Environment - the collaborators a descriptor reads and mutates
//
// every transaction processed against one environment must belong
// to Chain
type Environment struct {
	Blockchain Blockchain
	Ledger     Ledger
	Assets     AssetRegistry
	Transfers  TransferRecorder
	Orders     OrderBook
	Dividends  DividendLedger
	Currencies Currencies
	Control    AssetControl
	Chain      *chain.ChildChain

	// selects the short dividend interval of test networks
	Testing bool

	log *logger.L
}

// Log - the channel descriptors log to
func (env *Environment) Log() *logger.L {
	if nil == env.log {
		env.log = logger.New("exchange")
	}
	return env.log
}

// coin - the native coin of the environment's chain
func (env *Environment) coin() holding.Holding {
	return holding.Holding{Type: holding.Coin, Id: env.Chain.Id}
}
