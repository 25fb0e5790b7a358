// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dividend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/dividend"
	"github.com/bitmark-inc/exchanged/fixtures"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/storage"
)

type testChain struct {
	height uint64
}

func (c *testChain) Height() uint64             { return c.height }
func (c *testChain) LastBlockTimestamp() uint64 { return 9000 + c.height }

const (
	issuer = account.Id(1)
	first  = account.Id(2)
	second = account.Id(3)
	dust   = account.Id(4)

	assetId = uint64(4444)
)

var (
	gold = holding.Holding{Type: holding.Asset, Id: assetId}
	coin = holding.Holding{Type: holding.Coin, Id: 2}
	tx   = ledger.EventId{TransactionId: 70, ChainId: 2}
)

func setup(t *testing.T) (*dividend.Ledger, *ledger.Ledger, *testChain) {
	fixtures.SetupTestLogger()
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "storage initialise")

	c := &testChain{height: 10}
	balances := ledger.New(c, storage.Pool.Balances, storage.Pool.BalanceHistory, storage.Pool.LedgerEntries)
	dividends := dividend.New(c, balances, storage.Pool.Dividends, storage.Pool.LastDividend)

	// asset has 2 decimals: 1000 units = 10.00 shares
	assert.Nil(t, balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetIssuance, tx, issuer, gold, 1000))
	assert.Nil(t, balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetIssuance, tx, issuer, coin, 100000))
	c.height = 20
	assert.Nil(t, balances.AddToBalance(ledger.AssetTransfer, tx, issuer, gold, -751))
	assert.Nil(t, balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, tx, first, gold, 500))
	assert.Nil(t, balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, tx, second, gold, 250))
	assert.Nil(t, balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, tx, dust, gold, 1))

	return dividends, balances, c
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func TestPay(t *testing.T) {
	dividends, balances, c := setup(t)
	defer teardown()

	assert.Nil(t, dividends.Last(assetId), "no dividend yet")

	// 30 per whole share: eligible 751 units → 225.3 → 225 reserved
	total := int64(225)
	assert.Nil(t, balances.AddToUnconfirmedBalance(ledger.AssetDividendPayment, tx, issuer, coin, -total))

	c.height = 30
	e, err := dividends.Pay(dividend.Payment{
		EventId:         tx,
		Sender:          issuer,
		AssetId:         assetId,
		AssetDecimals:   2,
		Height:          20,
		Holding:         coin,
		HoldingDecimals: 8,
		AmountPerUnit:   30,
		Total:           total,
	})
	assert.Nil(t, err, "pay")

	// 500 → 150, 250 → 75, 1 → 0
	assert.Equal(t, int64(225), e.TotalDividend, "paid")
	assert.Equal(t, uint64(2), e.NumberOfAccounts, "accounts")
	assert.Equal(t, uint64(30), e.DividendHeight, "application height")
	assert.Equal(t, uint64(20), e.Height, "snapshot height")

	confirmed, unconfirmed := balances.Balance(first, coin)
	assert.Equal(t, int64(150), confirmed, "first confirmed")
	assert.Equal(t, int64(150), unconfirmed, "first unconfirmed")
	confirmed, _ = balances.Balance(dust, coin)
	assert.Equal(t, int64(0), confirmed, "dust holder")

	confirmed, unconfirmed = balances.Balance(issuer, coin)
	assert.Equal(t, int64(100000-225), confirmed, "sender confirmed")
	assert.Equal(t, int64(100000-225), unconfirmed, "sender unconfirmed")

	assert.Equal(t, e, dividends.Last(assetId), "last dividend")
	events, err := dividends.Events(assetId, 10)
	assert.Nil(t, err, "events")
	assert.Equal(t, []*dividend.Event{e}, events, "events")
}

func TestPayReturnsResidue(t *testing.T) {
	dividends, balances, c := setup(t)
	defer teardown()

	// reserve more than holders are paid
	total := int64(300)
	assert.Nil(t, balances.AddToUnconfirmedBalance(ledger.AssetDividendPayment, tx, issuer, coin, -total))

	c.height = 30
	e, err := dividends.Pay(dividend.Payment{
		EventId:         tx,
		Sender:          issuer,
		AssetId:         assetId,
		AssetDecimals:   2,
		Height:          20,
		Holding:         coin,
		HoldingDecimals: 8,
		AmountPerUnit:   30,
		Total:           total,
	})
	assert.Nil(t, err, "pay")
	assert.Equal(t, int64(225), e.TotalDividend, "paid")

	confirmed, unconfirmed := balances.Balance(issuer, coin)
	assert.Equal(t, int64(100000-225), confirmed, "sender confirmed")
	assert.Equal(t, confirmed, unconfirmed, "residue returned")
}

func TestPayNothing(t *testing.T) {
	dividends, balances, c := setup(t)
	defer teardown()

	// snapshot before any transfer: only the sender holds the asset
	c.height = 30
	e, err := dividends.Pay(dividend.Payment{
		EventId:         tx,
		Sender:          issuer,
		AssetId:         assetId,
		AssetDecimals:   2,
		Height:          10,
		Holding:         coin,
		HoldingDecimals: 8,
		AmountPerUnit:   30,
		Total:           0,
	})
	assert.Nil(t, err, "pay")
	assert.Nil(t, e, "no event for zero payment")
	assert.Nil(t, dividends.Last(assetId), "no last dividend")

	confirmed, unconfirmed := balances.Balance(issuer, coin)
	assert.Equal(t, int64(100000), confirmed, "sender confirmed")
	assert.Equal(t, int64(100000), unconfirmed, "sender unconfirmed")
}

func TestPayAllSharesRoundToZero(t *testing.T) {
	dividends, balances, c := setup(t)
	defer teardown()

	// issuer hands its remaining 249 units to dust: eligible 1000 units
	c.height = 25
	assert.Nil(t, balances.AddToBalance(ledger.AssetTransfer, tx, issuer, gold, -249))
	assert.Nil(t, balances.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, tx, dust, gold, 249))

	// 3 decimals: 1000 units earn 1, but 500, 250 and 250 each earn 0
	total := int64(1)
	assert.Nil(t, balances.AddToUnconfirmedBalance(ledger.AssetDividendPayment, tx, issuer, coin, -total))

	c.height = 30
	e, err := dividends.Pay(dividend.Payment{
		EventId:         tx,
		Sender:          issuer,
		AssetId:         assetId,
		AssetDecimals:   3,
		Height:          25,
		Holding:         coin,
		HoldingDecimals: 8,
		AmountPerUnit:   1,
		Total:           total,
	})
	assert.Nil(t, err, "pay")
	if assert.NotNil(t, e, "event for an owed dividend") {
		assert.Equal(t, int64(0), e.TotalDividend, "paid")
		assert.Equal(t, uint64(0), e.NumberOfAccounts, "accounts")
		assert.Equal(t, uint64(30), e.DividendHeight, "dividend height")
	}

	last := dividends.Last(assetId)
	if assert.NotNil(t, last, "last dividend starts the interval") {
		assert.Equal(t, uint64(30), last.DividendHeight)
	}

	confirmed, unconfirmed := balances.Balance(issuer, coin)
	assert.Equal(t, int64(100000), confirmed, "sender confirmed")
	assert.Equal(t, int64(100000), unconfirmed, "reservation returned")

	confirmed, _ = balances.Balance(first, coin)
	assert.Equal(t, int64(0), confirmed, "holder paid")
}
