// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/fixtures"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/storage"
)

type testChain struct {
	height uint64
}

func (c *testChain) Height() uint64             { return c.height }
func (c *testChain) LastBlockTimestamp() uint64 { return 1000 + c.height }

var (
	alice = account.Id(101)
	bob   = account.Id(202)
	carol = account.Id(303)
	gold  = holding.Holding{Type: holding.Asset, Id: 5555}
	coin  = holding.Holding{Type: holding.Coin, Id: 2}

	someEvent = ledger.EventId{
		TransactionId: 9999,
		FullHash:      merkle.NewDigest([]byte("tx")),
		ChainId:       2,
	}
)

func setup(t *testing.T) (*ledger.Ledger, *testChain) {
	fixtures.SetupTestLogger()
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "storage initialise")

	c := &testChain{height: 1}
	l := ledger.New(c, storage.Pool.Balances, storage.Pool.BalanceHistory, storage.Pool.LedgerEntries)
	return l, c
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func TestBalances(t *testing.T) {
	l, _ := setup(t)
	defer teardown()

	err := l.AddToBalanceAndUnconfirmedBalance(ledger.AssetIssuance, someEvent, alice, gold, 1000)
	assert.Nil(t, err, "issue")

	confirmed, unconfirmed := l.Balance(alice, gold)
	assert.Equal(t, int64(1000), confirmed, "confirmed")
	assert.Equal(t, int64(1000), unconfirmed, "unconfirmed")

	err = l.AddToUnconfirmedBalance(ledger.AssetAskOrderPlacement, someEvent, alice, gold, -400)
	assert.Nil(t, err, "reserve")
	confirmed, unconfirmed = l.Balance(alice, gold)
	assert.Equal(t, int64(1000), confirmed, "confirmed after reserve")
	assert.Equal(t, int64(600), unconfirmed, "unconfirmed after reserve")

	err = l.AddToUnconfirmedBalance(ledger.AssetAskOrderPlacement, someEvent, alice, gold, -601)
	assert.True(t, errors.Is(err, fault.ErrInsufficientBalance), "overdraw: %v", err)
	_, unconfirmed = l.Balance(alice, gold)
	assert.Equal(t, int64(600), unconfirmed, "failed change applied")

	err = l.AddToBalance(ledger.AssetTransfer, someEvent, bob, gold, -1)
	assert.True(t, errors.Is(err, fault.ErrInsufficientBalance), "negative confirmed: %v", err)

	// holdings are independent
	confirmed, unconfirmed = l.Balance(alice, coin)
	assert.Equal(t, int64(0), confirmed, "coin confirmed")
	assert.Equal(t, int64(0), unconfirmed, "coin unconfirmed")
}

func TestHistoryAndHolders(t *testing.T) {
	l, c := setup(t)
	defer teardown()

	c.height = 10
	assert.Nil(t, l.AddToBalanceAndUnconfirmedBalance(ledger.AssetIssuance, someEvent, alice, gold, 1000))

	c.height = 20
	assert.Nil(t, l.AddToBalance(ledger.AssetTransfer, someEvent, alice, gold, -300))
	assert.Nil(t, l.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, someEvent, carol, gold, 300))

	c.height = 30
	assert.Nil(t, l.AddToBalance(ledger.AssetTransfer, someEvent, carol, gold, -300))
	assert.Nil(t, l.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, someEvent, bob, gold, 300))

	assert.Equal(t, int64(0), l.BalanceAt(alice, gold, 9), "before issue")
	assert.Equal(t, int64(1000), l.BalanceAt(alice, gold, 15), "after issue")
	assert.Equal(t, int64(700), l.BalanceAt(alice, gold, 20), "after transfer")
	assert.Equal(t, int64(300), l.BalanceAt(carol, gold, 25), "carol at 25")
	assert.Equal(t, int64(0), l.BalanceAt(carol, gold, 30), "carol at 30")

	assert.Equal(t, []ledger.Holder{{Account: alice, Balance: 1000}}, l.Holders(gold, 10), "holders at 10")
	assert.Equal(t, []ledger.Holder{
		{Account: alice, Balance: 700},
		{Account: carol, Balance: 300},
	}, l.Holders(gold, 20), "holders at 20")
	assert.Equal(t, []ledger.Holder{
		{Account: alice, Balance: 700},
		{Account: bob, Balance: 300},
	}, l.Holders(gold, 30), "holders at 30")
	assert.Equal(t, 0, len(l.Holders(coin, 30)), "coin holders")
}

func TestEntries(t *testing.T) {
	l, c := setup(t)
	defer teardown()

	c.height = 5
	assert.Nil(t, l.AddToBalanceAndUnconfirmedBalance(ledger.AssetIssuance, someEvent, alice, gold, 50))
	assert.Nil(t, l.AddToUnconfirmedBalance(ledger.AssetTransfer, someEvent, alice, gold, -20))
	assert.Nil(t, l.AddToBalance(ledger.AssetTransfer, someEvent, alice, gold, -20))
	assert.Nil(t, l.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, someEvent, bob, gold, 20))

	entries, err := l.Entries(alice, 10)
	assert.Nil(t, err, "entries")
	assert.Equal(t, 2, len(entries), "unconfirmed changes are not audited")
	assert.Equal(t, ledger.Entry{
		Event:     ledger.AssetTransfer,
		EventId:   someEvent,
		Account:   alice,
		Holding:   gold,
		Change:    -20,
		Balance:   30,
		Height:    5,
		Timestamp: 1005,
	}, entries[1], "transfer entry")

	all, err := l.Entries(0, 2)
	assert.Nil(t, err, "all entries")
	assert.Equal(t, 2, len(all), "limited")

	// sequence continues after reopening
	reopened := ledger.New(c, storage.Pool.Balances, storage.Pool.BalanceHistory, storage.Pool.LedgerEntries)
	assert.Nil(t, reopened.AddToBalance(ledger.AssetTransfer, someEvent, bob, gold, -5))
	all, err = reopened.Entries(0, 100)
	assert.Nil(t, err, "all entries")
	assert.Equal(t, 4, len(all), "entry overwritten")

	_, err = l.Entries(alice, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
