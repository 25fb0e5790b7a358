// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/fixtures"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/storage"
)

type testChain struct {
	height uint64
}

func (c *testChain) Height() uint64             { return c.height }
func (c *testChain) LastBlockTimestamp() uint64 { return 5000 + c.height }

type recordingSink struct {
	received []*asset.Transfer
}

func (s *recordingSink) Transferred(t *asset.Transfer) {
	s.received = append(s.received, t)
}

const (
	issuer = account.Id(11)
	holder = account.Id(22)
)

func setup(t *testing.T) (*asset.Registry, *testChain) {
	fixtures.SetupTestLogger()
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "storage initialise")

	c := &testChain{height: 100}
	r := asset.New(c, storage.Pool.Assets, storage.Pool.AssetVersions, storage.Pool.AssetHistory)
	return r, c
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func newAsset() *asset.Asset {
	return &asset.Asset{
		Id:          777,
		Issuer:      issuer,
		Name:        "gold",
		Description: "bars",
		Decimals:    2,
		Quantity:    1000,
	}
}

func TestAddAndGet(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	assert.Nil(t, r.Get(777), "not yet issued")

	err := r.Add(newAsset())
	assert.Nil(t, err, "add")

	a := r.Get(777)
	assert.Equal(t, int64(1000), a.Quantity, "quantity")
	assert.Equal(t, int64(1000), a.InitialQuantity, "initial quantity")
	assert.Equal(t, uint64(100), a.Height, "height")

	err = r.Add(newAsset())
	assert.True(t, errors.Is(err, fault.ErrAssetAlreadyExists), "duplicate: %v", err)

	bad := newAsset()
	bad.Id = 778
	bad.Quantity = 0
	assert.Equal(t, fault.ErrInvalidQuantity, r.Add(bad), "zero quantity")
}

func TestQuantityChanges(t *testing.T) {
	r, c := setup(t)
	defer teardown()

	assert.Nil(t, r.Add(newAsset()))

	c.height = 110
	err := r.DeleteQuantity(asset.History{Id: 1, AssetId: 777, Account: issuer, Quantity: 200})
	assert.Nil(t, err, "delete")

	c.height = 120
	err = r.IncreaseQuantity(asset.History{Id: 2, AssetId: 777, Account: issuer, Quantity: 50})
	assert.Nil(t, err, "increase")

	assert.Equal(t, int64(850), r.Get(777).Quantity, "current supply")
	assert.Nil(t, r.GetAt(777, 99), "before issue")
	assert.Equal(t, int64(1000), r.GetAt(777, 109).Quantity, "at 109")
	assert.Equal(t, int64(800), r.GetAt(777, 110).Quantity, "at 110")
	assert.Equal(t, int64(850), r.GetAt(777, 500).Quantity, "at 500")

	history, err := r.History(777, 10)
	assert.Nil(t, err, "history")
	assert.Equal(t, 2, len(history), "history length")
	assert.Equal(t, int64(50), history[0].Quantity, "newest first")
	assert.Equal(t, int64(-200), history[1].Quantity, "delete is negative")
	assert.Equal(t, uint64(5110), history[1].Timestamp, "timestamp")

	err = r.DeleteQuantity(asset.History{Id: 3, AssetId: 777, Quantity: 851})
	assert.True(t, errors.Is(err, fault.ErrAssetQuantityExceeded), "over delete: %v", err)

	err = r.DeleteQuantity(asset.History{Id: 3, AssetId: 9, Quantity: 1})
	assert.True(t, errors.Is(err, fault.ErrAssetNotFound), "unknown asset: %v", err)

	// whole supply deleted keeps the record
	assert.Nil(t, r.DeleteQuantity(asset.History{Id: 4, AssetId: 777, Quantity: 850}))
	assert.Equal(t, int64(0), r.Get(777).Quantity, "deleted asset remains")
}

func TestPhasingFlag(t *testing.T) {
	r, c := setup(t)
	defer teardown()

	assert.Nil(t, r.Add(newAsset()))
	c.height = 150
	assert.Nil(t, r.SetPhasingControl(777, true), "enable")
	assert.True(t, r.Get(777).HasPhasingControl, "enabled")
	assert.False(t, r.GetAt(777, 149).HasPhasingControl, "earlier version")

	err := r.SetPhasingControl(1, true)
	assert.True(t, errors.Is(err, fault.ErrAssetNotFound), "unknown asset: %v", err)
}

func TestTransfers(t *testing.T) {
	_, c := setup(t)
	defer teardown()

	sink := &recordingSink{}
	transfers := asset.NewTransfers(c, storage.Pool.Transfers, storage.Pool.AssetTransfers, storage.Pool.AccountTransfer, sink)

	first, err := transfers.Add(asset.Transfer{
		Id:        1001,
		FullHash:  merkle.NewDigest([]byte("one")),
		ChainId:   2,
		AssetId:   777,
		Sender:    issuer,
		Recipient: holder,
		Quantity:  10,
	})
	assert.Nil(t, err, "first")
	assert.Equal(t, uint64(100), first.Height, "height")

	c.height = 101
	_, err = transfers.Add(asset.Transfer{
		Id:        1002,
		ChainId:   2,
		AssetId:   777,
		Sender:    holder,
		Recipient: issuer,
		Quantity:  3,
	})
	assert.Nil(t, err, "second")

	_, err = transfers.Add(asset.Transfer{Id: 1002, AssetId: 777})
	assert.True(t, errors.Is(err, fault.ErrDuplicateTransaction), "duplicate: %v", err)

	assert.Equal(t, 2, len(sink.received), "sink notifications")
	assert.Equal(t, first, sink.received[0], "sink record")

	byAsset, err := transfers.ByAsset(777, 10)
	assert.Nil(t, err, "by asset")
	assert.Equal(t, 2, len(byAsset), "by asset count")
	assert.Equal(t, uint64(1002), byAsset[0].Id, "newest first")

	byAccount, err := transfers.ByAccount(holder, 1)
	assert.Nil(t, err, "by account")
	assert.Equal(t, 1, len(byAccount), "limited")
	assert.Equal(t, uint64(1002), byAccount[0].Id, "newest first")

	assert.Equal(t, first, transfers.Get(1001), "get")
	assert.Nil(t, transfers.Get(5), "unknown transfer")
}
