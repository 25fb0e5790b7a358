// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/fixtures"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/order"
	"github.com/bitmark-inc/exchanged/storage"
)

func setup(t *testing.T) *order.Book {
	fixtures.SetupTestLogger()
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "storage initialise")
	return order.New(storage.Pool.AskOrders, storage.Pool.BidOrders)
}

func teardown() {
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func TestBook(t *testing.T) {
	b := setup(t)
	defer teardown()

	ask := &order.Order{
		Kind:           order.Ask,
		Id:             10,
		FullHash:       merkle.NewDigest([]byte("ask")),
		ChainId:        2,
		Account:        99,
		AssetId:        5,
		Quantity:       400,
		Price:          25,
		CreationHeight: 7,
	}
	bid := &order.Order{
		Kind:     order.Bid,
		Id:       10,
		ChainId:  2,
		Account:  98,
		AssetId:  6,
		Quantity: 3,
		Price:    100,
		Amount:   300,
	}

	assert.Nil(t, b.Add(ask), "add ask")
	assert.Nil(t, b.Add(bid), "same id in other book")

	err := b.Add(ask)
	assert.True(t, errors.Is(err, fault.ErrOrderAlreadyExists), "duplicate: %v", err)

	assert.Equal(t, ask, b.Get(order.Ask, 10), "get ask")
	assert.Equal(t, bid, b.Get(order.Bid, 10), "get bid")
	assert.Nil(t, b.Get(order.Ask, 11), "unknown")

	asks, err := b.List(order.Ask, 5, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, []*order.Order{ask}, asks, "asks of asset")

	asks, err = b.List(order.Ask, 6, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, 0, len(asks), "asks of other asset")

	assert.Equal(t, ask, b.Remove(order.Ask, 10), "remove")
	assert.Nil(t, b.Remove(order.Ask, 10), "second remove")
	assert.Nil(t, b.Get(order.Ask, 10), "removed")
	assert.Equal(t, bid, b.Get(order.Bid, 10), "bid remains")
}
