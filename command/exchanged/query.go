// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/dividend"
	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/order"
	"github.com/bitmark-inc/exchanged/reservoir"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

func parseAssetId(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err || 0 == id {
		return 0, fault.Detail(fault.ErrInvalidAssetId, "%q", s)
	}
	return id, nil
}

func showPending() error {
	type reply struct {
		Count        int                              `json:"count"`
		Transactions []*transactionrecord.Transaction `json:"transactions"`
	}
	txs := reservoir.List()
	return printJson(os.Stdout, reply{Count: len(txs), Transactions: txs})
}

func showAsset(stores *exchange.Stores, s string, count int) error {
	id, err := parseAssetId(s)
	if nil != err {
		return err
	}
	a := stores.Assets.Get(id)
	if nil == a {
		return fault.Detail(fault.ErrAssetNotFound, "asset: %d", id)
	}
	history, err := stores.Assets.History(id, count)
	if nil != err {
		return err
	}

	type reply struct {
		Asset   *asset.Asset    `json:"asset"`
		Supply  string          `json:"supply"`
		History []asset.History `json:"history"`
	}
	return printJson(os.Stdout, reply{
		Asset:   a,
		Supply:  formatAmount(a.Quantity, a.Decimals),
		History: history,
	})
}

// decimals of a holding for display
func holdingDecimals(env *exchange.Environment, stores *exchange.Stores, h holding.Holding) (uint8, error) {
	switch h.Type {
	case holding.Coin:
		return env.Chain.Decimals, nil
	case holding.Asset:
		a := stores.Assets.Get(h.Id)
		if nil == a {
			return 0, fault.Detail(fault.ErrAssetNotFound, "asset: %d", h.Id)
		}
		return a.Decimals, nil
	case holding.Currency:
		c := stores.Currencies.Get(h.Id)
		if nil == c {
			return 0, fault.Detail(fault.ErrCurrencyNotFound, "currency: %d", h.Id)
		}
		return c.Decimals, nil
	default:
		return 0, fault.ErrInvalidHoldingType
	}
}

func showBalance(env *exchange.Environment, stores *exchange.Stores, accountText string, holdingText string) error {
	a, err := parseAccount(accountText)
	if nil != err {
		return err
	}
	h, err := holding.Parse(holdingText, env.Chain.Id)
	if nil != err {
		return err
	}
	decimals, err := holdingDecimals(env, stores, h)
	if nil != err {
		return err
	}

	confirmed, unconfirmed := stores.Ledger.Balance(a, h)
	entries, err := stores.Ledger.Entries(a, defaultCount)
	if nil != err {
		return err
	}

	type reply struct {
		Account     string         `json:"account"`
		Holding     string         `json:"holding"`
		Confirmed   string         `json:"confirmed"`
		Unconfirmed string         `json:"unconfirmed"`
		Entries     []ledger.Entry `json:"entries"`
	}
	return printJson(os.Stdout, reply{
		Account:     a.String(),
		Holding:     h.String(),
		Confirmed:   formatAmount(confirmed, decimals),
		Unconfirmed: formatAmount(unconfirmed, decimals),
		Entries:     entries,
	})
}

func showOrders(stores *exchange.Stores, s string, count int) error {
	id, err := parseAssetId(s)
	if nil != err {
		return err
	}
	asks, err := stores.Orders.List(order.Ask, id, count)
	if nil != err {
		return err
	}
	bids, err := stores.Orders.List(order.Bid, id, count)
	if nil != err {
		return err
	}

	type reply struct {
		Asks []*order.Order `json:"askOrders"`
		Bids []*order.Order `json:"bidOrders"`
	}
	return printJson(os.Stdout, reply{Asks: asks, Bids: bids})
}

func showDividends(env *exchange.Environment, stores *exchange.Stores, s string, count int) error {
	id, err := parseAssetId(s)
	if nil != err {
		return err
	}
	events, err := stores.Dividends.Events(id, count)
	if nil != err {
		return err
	}

	type item struct {
		*dividend.Event
		Total string `json:"total"`
	}
	items := make([]item, len(events))
	for i, e := range events {
		total := fmt.Sprintf("%d", e.TotalDividend)
		if decimals, err := holdingDecimals(env, stores, e.Holding); nil == err {
			total = formatAmount(e.TotalDividend, decimals)
		}
		items[i] = item{Event: e, Total: total}
	}
	return printJson(os.Stdout, items)
}

func showTransfers(stores *exchange.Stores, s string, count int) error {
	var transfers []*asset.Transfer

	id, err := parseAssetId(s)
	if nil == err && nil != stores.Assets.Get(id) {
		transfers, err = stores.Transfers.ByAsset(id, count)
	} else {
		a, e := parseAccount(s)
		if nil != e {
			return e
		}
		transfers, err = stores.Transfers.ByAccount(a, count)
	}
	if nil != err {
		return err
	}
	return printJson(os.Stdout, transfers)
}
