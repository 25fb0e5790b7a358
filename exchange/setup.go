// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/chain"
	"github.com/bitmark-inc/exchanged/currency"
	"github.com/bitmark-inc/exchanged/dividend"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/order"
	"github.com/bitmark-inc/exchanged/phasing"
	"github.com/bitmark-inc/exchanged/storage"
)

// Stores - the storage backed collaborators of an environment
//
// kept so callers can reach query methods outside the narrow
// interfaces the descriptors use
type Stores struct {
	Ledger     *ledger.Ledger
	Assets     *asset.Registry
	Transfers  *asset.Transfers
	Orders     *order.Book
	Dividends  *dividend.Ledger
	Currencies *currency.Registry
	Control    *phasing.Control
}

// NewEnvironment - wire the storage backed collaborators over the
// opened storage pools
//
// storage must be initialised; sink may be nil
func NewEnvironment(blockchain Blockchain, childChain *chain.ChildChain, testing bool, sink asset.TransferSink) (*Environment, *Stores) {
	balances := ledger.New(blockchain, storage.Pool.Balances, storage.Pool.BalanceHistory, storage.Pool.LedgerEntries)

	stores := &Stores{
		Ledger:     balances,
		Assets:     asset.New(blockchain, storage.Pool.Assets, storage.Pool.AssetVersions, storage.Pool.AssetHistory),
		Transfers:  asset.NewTransfers(blockchain, storage.Pool.Transfers, storage.Pool.AssetTransfers, storage.Pool.AccountTransfer, sink),
		Orders:     order.New(storage.Pool.AskOrders, storage.Pool.BidOrders),
		Dividends:  dividend.New(blockchain, balances, storage.Pool.Dividends, storage.Pool.LastDividend),
		Currencies: currency.New(storage.Pool.Currencies),
		Control:    phasing.NewControl(storage.Pool.PhasingControl),
	}

	env := &Environment{
		Blockchain: blockchain,
		Ledger:     stores.Ledger,
		Assets:     stores.Assets,
		Transfers:  stores.Transfers,
		Orders:     stores.Orders,
		Dividends:  stores.Dividends,
		Currencies: stores.Currencies,
		Control:    stores.Control,
		Chain:      childChain,
		Testing:    testing,
		log:        logger.New("exchange"),
	}
	env.log.Infof("chain: %s  testing: %t", childChain.Name, testing)
	return env, stores
}
