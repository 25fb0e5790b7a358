// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/exchange/mocks"
)

// every hand kept mock must still satisfy its interface
var (
	_ exchange.Blockchain       = (*mocks.MockBlockchain)(nil)
	_ exchange.Ledger           = (*mocks.MockLedger)(nil)
	_ exchange.AssetRegistry    = (*mocks.MockAssetRegistry)(nil)
	_ exchange.TransferRecorder = (*mocks.MockTransferRecorder)(nil)
	_ exchange.OrderBook        = (*mocks.MockOrderBook)(nil)
	_ exchange.DividendLedger   = (*mocks.MockDividendLedger)(nil)
	_ exchange.Currencies       = (*mocks.MockCurrencies)(nil)
	_ exchange.AssetControl     = (*mocks.MockAssetControl)(nil)
)

func TestMockConstructors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	if nil == mocks.NewMockBlockchain(ctrl).EXPECT() {
		t.Error("blockchain recorder missing")
	}
	if nil == mocks.NewMockLedger(ctrl).EXPECT() {
		t.Error("ledger recorder missing")
	}
	if nil == mocks.NewMockAssetControl(ctrl).EXPECT() {
		t.Error("asset control recorder missing")
	}
}
