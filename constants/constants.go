// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// the root chain coin
const (
	OneCoin = int64(100000000)

	// global bound on any balance or price, whatever the child chain
	MaxBalance = int64(1000000000) * OneCoin
)

// asset limits
const (
	MaxAssetQuantity                   = int64(1000000000) * int64(100000000)
	MaxAssetDecimals                   = 8
	MinAssetNameLength                 = 3
	MaxAssetNameLength                 = 10
	MaxAssetDescriptionLength          = 1000
	MaxSingletonAssetDescriptionLength = 160
)

// Alphabet - permitted characters of a lower-cased asset name
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// block windows
const (
	MaxRollback                = 800
	MaxDividendPaymentRollback = MaxRollback - 2

	// live network; see MinDividendPaymentInterval()
	minDividendPaymentIntervalLive    = 60
	minDividendPaymentIntervalTesting = 3
)

// phasing limits
const (
	MaxPhasingWhitelistSize = 10
)

// pending pool
const (
	ReservoirTimeout    = 24 * time.Hour
	ExpiryCheckInterval = 1 * time.Minute
)

// MinDividendPaymentInterval - blocks required between dividend
// payments of the same asset
func MinDividendPaymentInterval(testing bool) uint64 {
	if testing {
		return minDividendPaymentIntervalTesting
	}
	return minDividendPaymentIntervalLive
}
