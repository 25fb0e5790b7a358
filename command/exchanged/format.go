// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/exchanged/account"
)

// an amount in smallest units shown in whole units
func formatAmount(value int64, decimals uint8) string {
	return decimal.New(value, -int32(decimals)).StringFixed(int32(decimals))
}

// a base58 account or a decimal account number
func parseAccount(s string) (account.Id, error) {
	if n, err := strconv.ParseUint(s, 10, 64); nil == err {
		return account.Id(n), nil
	}
	return account.FromBase58(s)
}

func countArgument(arguments []string) int {
	if len(arguments) < 2 {
		return defaultCount
	}
	n, err := strconv.Atoi(arguments[1])
	if nil != err || n <= 0 {
		return defaultCount
	}
	return n
}
