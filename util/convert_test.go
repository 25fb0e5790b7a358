// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/util"
)

func TestUnitRateToAmount(t *testing.T) {
	items := []struct {
		units          int64
		unitsDecimals  uint8
		rate           int64
		amountDecimals uint8
		expected       int64
	}{
		{400, 0, 5, 8, 2000},
		{1, 0, 1, 8, 1},
		{150, 2, 100000000, 8, 150000000}, // 1.50 units at one coin
		{1, 2, 99, 8, 0},                  // 0.01 × 99 truncates
		{199, 2, 1, 8, 1},
		{12345678, 8, 100000000, 8, 12345678},
		{-250, 1, 3, 8, -75},
		{0, 4, 1000, 8, 0},
	}

	for i, item := range items {
		amount, err := util.UnitRateToAmount(item.units, item.unitsDecimals, item.rate, item.amountDecimals)
		assert.Nil(t, err, "%d: unexpected error", i)
		assert.Equal(t, item.expected, amount, "%d: wrong amount", i)
	}
}

func TestUnitRateToAmountOverflow(t *testing.T) {
	_, err := util.UnitRateToAmount(math.MaxInt64, 0, 2, 8)
	assert.Equal(t, fault.ErrArithmeticOverflow, err, "overflow not detected")

	amount, err := util.UnitRateToAmount(math.MaxInt64, 1, 2, 8)
	assert.Nil(t, err, "scaled result fits")
	assert.Equal(t, int64(math.MaxInt64/5), amount, "wrong scaled amount")

	_, err = util.UnitRateToAmount(1, 19, 1, 8)
	assert.Equal(t, fault.ErrInvalidDecimals, err, "decimals not checked")
}

func TestSafeAdd(t *testing.T) {
	n, err := util.SafeAdd(5, -7)
	assert.Nil(t, err)
	assert.Equal(t, int64(-2), n)

	_, err = util.SafeAdd(math.MaxInt64, 1)
	assert.Equal(t, fault.ErrArithmeticOverflow, err)

	_, err = util.SafeAdd(math.MinInt64, -1)
	assert.Equal(t, fault.ErrArithmeticOverflow, err)
}
