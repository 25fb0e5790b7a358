// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
	"math/big"

	"github.com/bitmark-inc/exchanged/fault"
)

// powers of ten for decimals 0..18
var tens [19]*big.Int

func init() {
	ten := big.NewInt(10)
	tens[0] = big.NewInt(1)
	for i := 1; i < len(tens); i += 1 {
		tens[i] = new(big.Int).Mul(tens[i-1], ten)
	}
}

// UnitRateToAmount - convert a unit quantity at a per-unit rate into an amount
//
// units carry unitsDecimals implied decimals and the rate is quoted per
// whole unit in the smallest amount unit (amountDecimals implied
// decimals), so the result is:
//
//   units × rate / 10^unitsDecimals
//
// truncated toward zero; fails if the result does not fit an int64
func UnitRateToAmount(units int64, unitsDecimals uint8, rate int64, amountDecimals uint8) (int64, error) {
	if int(unitsDecimals) >= len(tens) || int(amountDecimals) >= len(tens) {
		return 0, fault.ErrInvalidDecimals
	}

	product := new(big.Int).Mul(big.NewInt(units), big.NewInt(rate))
	product.Quo(product, tens[unitsDecimals])

	if !product.IsInt64() {
		return 0, fault.ErrArithmeticOverflow
	}
	return product.Int64(), nil
}

// SafeAdd - add two amounts, failing on overflow
func SafeAdd(a int64, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fault.ErrArithmeticOverflow
	}
	return a + b, nil
}
