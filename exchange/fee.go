// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"unicode/utf8"

	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// baseline fees in the smallest coin unit
const (
	DefaultFee        = constants.OneCoin / 100
	IssuanceFee       = 100 * constants.OneCoin
	IncreaseFee       = 10 * constants.OneCoin
	DividendFee       = constants.OneCoin / 10
	PhasingControlFee = 10 * constants.OneCoin

	// singleton issuance: a constant plus a step per started block
	// of description characters beyond the first
	singletonFee         = constants.OneCoin
	singletonFeePerBlock = constants.OneCoin
	singletonBlockSize   = 32
)

func constantFee(fee int64) func(*transactionrecord.Transaction) int64 {
	return func(*transactionrecord.Transaction) int64 {
		return fee
	}
}

func issuanceFee(tx *transactionrecord.Transaction) int64 {
	issuance := tx.Attachment.(*transactionrecord.AssetIssuance)
	if !isSingleton(issuance) {
		return IssuanceFee
	}
	size := utf8.RuneCountInString(issuance.Description) - 1
	if size < 0 {
		return singletonFee
	}
	return singletonFee + int64(size/singletonBlockSize)*singletonFeePerBlock
}

// a single indivisible unit with a short description
func isSingleton(issuance *transactionrecord.AssetIssuance) bool {
	return 1 == issuance.Quantity &&
		0 == issuance.Decimals &&
		utf8.RuneCountInString(issuance.Description) <= constants.MaxSingletonAssetDescriptionLength
}
