// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strconv"
)

// AssetExchangeType - transaction type byte of every record here
const AssetExchangeType = byte(2)

// Subtype - code of an asset exchange transaction
type Subtype byte

// enumerate the possible subtypes
// the values are the wire codes and must not change
const (
	AssetIssuanceSubtype          = Subtype(0)
	AssetTransferSubtype          = Subtype(1)
	AskOrderPlacementSubtype      = Subtype(2)
	BidOrderPlacementSubtype      = Subtype(3)
	AskOrderCancellationSubtype   = Subtype(4)
	BidOrderCancellationSubtype   = Subtype(5)
	DividendPaymentSubtype        = Subtype(6)
	AssetDeleteSubtype            = Subtype(7)
	AssetIncreaseSubtype          = Subtype(8)
	SetPhasingAssetControlSubtype = Subtype(9)

	// this item must be last
	InvalidSubtype = Subtype(10)
)

var subtypeNames = [InvalidSubtype]string{
	"AssetIssuance",
	"AssetTransfer",
	"AskOrderPlacement",
	"BidOrderPlacement",
	"AskOrderCancellation",
	"BidOrderCancellation",
	"DividendPayment",
	"AssetDelete",
	"AssetIncrease",
	"SetPhasingAssetControl",
}

// Valid - true for a known subtype
func (s Subtype) Valid() bool {
	return s < InvalidSubtype
}

// String - subtype name
func (s Subtype) String() string {
	if s.Valid() {
		return subtypeNames[s]
	}
	return "Subtype(" + strconv.Itoa(int(s)) + ")"
}
