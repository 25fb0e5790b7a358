// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"strconv"

	"github.com/bitmark-inc/exchanged/merkle"
)

// Event - the reason for a balance change
type Event byte

// all ledger events
const (
	AssetIssuance Event = iota + 1
	AssetTransfer
	AssetAskOrderPlacement
	AssetBidOrderPlacement
	AssetAskOrderCancellation
	AssetBidOrderCancellation
	AssetDividendPayment
	AssetDelete
	AssetIncrease
	AssetSetPhasingControl
)

var eventNames = map[Event]string{
	AssetIssuance:             "ASSET_ISSUANCE",
	AssetTransfer:             "ASSET_TRANSFER",
	AssetAskOrderPlacement:    "ASSET_ASK_ORDER_PLACEMENT",
	AssetBidOrderPlacement:    "ASSET_BID_ORDER_PLACEMENT",
	AssetAskOrderCancellation: "ASSET_ASK_ORDER_CANCELLATION",
	AssetBidOrderCancellation: "ASSET_BID_ORDER_CANCELLATION",
	AssetDividendPayment:      "ASSET_DIVIDEND_PAYMENT",
	AssetDelete:               "ASSET_DELETE",
	AssetIncrease:             "ASSET_INCREASE",
	AssetSetPhasingControl:    "ASSET_SET_PHASING_CONTROL",
}

// String - event name
func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return "EVENT(" + strconv.Itoa(int(e)) + ")"
}

// MarshalText - event name for JSON
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// EventId - identifies the transaction that caused a change
type EventId struct {
	TransactionId uint64        `json:"transaction,string"`
	FullHash      merkle.Digest `json:"fullHash"`
	ChainId       uint64        `json:"chain"`
}
