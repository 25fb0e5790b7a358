// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/phasing"
)

// Packed - packed attachments are just a byte slice
type Packed []byte

// Attachment - the subtype specific part of a transaction
type Attachment interface {
	Subtype() Subtype
	Pack() Packed
}

// AssetIssuance - create a new asset
type AssetIssuance struct {
	Name        string `json:"name"`               // utf-8
	Description string `json:"description"`        // utf-8
	Quantity    int64  `json:"quantityQNT,string"` // in smallest units
	Decimals    uint8  `json:"decimals"`           // 0..8
}

// AssetTransfer - move units to the recipient
type AssetTransfer struct {
	AssetId  uint64 `json:"asset,string"`
	Quantity int64  `json:"quantityQNT,string"`
}

// AssetDelete - destroy units held by the sender
type AssetDelete struct {
	AssetId  uint64 `json:"asset,string"`
	Quantity int64  `json:"quantityQNT,string"`
}

// AssetIncrease - issue more units to the issuer
type AssetIncrease struct {
	AssetId  uint64 `json:"asset,string"`
	Quantity int64  `json:"quantityQNT,string"`
}

// OrderPlacement - the shared fields of ask and bid orders
type OrderPlacement struct {
	AssetId  uint64 `json:"asset,string"`
	Quantity int64  `json:"quantityQNT,string"`
	Price    int64  `json:"priceNQTPerShare,string"` // per whole unit of the asset
}

// AskOrderPlacement - offer units for sale
type AskOrderPlacement struct {
	OrderPlacement
}

// BidOrderPlacement - offer to buy units
type BidOrderPlacement struct {
	OrderPlacement
}

// OrderCancellation - the shared field of the cancellations
type OrderCancellation struct {
	OrderHash merkle.Digest `json:"orderHash"` // hex
}

// OrderId - id of the order being cancelled
func (c *OrderCancellation) OrderId() uint64 {
	return c.OrderHash.Id()
}

// AskOrderCancellation - cancel an open ask
type AskOrderCancellation struct {
	OrderCancellation
}

// BidOrderCancellation - cancel an open bid
type BidOrderCancellation struct {
	OrderCancellation
}

// DividendPayment - pay holders of an asset as of a height
type DividendPayment struct {
	AssetId       uint64       `json:"asset,string"`
	Height        uint32       `json:"height"`
	HoldingType   holding.Type `json:"holdingType"`
	HoldingId     uint64       `json:"holding,string"`
	AmountPerUnit int64        `json:"amountNQTPerShare,string"` // per whole unit of the asset
}

// Holding - the holding paid out
func (d *DividendPayment) Holding() holding.Holding {
	return holding.Holding{Type: d.HoldingType, Id: d.HoldingId}
}

// SetPhasingAssetControl - set or clear the approval rules of an asset
type SetPhasingAssetControl struct {
	AssetId uint64         `json:"asset,string"`
	Params  phasing.Params `json:"phasingControlParams"`
}

// Subtype - the subtype of each attachment
func (*AssetIssuance) Subtype() Subtype          { return AssetIssuanceSubtype }
func (*AssetTransfer) Subtype() Subtype          { return AssetTransferSubtype }
func (*AskOrderPlacement) Subtype() Subtype      { return AskOrderPlacementSubtype }
func (*BidOrderPlacement) Subtype() Subtype      { return BidOrderPlacementSubtype }
func (*AskOrderCancellation) Subtype() Subtype   { return AskOrderCancellationSubtype }
func (*BidOrderCancellation) Subtype() Subtype   { return BidOrderCancellationSubtype }
func (*DividendPayment) Subtype() Subtype        { return DividendPaymentSubtype }
func (*AssetDelete) Subtype() Subtype            { return AssetDeleteSubtype }
func (*AssetIncrease) Subtype() Subtype          { return AssetIncreaseSubtype }
func (*SetPhasingAssetControl) Subtype() Subtype { return SetPhasingAssetControlSubtype }

// allocate an empty attachment for a subtype
func newAttachment(subtype Subtype) Attachment {
	switch subtype {
	case AssetIssuanceSubtype:
		return &AssetIssuance{}
	case AssetTransferSubtype:
		return &AssetTransfer{}
	case AskOrderPlacementSubtype:
		return &AskOrderPlacement{}
	case BidOrderPlacementSubtype:
		return &BidOrderPlacement{}
	case AskOrderCancellationSubtype:
		return &AskOrderCancellation{}
	case BidOrderCancellationSubtype:
		return &BidOrderCancellation{}
	case DividendPaymentSubtype:
		return &DividendPayment{}
	case AssetDeleteSubtype:
		return &AssetDelete{}
	case AssetIncreaseSubtype:
		return &AssetIncrease{}
	case SetPhasingAssetControlSubtype:
		return &SetPhasingAssetControl{}
	default:
		return nil
	}
}
