// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/exchanged/util"
)

// attachmentVersion - first byte of every packed attachment
const attachmentVersion = byte(1)

func start() util.WireWriter {
	return util.WireWriter{}.Byte(attachmentVersion)
}

// Pack - name and description carry one and two byte lengths
func (issuance *AssetIssuance) Pack() Packed {
	return Packed(start().
		Byte(byte(len(issuance.Name))).
		Raw([]byte(issuance.Name)).
		Uint16(uint16(len(issuance.Description))).
		Raw([]byte(issuance.Description)).
		Int64(issuance.Quantity).
		Byte(issuance.Decimals))
}

func packQuantity(assetId uint64, quantity int64) Packed {
	return Packed(start().
		Uint64(assetId).
		Int64(quantity))
}

// Pack - asset and quantity
func (transfer *AssetTransfer) Pack() Packed {
	return packQuantity(transfer.AssetId, transfer.Quantity)
}

// Pack - asset and quantity
func (d *AssetDelete) Pack() Packed {
	return packQuantity(d.AssetId, d.Quantity)
}

// Pack - asset and quantity
func (increase *AssetIncrease) Pack() Packed {
	return packQuantity(increase.AssetId, increase.Quantity)
}

func (placement *OrderPlacement) pack() Packed {
	return Packed(start().
		Uint64(placement.AssetId).
		Int64(placement.Quantity).
		Int64(placement.Price))
}

// Pack - asset, quantity and price
func (ask *AskOrderPlacement) Pack() Packed {
	return ask.pack()
}

// Pack - asset, quantity and price
func (bid *BidOrderPlacement) Pack() Packed {
	return bid.pack()
}

func (c *OrderCancellation) pack() Packed {
	return Packed(start().Raw(c.OrderHash[:]))
}

// Pack - the order's full hash
func (c *AskOrderCancellation) Pack() Packed {
	return c.pack()
}

// Pack - the order's full hash
func (c *BidOrderCancellation) Pack() Packed {
	return c.pack()
}

// Pack - asset, height, holding and rate
func (d *DividendPayment) Pack() Packed {
	return Packed(start().
		Uint64(d.AssetId).
		Uint32(d.Height).
		Byte(byte(d.HoldingType)).
		Uint64(d.HoldingId).
		Int64(d.AmountPerUnit))
}

// Pack - asset and the phasing parameter block
func (control *SetPhasingAssetControl) Pack() Packed {
	return Packed(control.Params.AppendBinary(start().Uint64(control.AssetId)))
}
