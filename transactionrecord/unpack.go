// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/phasing"
	"github.com/bitmark-inc/exchanged/util"
)

// Unpack - turn a byte slice into the attachment of a subtype
//
// the whole slice must be consumed
//
// must cast result to correct type
//
// e.g.
//   switch a := result.(type) {
//   case *transactionrecord.AssetTransfer:
func (record Packed) Unpack(subtype Subtype) (Attachment, error) {
	if !subtype.Valid() {
		return nil, fault.ErrInvalidSubtype
	}

	r := util.NewWireReader(record)
	if version := r.Byte(); nil == r.Err() && attachmentVersion != version {
		return nil, fault.Detail(fault.ErrInvalidAttachmentVersion, "version: %d", version)
	}

	var result Attachment

	switch subtype {

	case AssetIssuanceSubtype:
		nameLength := int(r.Byte())
		if nameLength > constants.MaxAssetNameLength {
			return nil, fault.Detail(fault.ErrNameTooLong, "length: %d", nameLength)
		}
		name := r.Raw(nameLength)
		descriptionLength := int(r.Uint16())
		if descriptionLength > constants.MaxAssetDescriptionLength {
			return nil, fault.Detail(fault.ErrDescriptionTooLong, "length: %d", descriptionLength)
		}
		description := r.Raw(descriptionLength)
		result = &AssetIssuance{
			Name:        string(name),
			Description: string(description),
			Quantity:    r.Int64(),
			Decimals:    r.Byte(),
		}

	case AssetTransferSubtype:
		result = &AssetTransfer{
			AssetId:  r.Uint64(),
			Quantity: r.Int64(),
		}

	case AssetDeleteSubtype:
		result = &AssetDelete{
			AssetId:  r.Uint64(),
			Quantity: r.Int64(),
		}

	case AssetIncreaseSubtype:
		result = &AssetIncrease{
			AssetId:  r.Uint64(),
			Quantity: r.Int64(),
		}

	case AskOrderPlacementSubtype:
		result = &AskOrderPlacement{
			OrderPlacement: readPlacement(r),
		}

	case BidOrderPlacementSubtype:
		result = &BidOrderPlacement{
			OrderPlacement: readPlacement(r),
		}

	case AskOrderCancellationSubtype:
		result = &AskOrderCancellation{
			OrderCancellation: readCancellation(r),
		}

	case BidOrderCancellationSubtype:
		result = &BidOrderCancellation{
			OrderCancellation: readCancellation(r),
		}

	case DividendPaymentSubtype:
		d := &DividendPayment{
			AssetId: r.Uint64(),
			Height:  r.Uint32(),
		}
		holdingType := r.Byte()
		d.HoldingId = r.Uint64()
		d.AmountPerUnit = r.Int64()
		if nil == r.Err() {
			t, err := holding.FromByte(holdingType)
			if nil != err {
				return nil, err
			}
			d.HoldingType = t
		}
		result = d

	case SetPhasingAssetControlSubtype:
		assetId := r.Uint64()
		params, err := phasing.ReadBinary(r)
		if nil != err {
			return nil, err
		}
		result = &SetPhasingAssetControl{
			AssetId: assetId,
			Params:  *params,
		}
	}

	if nil != r.Err() {
		return nil, r.Err()
	}
	if 0 != r.Remaining() {
		return nil, fault.Detail(fault.ErrUnexpectedRecordLength, "%s: %d extra bytes", subtype, r.Remaining())
	}
	return result, nil
}

func readPlacement(r *util.WireReader) OrderPlacement {
	return OrderPlacement{
		AssetId:  r.Uint64(),
		Quantity: r.Int64(),
		Price:    r.Int64(),
	}
}

func readCancellation(r *util.WireReader) OrderCancellation {
	c := OrderCancellation{}
	copy(c.OrderHash[:], r.Raw(len(c.OrderHash)))
	return c
}
