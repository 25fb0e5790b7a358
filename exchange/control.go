// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/phasing"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// SetPhasingAssetControl - require approval for every transaction
// involving an asset, or remove that requirement
var SetPhasingAssetControl = register(&Descriptor{
	subtype:          transactionrecord.SetPhasingAssetControlSubtype,
	event:            ledger.AssetSetPhasingControl,
	canHaveRecipient: false,
	phasingSafe:      false,
	global:           true,

	fee:                constantFee(PhasingControlFee),
	validateAttachment: validateControl,
	applyUnconfirmed:   reserveNothing,
	apply:              applyControl,
	duplicate: func(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
		control := tx.Attachment.(*transactionrecord.SetPhasingAssetControl)
		return duplicates.isDuplicate(transactionrecord.SetPhasingAssetControlSubtype, idKey(control.AssetId), true)
	},
	assetId: func(tx *transactionrecord.Transaction) uint64 {
		return tx.Attachment.(*transactionrecord.SetPhasingAssetControl).AssetId
	},
})

func validateControl(env *Environment, tx *transactionrecord.Transaction) error {
	control := tx.Attachment.(*transactionrecord.SetPhasingAssetControl)
	params := &control.Params

	err := params.ValidateRestrictable()
	if nil != err {
		return err
	}

	a := env.Assets.Get(control.AssetId)
	if nil == a {
		return fault.Detail(fault.ErrAssetNotFound, "asset: %d", control.AssetId)
	}

	switch params.VotingModel {
	case phasing.VotingNone:
		if !a.HasPhasingControl {
			return fault.Detail(fault.ErrPhasingControlNotEnabled, "asset: %d", a.Id)
		}
	case phasing.VotingTransaction, phasing.VotingHash:
		return fault.Detail(fault.ErrInvalidVotingModel, "model: %s", params.VotingModel)
	}

	if a.Issuer != tx.Sender {
		return fault.Detail(fault.ErrNotAssetOwner, "asset: %d  issuer: %s", a.Id, a.Issuer)
	}

	// the issuer must hold the whole supply to bring an asset under control
	if !a.HasPhasingControl {
		confirmed, unconfirmed := env.Ledger.Balance(tx.Sender, assetHolding(a.Id))
		if confirmed < a.Quantity || unconfirmed < a.Quantity {
			return fault.Detail(fault.ErrInsufficientAssetOwnership, "asset: %d  supply: %d  confirmed: %d  unconfirmed: %d", a.Id, a.Quantity, confirmed, unconfirmed)
		}
	}
	return nil
}

func applyControl(env *Environment, tx *transactionrecord.Transaction) error {
	control := tx.Attachment.(*transactionrecord.SetPhasingAssetControl)
	params := control.Params
	enabled := env.Control.Set(control.AssetId, &params)
	return env.Assets.SetPhasingControl(control.AssetId, enabled)
}
