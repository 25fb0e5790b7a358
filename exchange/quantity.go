// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// AssetTransfer - move units from the sender to the recipient
var AssetTransfer = register(&Descriptor{
	subtype:          transactionrecord.AssetTransferSubtype,
	event:            ledger.AssetTransfer,
	canHaveRecipient: true,
	phasingSafe:      true,
	global:           false,

	validateAttachment: validateTransfer,
	applyUnconfirmed:   reserveTransfer,
	apply:              applyTransfer,
	undoUnconfirmed:    undoTransfer,
	assetId: func(tx *transactionrecord.Transaction) uint64 {
		return tx.Attachment.(*transactionrecord.AssetTransfer).AssetId
	},
})

// AssetDelete - destroy units held by the sender
var AssetDelete = register(&Descriptor{
	subtype:          transactionrecord.AssetDeleteSubtype,
	event:            ledger.AssetDelete,
	canHaveRecipient: false,
	phasingSafe:      true,
	global:           false,

	validateAttachment: validateDelete,
	applyUnconfirmed:   reserveDelete,
	apply:              applyDelete,
	undoUnconfirmed:    undoDelete,
	assetId: func(tx *transactionrecord.Transaction) uint64 {
		return tx.Attachment.(*transactionrecord.AssetDelete).AssetId
	},
})

// AssetIncrease - issue more units to the issuer
var AssetIncrease = register(&Descriptor{
	subtype:          transactionrecord.AssetIncreaseSubtype,
	event:            ledger.AssetIncrease,
	canHaveRecipient: false,
	phasingSafe:      false,
	global:           true,

	fee:                constantFee(IncreaseFee),
	validateAttachment: validateIncrease,
	applyUnconfirmed:   reserveNothing,
	apply:              applyIncrease,
	duplicate: func(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
		increase := tx.Attachment.(*transactionrecord.AssetIncrease)
		return duplicates.isDuplicate(transactionrecord.AssetIncreaseSubtype, idKey(increase.AssetId), true)
	},
})

func assetHolding(assetId uint64) holding.Holding {
	return holding.Holding{Type: holding.Asset, Id: assetId}
}

// checks shared by transfer, delete and increase
func validateQuantity(env *Environment, assetId uint64, quantity int64) (*asset.Asset, error) {
	if 0 == assetId {
		return nil, fault.ErrInvalidAssetId
	}
	if quantity <= 0 || quantity > constants.MaxAssetQuantity {
		return nil, fault.Detail(fault.ErrInvalidQuantity, "quantity: %d", quantity)
	}
	a := env.Assets.Get(assetId)
	if nil == a {
		return nil, fault.Detail(fault.ErrAssetNotFound, "asset: %d", assetId)
	}
	return a, nil
}

func validateTransfer(env *Environment, tx *transactionrecord.Transaction) error {
	transfer := tx.Attachment.(*transactionrecord.AssetTransfer)
	if 0 != tx.Amount {
		return fault.Detail(fault.ErrZeroAmountTransfer, "amount: %d", tx.Amount)
	}
	a, err := validateQuantity(env, transfer.AssetId, transfer.Quantity)
	if nil != err {
		return err
	}
	if transfer.Quantity > a.Quantity {
		return fault.Detail(fault.ErrAssetQuantityExceeded, "asset: %d  supply: %d  quantity: %d", a.Id, a.Quantity, transfer.Quantity)
	}
	return nil
}

// reserve units from the sender's unconfirmed balance if it covers them
func reserveAsset(env *Environment, tx *transactionrecord.Transaction, event ledger.Event, assetId uint64, quantity int64) (bool, error) {
	h := assetHolding(assetId)
	_, unconfirmed := env.Ledger.Balance(tx.Sender, h)
	if unconfirmed < quantity {
		return false, nil
	}
	err := env.Ledger.AddToUnconfirmedBalance(event, eventId(tx), tx.Sender, h, -quantity)
	if nil != err {
		return false, err
	}
	return true, nil
}

func reserveTransfer(env *Environment, tx *transactionrecord.Transaction) (bool, error) {
	transfer := tx.Attachment.(*transactionrecord.AssetTransfer)
	return reserveAsset(env, tx, ledger.AssetTransfer, transfer.AssetId, transfer.Quantity)
}

func applyTransfer(env *Environment, tx *transactionrecord.Transaction) error {
	transfer := tx.Attachment.(*transactionrecord.AssetTransfer)
	h := assetHolding(transfer.AssetId)
	id := eventId(tx)

	err := env.Ledger.AddToBalance(ledger.AssetTransfer, id, tx.Sender, h, -transfer.Quantity)
	if nil != err {
		return err
	}
	err = env.Ledger.AddToBalanceAndUnconfirmedBalance(ledger.AssetTransfer, id, tx.Recipient, h, transfer.Quantity)
	if nil != err {
		return err
	}
	_, err = env.Transfers.Add(asset.Transfer{
		Id:        tx.Id,
		FullHash:  tx.FullHash,
		ChainId:   tx.ChainId,
		AssetId:   transfer.AssetId,
		Sender:    tx.Sender,
		Recipient: tx.Recipient,
		Quantity:  transfer.Quantity,
	})
	return err
}

func undoTransfer(env *Environment, tx *transactionrecord.Transaction) error {
	transfer := tx.Attachment.(*transactionrecord.AssetTransfer)
	return env.Ledger.AddToUnconfirmedBalance(ledger.AssetTransfer, eventId(tx), tx.Sender, assetHolding(transfer.AssetId), transfer.Quantity)
}

func validateDelete(env *Environment, tx *transactionrecord.Transaction) error {
	d := tx.Attachment.(*transactionrecord.AssetDelete)
	a, err := validateQuantity(env, d.AssetId, d.Quantity)
	if nil != err {
		return err
	}
	if d.Quantity > a.Quantity {
		return fault.Detail(fault.ErrAssetQuantityExceeded, "asset: %d  supply: %d  quantity: %d", a.Id, a.Quantity, d.Quantity)
	}
	return nil
}

func reserveDelete(env *Environment, tx *transactionrecord.Transaction) (bool, error) {
	d := tx.Attachment.(*transactionrecord.AssetDelete)
	return reserveAsset(env, tx, ledger.AssetDelete, d.AssetId, d.Quantity)
}

func applyDelete(env *Environment, tx *transactionrecord.Transaction) error {
	d := tx.Attachment.(*transactionrecord.AssetDelete)
	err := env.Ledger.AddToBalance(ledger.AssetDelete, eventId(tx), tx.Sender, assetHolding(d.AssetId), -d.Quantity)
	if nil != err {
		return err
	}
	return env.Assets.DeleteQuantity(history(tx, d.AssetId, d.Quantity))
}

func undoDelete(env *Environment, tx *transactionrecord.Transaction) error {
	d := tx.Attachment.(*transactionrecord.AssetDelete)
	return env.Ledger.AddToUnconfirmedBalance(ledger.AssetDelete, eventId(tx), tx.Sender, assetHolding(d.AssetId), d.Quantity)
}

func validateIncrease(env *Environment, tx *transactionrecord.Transaction) error {
	increase := tx.Attachment.(*transactionrecord.AssetIncrease)
	a, err := validateQuantity(env, increase.AssetId, increase.Quantity)
	if nil != err {
		return err
	}
	if constants.MaxAssetQuantity-increase.Quantity < a.Quantity {
		return fault.Detail(fault.ErrAssetQuantityExceeded, "asset: %d  supply: %d  increase: %d", a.Id, a.Quantity, increase.Quantity)
	}
	if 1 == a.Quantity {
		return fault.Detail(fault.ErrIncreaseNotAllowed, "asset: %d  single unit", a.Id)
	}
	if 0 == a.Quantity {
		return fault.Detail(fault.ErrAssetDeleted, "asset: %d", a.Id)
	}
	if tx.Sender != a.Issuer {
		return fault.Detail(fault.ErrNotAssetOwner, "asset: %d  issuer: %s", a.Id, a.Issuer)
	}
	return nil
}

func applyIncrease(env *Environment, tx *transactionrecord.Transaction) error {
	increase := tx.Attachment.(*transactionrecord.AssetIncrease)
	err := env.Ledger.AddToBalanceAndUnconfirmedBalance(ledger.AssetIncrease, eventId(tx), tx.Sender, assetHolding(increase.AssetId), increase.Quantity)
	if nil != err {
		return err
	}
	return env.Assets.IncreaseQuantity(history(tx, increase.AssetId, increase.Quantity))
}

// supply change record; the registry fixes height, time and sign
func history(tx *transactionrecord.Transaction, assetId uint64, quantity int64) asset.History {
	return asset.History{
		Id:       tx.Id,
		FullHash: tx.FullHash,
		ChainId:  tx.ChainId,
		AssetId:  assetId,
		Account:  tx.Sender,
		Quantity: quantity,
	}
}
