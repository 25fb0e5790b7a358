// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// AssetIssuance - create an asset owned entirely by the sender
var AssetIssuance = register(&Descriptor{
	subtype:          transactionrecord.AssetIssuanceSubtype,
	event:            ledger.AssetIssuance,
	canHaveRecipient: false,
	phasingSafe:      true,
	global:           true,

	fee:                issuanceFee,
	validateAttachment: validateIssuance,
	validateId:         validateIssuanceId,
	applyUnconfirmed:   reserveNothing,
	apply:              applyIssuance,
	blockDuplicate:     issuanceBlockDuplicate,
})

func validateIssuance(env *Environment, tx *transactionrecord.Transaction) error {
	issuance := tx.Attachment.(*transactionrecord.AssetIssuance)

	nameLength := utf8.RuneCountInString(issuance.Name)
	if nameLength < constants.MinAssetNameLength || nameLength > constants.MaxAssetNameLength {
		return fault.Detail(fault.ErrInvalidAssetName, "name: %q", issuance.Name)
	}
	if utf8.RuneCountInString(issuance.Description) > constants.MaxAssetDescriptionLength {
		return fault.ErrInvalidDescription
	}
	if issuance.Decimals > constants.MaxAssetDecimals {
		return fault.Detail(fault.ErrInvalidDecimals, "decimals: %d", issuance.Decimals)
	}
	if issuance.Quantity <= 0 || issuance.Quantity > constants.MaxAssetQuantity {
		return fault.Detail(fault.ErrInvalidQuantity, "quantity: %d", issuance.Quantity)
	}

	normalised := strings.ToLower(issuance.Name)
	for _, c := range normalised {
		if !strings.ContainsRune(constants.Alphabet, c) {
			return fault.Detail(fault.ErrInvalidAssetName, "name: %q", normalised)
		}
	}
	return nil
}

// the asset id is the transaction id
func validateIssuanceId(env *Environment, tx *transactionrecord.Transaction) error {
	if nil != env.Assets.Get(tx.Id) {
		return fault.Detail(fault.ErrAssetAlreadyExists, "asset: %d", tx.Id)
	}
	return nil
}

func applyIssuance(env *Environment, tx *transactionrecord.Transaction) error {
	issuance := tx.Attachment.(*transactionrecord.AssetIssuance)

	err := env.Assets.Add(&asset.Asset{
		Id:          tx.Id,
		Issuer:      tx.Sender,
		Name:        issuance.Name,
		Description: issuance.Description,
		Decimals:    issuance.Decimals,
		Quantity:    issuance.Quantity,
	})
	if nil != err {
		return err
	}

	h := holding.Holding{Type: holding.Asset, Id: tx.Id}
	return env.Ledger.AddToBalanceAndUnconfirmedBalance(ledger.AssetIssuance, eventId(tx), tx.Sender, h, issuance.Quantity)
}

// only one ordinary issuance per block; singletons are exempt
func issuanceBlockDuplicate(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
	issuance := tx.Attachment.(*transactionrecord.AssetIssuance)
	if isSingleton(issuance) {
		return false
	}
	return duplicates.isDuplicate(transactionrecord.AssetIssuanceSubtype, transactionrecord.AssetIssuanceSubtype.String(), true)
}

// for subtypes that reserve nothing on receipt
func reserveNothing(*Environment, *transactionrecord.Transaction) (bool, error) {
	return true, nil
}
