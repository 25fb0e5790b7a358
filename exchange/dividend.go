// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exchanged/asset"
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/dividend"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/transactionrecord"
	"github.com/bitmark-inc/exchanged/util"
)

// DividendPayment - pay every holder of an asset as of a height
var DividendPayment = register(&Descriptor{
	subtype:          transactionrecord.DividendPaymentSubtype,
	event:            ledger.AssetDividendPayment,
	canHaveRecipient: false,
	phasingSafe:      false,
	global:           false,

	fee:                constantFee(DividendFee),
	validateAttachment: validateDividend,
	applyUnconfirmed:   reserveDividend,
	apply:              applyDividend,
	undoUnconfirmed:    undoDividend,
	duplicate: func(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
		d := tx.Attachment.(*transactionrecord.DividendPayment)
		return duplicates.isDuplicate(transactionrecord.DividendPaymentSubtype, idKey(d.AssetId), true)
	},
	assetId: func(tx *transactionrecord.Transaction) uint64 {
		d := tx.Attachment.(*transactionrecord.DividendPayment)
		if holding.Asset == d.HoldingType {
			return d.HoldingId
		}
		return 0
	},
})

// the height a phased transaction will be validated at
func finishValidationHeight(env *Environment, tx *transactionrecord.Transaction) uint64 {
	if tx.IsPhased() {
		return tx.PhasingFinishHeight - 1
	}
	return env.Blockchain.Height()
}

func validateDividend(env *Environment, tx *transactionrecord.Transaction) error {
	d := tx.Attachment.(*transactionrecord.DividendPayment)
	height := uint64(d.Height)
	currentHeight := env.Blockchain.Height()

	if height > currentHeight {
		return fault.Detail(fault.ErrDividendHeightTooHigh, "height: %d  current: %d", height, currentHeight)
	}
	finish := finishValidationHeight(env, tx)
	if finish >= constants.MaxDividendPaymentRollback && height <= finish-constants.MaxDividendPaymentRollback {
		return fault.Detail(fault.ErrDividendHeightTooLow, "height: %d  finish: %d", height, finish)
	}

	a := env.Assets.GetAt(d.AssetId, height)
	if nil == a {
		return fault.Detail(fault.ErrAssetNotFound, "asset: %d  height: %d", d.AssetId, height)
	}
	if a.Issuer != tx.Sender {
		return fault.Detail(fault.ErrNotAssetOwner, "asset: %d  issuer: %s", a.Id, a.Issuer)
	}
	if d.AmountPerUnit <= 0 {
		return fault.Detail(fault.ErrInvalidAmount, "amount per unit: %d", d.AmountPerUnit)
	}

	interval := constants.MinDividendPaymentInterval(env.Testing)
	if last := env.Dividends.Last(d.AssetId); nil != last && last.DividendHeight+interval > currentHeight {
		return fault.Detail(fault.ErrDividendIntervalNotElapsed, "asset: %d  last: %d  current: %d", d.AssetId, last.DividendHeight, currentHeight)
	}

	switch d.HoldingType {
	case holding.Coin:
		if d.HoldingId != env.Chain.Id {
			return fault.Detail(fault.ErrHoldingIdMismatch, "holding: %d  chain: %d", d.HoldingId, env.Chain.Id)
		}
	case holding.Asset:
		if nil == env.Assets.Get(d.HoldingId) {
			return fault.Detail(fault.ErrAssetNotFound, "asset: %d", d.HoldingId)
		}
	case holding.Currency:
		c := env.Currencies.Get(d.HoldingId)
		if nil == c {
			return fault.Detail(fault.ErrCurrencyNotFound, "currency: %d", d.HoldingId)
		}
		if !c.Active {
			return fault.Detail(fault.ErrCurrencyNotActive, "currency: %s", c.Code)
		}
	default:
		logger.Panicf("exchange: unsupported holding type: %s", d.HoldingType)
	}
	return nil
}

// implied decimals of the holding paid out, false if it is unknown
func holdingDecimals(env *Environment, h holding.Holding) (uint8, bool) {
	switch h.Type {
	case holding.Coin:
		if h.Id != env.Chain.Id {
			return 0, false
		}
		return env.Chain.Decimals, true
	case holding.Asset:
		a := env.Assets.Get(h.Id)
		if nil == a {
			return 0, false
		}
		return a.Decimals, true
	case holding.Currency:
		c := env.Currencies.Get(h.Id)
		if nil == c {
			return 0, false
		}
		return c.Decimals, true
	default:
		logger.Panicf("exchange: unsupported holding type: %s", h.Type)
	}
	return 0, false
}

// the asset as of the snapshot and the total owed to all holders
// except the sender; a nil asset means nothing is owed
func dividendTotal(env *Environment, tx *transactionrecord.Transaction) (*asset.Asset, uint8, int64, error) {
	d := tx.Attachment.(*transactionrecord.DividendPayment)
	height := uint64(d.Height)

	a := env.Assets.GetAt(d.AssetId, height)
	if nil == a {
		return nil, 0, 0, nil
	}
	decimals, ok := holdingDecimals(env, d.Holding())
	if !ok {
		return nil, 0, 0, fault.Detail(fault.ErrInvalidHoldingType, "holding: %s", d.Holding())
	}

	eligible := a.Quantity - env.Ledger.BalanceAt(tx.Sender, assetHolding(d.AssetId), height)
	total, err := util.UnitRateToAmount(eligible, a.Decimals, d.AmountPerUnit, decimals)
	if nil != err {
		return nil, 0, 0, err
	}
	return a, decimals, total, nil
}

func reserveDividend(env *Environment, tx *transactionrecord.Transaction) (bool, error) {
	d := tx.Attachment.(*transactionrecord.DividendPayment)
	a, _, total, err := dividendTotal(env, tx)
	if nil != err {
		return false, err
	}
	if nil == a || 0 == total {
		return true, nil
	}

	_, unconfirmed := env.Ledger.Balance(tx.Sender, d.Holding())
	if unconfirmed < total {
		return false, nil
	}
	err = env.Ledger.AddToUnconfirmedBalance(ledger.AssetDividendPayment, eventId(tx), tx.Sender, d.Holding(), -total)
	if nil != err {
		return false, err
	}
	return true, nil
}

func undoDividend(env *Environment, tx *transactionrecord.Transaction) error {
	d := tx.Attachment.(*transactionrecord.DividendPayment)
	a, _, total, err := dividendTotal(env, tx)
	if nil != err || nil == a || total <= 0 {
		return err
	}
	return env.Ledger.AddToUnconfirmedBalance(ledger.AssetDividendPayment, eventId(tx), tx.Sender, d.Holding(), total)
}

func applyDividend(env *Environment, tx *transactionrecord.Transaction) error {
	d := tx.Attachment.(*transactionrecord.DividendPayment)
	a, decimals, total, err := dividendTotal(env, tx)
	if nil != err || nil == a {
		return err
	}

	event, err := env.Dividends.Pay(dividend.Payment{
		EventId:         eventId(tx),
		Sender:          tx.Sender,
		AssetId:         d.AssetId,
		AssetDecimals:   a.Decimals,
		Height:          uint64(d.Height),
		Holding:         d.Holding(),
		HoldingDecimals: decimals,
		AmountPerUnit:   d.AmountPerUnit,
		Total:           total,
	})
	if nil != err {
		return err
	}
	if nil != event {
		env.Log().Infof("dividend: asset: %d  total: %d  accounts: %d", event.AssetId, event.TotalDividend, event.NumberOfAccounts)
	}
	return nil
}
