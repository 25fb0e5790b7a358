// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/order"
	"github.com/bitmark-inc/exchanged/transactionrecord"
	"github.com/bitmark-inc/exchanged/util"
)

// AskOrderPlacement - offer units for sale
var AskOrderPlacement = register(&Descriptor{
	subtype:          transactionrecord.AskOrderPlacementSubtype,
	event:            ledger.AssetAskOrderPlacement,
	canHaveRecipient: false,
	phasingSafe:      true,
	global:           false,

	validateAttachment: validatePlacement,
	validateId:         orderIdUnused(order.Ask),
	applyUnconfirmed:   reserveAsk,
	apply:              applyPlacement(order.Ask),
	undoUnconfirmed:    undoAsk,
	assetId:            placementAssetId,
})

// BidOrderPlacement - offer coin for units
var BidOrderPlacement = register(&Descriptor{
	subtype:          transactionrecord.BidOrderPlacementSubtype,
	event:            ledger.AssetBidOrderPlacement,
	canHaveRecipient: false,
	phasingSafe:      true,
	global:           false,

	validateAttachment: validatePlacement,
	validateId:         orderIdUnused(order.Bid),
	applyUnconfirmed:   reserveBid,
	apply:              applyPlacement(order.Bid),
	undoUnconfirmed:    undoBid,
	assetId:            placementAssetId,
})

// AskOrderCancellation - withdraw an open ask
var AskOrderCancellation = register(&Descriptor{
	subtype:          transactionrecord.AskOrderCancellationSubtype,
	event:            ledger.AssetAskOrderCancellation,
	canHaveRecipient: false,
	phasingSafe:      true,
	global:           false,

	validateAttachment:   validateCancellation(order.Ask),
	applyUnconfirmed:     reserveNothing,
	apply:                applyCancellation(order.Ask),
	unconfirmedDuplicate: cancellationDuplicate,
})

// BidOrderCancellation - withdraw an open bid
var BidOrderCancellation = register(&Descriptor{
	subtype:          transactionrecord.BidOrderCancellationSubtype,
	event:            ledger.AssetBidOrderCancellation,
	canHaveRecipient: false,
	phasingSafe:      true,
	global:           false,

	validateAttachment:   validateCancellation(order.Bid),
	applyUnconfirmed:     reserveNothing,
	apply:                applyCancellation(order.Bid),
	unconfirmedDuplicate: cancellationDuplicate,
})

// both kinds share the attachment fields
func placement(tx *transactionrecord.Transaction) *transactionrecord.OrderPlacement {
	switch a := tx.Attachment.(type) {
	case *transactionrecord.AskOrderPlacement:
		return &a.OrderPlacement
	case *transactionrecord.BidOrderPlacement:
		return &a.OrderPlacement
	default:
		return nil
	}
}

func cancellation(tx *transactionrecord.Transaction) *transactionrecord.OrderCancellation {
	switch a := tx.Attachment.(type) {
	case *transactionrecord.AskOrderCancellation:
		return &a.OrderCancellation
	case *transactionrecord.BidOrderCancellation:
		return &a.OrderCancellation
	default:
		return nil
	}
}

func placementAssetId(tx *transactionrecord.Transaction) uint64 {
	return placement(tx).AssetId
}

func validatePlacement(env *Environment, tx *transactionrecord.Transaction) error {
	p := placement(tx)
	if p.Price <= 0 || p.Price > constants.MaxBalance {
		return fault.Detail(fault.ErrInvalidPrice, "price: %d", p.Price)
	}
	a, err := validateQuantity(env, p.AssetId, p.Quantity)
	if nil != err {
		return err
	}
	if p.Quantity > a.Quantity {
		return fault.Detail(fault.ErrAssetQuantityExceeded, "asset: %d  supply: %d  quantity: %d", a.Id, a.Quantity, p.Quantity)
	}
	amount, err := util.UnitRateToAmount(p.Quantity, a.Decimals, p.Price, env.Chain.Decimals)
	if nil != err {
		return err
	}
	if 0 == amount {
		return fault.Detail(fault.ErrOrderHasNoValue, "quantity: %d  price: %d", p.Quantity, p.Price)
	}
	return nil
}

// the order id is the transaction id
func orderIdUnused(kind order.Kind) func(*Environment, *transactionrecord.Transaction) error {
	return func(env *Environment, tx *transactionrecord.Transaction) error {
		if nil != env.Orders.Get(kind, tx.Id) {
			return fault.Detail(fault.ErrOrderAlreadyExists, "%s order: %d", kind, tx.Id)
		}
		return nil
	}
}

// the coin value of a bid, false if the asset no longer exists
func bidAmount(env *Environment, p *transactionrecord.OrderPlacement) (int64, bool, error) {
	a := env.Assets.Get(p.AssetId)
	if nil == a {
		return 0, false, nil
	}
	amount, err := util.UnitRateToAmount(p.Quantity, a.Decimals, p.Price, env.Chain.Decimals)
	if nil != err {
		return 0, false, err
	}
	return amount, true, nil
}

func reserveAsk(env *Environment, tx *transactionrecord.Transaction) (bool, error) {
	p := placement(tx)
	h := assetHolding(p.AssetId)
	_, unconfirmed := env.Ledger.Balance(tx.Sender, h)
	if unconfirmed < 0 || unconfirmed < p.Quantity {
		return false, nil
	}
	err := env.Ledger.AddToUnconfirmedBalance(ledger.AssetAskOrderPlacement, eventId(tx), tx.Sender, h, -p.Quantity)
	if nil != err {
		return false, err
	}
	return true, nil
}

func undoAsk(env *Environment, tx *transactionrecord.Transaction) error {
	p := placement(tx)
	return env.Ledger.AddToUnconfirmedBalance(ledger.AssetAskOrderPlacement, eventId(tx), tx.Sender, assetHolding(p.AssetId), p.Quantity)
}

func reserveBid(env *Environment, tx *transactionrecord.Transaction) (bool, error) {
	amount, ok, err := bidAmount(env, placement(tx))
	if nil != err || !ok {
		return false, err
	}
	_, unconfirmed := env.Ledger.Balance(tx.Sender, env.coin())
	if unconfirmed < amount {
		return false, nil
	}
	err = env.Ledger.AddToUnconfirmedBalance(ledger.AssetBidOrderPlacement, eventId(tx), tx.Sender, env.coin(), -amount)
	if nil != err {
		return false, err
	}
	return true, nil
}

// recomputed from the current asset; nothing to release once it is gone
func undoBid(env *Environment, tx *transactionrecord.Transaction) error {
	amount, ok, err := bidAmount(env, placement(tx))
	if nil != err || !ok {
		return err
	}
	return env.Ledger.AddToUnconfirmedBalance(ledger.AssetBidOrderPlacement, eventId(tx), tx.Sender, env.coin(), amount)
}

func applyPlacement(kind order.Kind) func(*Environment, *transactionrecord.Transaction) error {
	return func(env *Environment, tx *transactionrecord.Transaction) error {
		p := placement(tx)
		o := &order.Order{
			Kind:              kind,
			Id:                tx.Id,
			FullHash:          tx.FullHash,
			ChainId:           tx.ChainId,
			Account:           tx.Sender,
			AssetId:           p.AssetId,
			Quantity:          p.Quantity,
			Price:             p.Price,
			CreationHeight:    env.Blockchain.Height(),
			TransactionHeight: tx.Height,
			TransactionIndex:  tx.Index,
		}
		if order.Bid == kind {
			amount, ok, err := bidAmount(env, p)
			if nil != err {
				return err
			}
			if !ok {
				return fault.Detail(fault.ErrAssetNotFound, "asset: %d", p.AssetId)
			}
			o.Amount = amount
		}
		return env.Orders.Add(o)
	}
}

func validateCancellation(kind order.Kind) func(*Environment, *transactionrecord.Transaction) error {
	return func(env *Environment, tx *transactionrecord.Transaction) error {
		orderId := cancellation(tx).OrderId()
		o := env.Orders.Get(kind, orderId)
		if nil == o {
			return fault.Detail(fault.ErrOrderNotFound, "%s order: %d", kind, orderId)
		}
		if o.Account != tx.Sender {
			return fault.Detail(fault.ErrInvalidOrderSender, "%s order: %d  account: %s", kind, orderId, o.Account)
		}
		return nil
	}
}

// remove the order and release whatever it still reserves
func applyCancellation(kind order.Kind) func(*Environment, *transactionrecord.Transaction) error {
	return func(env *Environment, tx *transactionrecord.Transaction) error {
		o := env.Orders.Remove(kind, cancellation(tx).OrderId())
		if nil == o {
			return nil
		}
		if order.Ask == kind {
			return env.Ledger.AddToUnconfirmedBalance(ledger.AssetAskOrderCancellation, eventId(tx), tx.Sender, assetHolding(o.AssetId), o.Quantity)
		}
		return env.Ledger.AddToUnconfirmedBalance(ledger.AssetBidOrderCancellation, eventId(tx), tx.Sender, env.coin(), o.Amount)
	}
}

// ask and bid cancellations share one namespace keyed by order id
func cancellationDuplicate(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
	return duplicates.isDuplicate(transactionrecord.AskOrderCancellationSubtype, idKey(cancellation(tx).OrderId()), true)
}
