// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package order - the open ask and bid orders
//
// orders are only recorded: placement creates one, cancellation (or
// a trade outside this package) removes it; an order is never
// modified in place
package order

import (
	"fmt"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/util"
)

// Kind - ask or bid
type Kind byte

// order kinds
const (
	Ask Kind = iota
	Bid
)

// String - kind name
func (k Kind) String() string {
	switch k {
	case Ask:
		return "ask"
	case Bid:
		return "bid"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

// Order - an open order
//
// Amount is the coin value reserved by a bid and zero for an ask
type Order struct {
	Kind              Kind          `json:"type"`
	Id                uint64        `json:"order,string"`
	FullHash          merkle.Digest `json:"orderFullHash"`
	ChainId           uint64        `json:"chain"`
	Account           account.Id    `json:"account"`
	AssetId           uint64        `json:"asset,string"`
	Quantity          int64         `json:"quantityQNT,string"`
	Price             int64         `json:"priceNQTPerShare,string"`
	Amount            int64         `json:"amountNQT,string"`
	CreationHeight    uint64        `json:"height"`
	TransactionHeight uint64        `json:"transactionHeight"`
	TransactionIndex  uint32        `json:"transactionIndex"`
}

// MarshalText - kind name for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (o *Order) pack() []byte {
	return util.Packer{}.
		Uint64(uint64(o.Kind)).
		Uint64(o.Id).
		Bytes(o.FullHash[:]).
		Uint64(o.ChainId).
		Uint64(uint64(o.Account)).
		Uint64(o.AssetId).
		Int64(o.Quantity).
		Int64(o.Price).
		Int64(o.Amount).
		Uint64(o.CreationHeight).
		Uint64(o.TransactionHeight).
		Uint64(uint64(o.TransactionIndex))
}

func unpack(record []byte) (*Order, error) {
	u := util.NewUnpacker(record)
	o := &Order{
		Kind: Kind(u.Uint64()),
		Id:   u.Uint64(),
	}
	hash := u.Bytes()
	o.ChainId = u.Uint64()
	o.Account = account.Id(u.Uint64())
	o.AssetId = u.Uint64()
	o.Quantity = u.Int64()
	o.Price = u.Int64()
	o.Amount = u.Int64()
	o.CreationHeight = u.Uint64()
	o.TransactionHeight = u.Uint64()
	o.TransactionIndex = uint32(u.Uint64())
	if nil != u.Err() {
		return nil, u.Err()
	}
	if 0 != u.Remaining() {
		return nil, fault.ErrUnexpectedRecordLength
	}
	err := merkle.DigestFromBytes(&o.FullHash, hash)
	return o, err
}
