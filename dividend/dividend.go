// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dividend - pro-rata payments to the holders of an asset
package dividend

import (
	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/util"
)

// Event - a completed dividend payment
//
// Height is the snapshot height of the holder balances and
// DividendHeight the height the payment was applied at
type Event struct {
	Id               uint64          `json:"assetDividend,string"`
	FullHash         merkle.Digest   `json:"assetDividendFullHash"`
	ChainId          uint64          `json:"chain"`
	AssetId          uint64          `json:"asset,string"`
	Sender           account.Id      `json:"account"`
	Height           uint64          `json:"height"`
	Holding          holding.Holding `json:"holding"`
	AmountPerUnit    int64           `json:"amountNQTPerShare,string"`
	TotalDividend    int64           `json:"totalDividend,string"`
	NumberOfAccounts uint64          `json:"numberOfAccounts"`
	Timestamp        uint64          `json:"timestamp"`
	DividendHeight   uint64          `json:"dividendHeight"`
}

func (e *Event) pack() []byte {
	return util.Packer{}.
		Uint64(e.Id).
		Bytes(e.FullHash[:]).
		Uint64(e.ChainId).
		Uint64(e.AssetId).
		Uint64(uint64(e.Sender)).
		Uint64(e.Height).
		Uint64(uint64(e.Holding.Type)).
		Uint64(e.Holding.Id).
		Int64(e.AmountPerUnit).
		Int64(e.TotalDividend).
		Uint64(e.NumberOfAccounts).
		Uint64(e.Timestamp).
		Uint64(e.DividendHeight)
}

func unpack(record []byte) (*Event, error) {
	u := util.NewUnpacker(record)
	e := &Event{
		Id: u.Uint64(),
	}
	hash := u.Bytes()
	e.ChainId = u.Uint64()
	e.AssetId = u.Uint64()
	e.Sender = account.Id(u.Uint64())
	e.Height = u.Uint64()
	e.Holding = holding.Holding{
		Type: holding.Type(u.Uint64()),
		Id:   u.Uint64(),
	}
	e.AmountPerUnit = u.Int64()
	e.TotalDividend = u.Int64()
	e.NumberOfAccounts = u.Uint64()
	e.Timestamp = u.Uint64()
	e.DividendHeight = u.Uint64()
	if nil != u.Err() {
		return nil, u.Err()
	}
	if 0 != u.Remaining() {
		return nil, fault.ErrUnexpectedRecordLength
	}
	err := merkle.DigestFromBytes(&e.FullHash, hash)
	return e, err
}
