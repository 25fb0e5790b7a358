// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/util"
)

// History - a supply change: negative quantity for a delete
type History struct {
	Id        uint64        `json:"assetHistory,string"`
	FullHash  merkle.Digest `json:"assetHistoryFullHash"`
	ChainId   uint64        `json:"chain"`
	AssetId   uint64        `json:"asset,string"`
	Account   account.Id    `json:"account"`
	Quantity  int64         `json:"quantityQNT,string"`
	Timestamp uint64        `json:"timestamp"`
	Height    uint64        `json:"height"`
}

func (h *History) pack() []byte {
	return util.Packer{}.
		Uint64(h.Id).
		Bytes(h.FullHash[:]).
		Uint64(h.ChainId).
		Uint64(h.AssetId).
		Uint64(uint64(h.Account)).
		Int64(h.Quantity).
		Uint64(h.Timestamp).
		Uint64(h.Height)
}

func unpackHistory(record []byte) (History, error) {
	u := util.NewUnpacker(record)
	h := History{
		Id: u.Uint64(),
	}
	hash := u.Bytes()
	h.ChainId = u.Uint64()
	h.AssetId = u.Uint64()
	h.Account = account.Id(u.Uint64())
	h.Quantity = u.Int64()
	h.Timestamp = u.Uint64()
	h.Height = u.Uint64()
	if nil != u.Err() {
		return History{}, u.Err()
	}
	if 0 != u.Remaining() {
		return History{}, fault.ErrUnexpectedRecordLength
	}
	err := merkle.DigestFromBytes(&h.FullHash, hash)
	return h, err
}
