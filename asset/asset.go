// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/util"
)

// Asset - one version of an issued asset
type Asset struct {
	Id                uint64     `json:"asset,string"`
	Issuer            account.Id `json:"account"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Decimals          uint8      `json:"decimals"`
	InitialQuantity   int64      `json:"initialQuantityQNT,string"`
	Quantity          int64      `json:"quantityQNT,string"`
	HasPhasingControl bool       `json:"hasPhasingAssetControl"`
	Height            uint64     `json:"height"`
}

// GoString - for debugging
func (a *Asset) GoString() string {
	return fmt.Sprintf("<Asset#%d:%q qty:%d>", a.Id, a.Name, a.Quantity)
}

func (a *Asset) pack() []byte {
	return util.Packer{}.
		Uint64(a.Id).
		Uint64(uint64(a.Issuer)).
		String(a.Name).
		String(a.Description).
		Uint64(uint64(a.Decimals)).
		Int64(a.InitialQuantity).
		Int64(a.Quantity).
		Bool(a.HasPhasingControl).
		Uint64(a.Height)
}

func unpackAsset(record []byte) (*Asset, error) {
	u := util.NewUnpacker(record)
	a := &Asset{
		Id:                u.Uint64(),
		Issuer:            account.Id(u.Uint64()),
		Name:              u.String(),
		Description:       u.String(),
		Decimals:          uint8(u.Uint64()),
		InitialQuantity:   u.Int64(),
		Quantity:          u.Int64(),
		HasPhasingControl: u.Bool(),
		Height:            u.Uint64(),
	}
	if nil != u.Err() {
		return nil, u.Err()
	}
	if 0 != u.Remaining() {
		return nil, fault.ErrUnexpectedRecordLength
	}
	return a, nil
}
