// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/util"
)

// Currency - a monetary system currency that can be a dividend holding
type Currency struct {
	Id       uint64     `json:"id,string"`
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	Decimals uint8      `json:"decimals"`
	Issuer   account.Id `json:"issuer"`
	Active   bool       `json:"active"`
}

// GoString - for debugging
func (c *Currency) GoString() string {
	return fmt.Sprintf("<Currency#%d:%q>", c.Id, c.Code)
}

// pack a currency into a storage record
func (c *Currency) pack() []byte {
	return util.Packer{}.
		Uint64(c.Id).
		String(c.Code).
		String(c.Name).
		Uint64(uint64(c.Decimals)).
		Uint64(uint64(c.Issuer)).
		Bool(c.Active)
}

// unpack a storage record
func unpack(record []byte) (*Currency, error) {
	u := util.NewUnpacker(record)
	c := &Currency{
		Id:       u.Uint64(),
		Code:     u.String(),
		Name:     u.String(),
		Decimals: uint8(u.Uint64()),
		Issuer:   account.Id(u.Uint64()),
		Active:   u.Bool(),
	}
	if nil != u.Err() {
		return nil, u.Err()
	}
	if 0 != u.Remaining() {
		return nil, fault.ErrUnexpectedRecordLength
	}
	return c, nil
}
