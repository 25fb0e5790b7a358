// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package holding - the kinds of value an account can hold
//
// every balance in the ledger is keyed by a holding type and an id:
// the child chain id for coin, the asset id for an asset and the
// currency id for a currency
package holding

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/exchanged/fault"
)

// Type - kind of holding
type Type byte

// all holding types
const (
	Coin     Type = 0
	Asset    Type = 1
	Currency Type = 2
)

// Valid - true for a known holding type
func (t Type) Valid() bool {
	switch t {
	case Coin, Asset, Currency:
		return true
	default:
		return false
	}
}

// String - name for logging
func (t Type) String() string {
	switch t {
	case Coin:
		return "COIN"
	case Asset:
		return "ASSET"
	case Currency:
		return "CURRENCY"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
	}
}

// FromByte - convert a wire value to a holding type
func FromByte(b byte) (Type, error) {
	t := Type(b)
	if !t.Valid() {
		return 0, fault.ErrInvalidHoldingType
	}
	return t, nil
}

// Holding - a type and id pair
type Holding struct {
	Type Type
	Id   uint64
}

// Bytes - fixed width key form: type byte ++ big endian id
func (h Holding) Bytes() []byte {
	b := make([]byte, 9)
	b[0] = byte(h.Type)
	id := h.Id
	for i := 8; i > 0; i -= 1 {
		b[i] = byte(id)
		id >>= 8
	}
	return b
}

// String - type:id for logging
func (h Holding) String() string {
	return h.Type.String() + ":" + strconv.FormatUint(h.Id, 10)
}

// Parse - read "coin", "asset:ID" or "currency:ID"
//
// the text is case insensitive; a coin holding takes the id of the
// given child chain
func Parse(s string, chainId uint64) (Holding, error) {
	parts := strings.SplitN(strings.ToLower(s), ":", 2)
	if 1 == len(parts) && "coin" == parts[0] {
		return Holding{Type: Coin, Id: chainId}, nil
	}
	if 2 != len(parts) {
		return Holding{}, fault.Detail(fault.ErrInvalidHoldingType, "%q", s)
	}

	id, err := strconv.ParseUint(parts[1], 10, 64)
	if nil != err {
		return Holding{}, fault.Detail(fault.ErrInvalidHoldingType, "%q: %s", s, err)
	}

	switch parts[0] {
	case "asset":
		return Holding{Type: Asset, Id: id}, nil
	case "currency":
		return Holding{Type: Currency, Id: id}, nil
	default:
		return Holding{}, fault.Detail(fault.ErrInvalidHoldingType, "%q", s)
	}
}
