// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
)

func TestFromByte(t *testing.T) {
	for b := 0; b < 3; b += 1 {
		h, err := holding.FromByte(byte(b))
		assert.Nil(t, err, "type: %d", b)
		assert.Equal(t, holding.Type(b), h, "type: %d", b)
	}

	_, err := holding.FromByte(3)
	assert.Equal(t, fault.ErrInvalidHoldingType, err, "unknown type accepted")
}

func TestHoldingBytes(t *testing.T) {
	h := holding.Holding{Type: holding.Asset, Id: 0x0102030405060708}
	assert.Equal(t, []byte{1, 1, 2, 3, 4, 5, 6, 7, 8}, h.Bytes(), "key form")
	assert.Equal(t, "ASSET:72623859790382856", h.String(), "string form")
	assert.Equal(t, "UNKNOWN(9)", holding.Type(9).String(), "unknown name")
}

func TestParse(t *testing.T) {
	items := []struct {
		text    string
		holding holding.Holding
	}{
		{"coin", holding.Holding{Type: holding.Coin, Id: 2}},
		{"COIN", holding.Holding{Type: holding.Coin, Id: 2}},
		{"Asset:77", holding.Holding{Type: holding.Asset, Id: 77}},
		{"currency:5", holding.Holding{Type: holding.Currency, Id: 5}},
	}
	for _, item := range items {
		h, err := holding.Parse(item.text, 2)
		assert.Nil(t, err, "holding: %q", item.text)
		assert.Equal(t, item.holding, h, "holding: %q", item.text)
	}

	for _, s := range []string{"", "asset", "asset:x", "coin:2", "share:1"} {
		_, err := holding.Parse(s, 2)
		assert.True(t, fault.IsErrInvalid(err), "holding: %q  error: %v", s, err)
	}
}
