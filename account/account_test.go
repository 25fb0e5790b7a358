// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
)

var issuerPublicKey = ed25519.PublicKey{
	0x9f, 0xc4, 0x86, 0xa2, 0x53, 0x4f, 0x17, 0xe3,
	0x67, 0x07, 0xfa, 0x4b, 0x95, 0x3e, 0xd7, 0x28,
	0x9c, 0x3f, 0x1f, 0x08, 0x1d, 0x09, 0x4b, 0x1c,
	0x6e, 0x73, 0x08, 0xb3, 0x55, 0x1f, 0x4c, 0x92,
}

func TestFromPublicKey(t *testing.T) {
	a, err := account.FromPublicKey(issuerPublicKey)
	assert.Nil(t, err, "derive")

	b, err := account.FromPublicKey(issuerPublicKey)
	assert.Nil(t, err, "derive again")
	assert.Equal(t, a, b, "derivation not deterministic")

	_, err = account.FromPublicKey(issuerPublicKey[:16])
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "short key accepted")
}

func TestBase58RoundTrip(t *testing.T) {
	ids := []account.Id{1, 0x1234, 0xffffffffffffffff}
	for i, id := range ids {
		s := id.String()
		back, err := account.FromBase58(s)
		assert.Nil(t, err, "%d: decode %q", i, s)
		assert.Equal(t, id, back, "%d: round trip", i)
	}
}

func TestBase58Checksum(t *testing.T) {
	s := account.Id(0x1234).String()
	assert.NotEqual(t, s, account.Id(0x1235).String())

	corrupt := []byte(s)
	if '2' == corrupt[0] {
		corrupt[0] = '3'
	} else {
		corrupt[0] = '2'
	}
	_, err := account.FromBase58(string(corrupt))
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "checksum not verified")

	_, err = account.FromBase58("0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "invalid alphabet accepted")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner account.Id `json:"owner"`
	}
	h := holder{Owner: 987654321}
	s, err := json.Marshal(h)
	assert.Nil(t, err)

	var back holder
	err = json.Unmarshal(s, &back)
	assert.Nil(t, err)
	assert.Equal(t, h, back)
}
