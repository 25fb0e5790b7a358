// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
)

func TestDigestId(t *testing.T) {
	d := merkle.Digest{0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0xff}
	assert.Equal(t, uint64(0x8000000000000201), d.Id(), "wrong id")
	assert.False(t, d.IsEmpty(), "digest should not be empty")
	assert.True(t, merkle.Digest{}.IsEmpty(), "zero digest should be empty")
}

func TestDigestText(t *testing.T) {
	d := merkle.NewDigest([]byte("ask order"))

	s, err := json.Marshal(d)
	assert.Nil(t, err, "marshal")

	var back merkle.Digest
	err = json.Unmarshal(s, &back)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, d, back, "text round trip")
	assert.Equal(t, `"`+d.String()+`"`, string(s), "wrong JSON form")

	err = back.UnmarshalText([]byte("abcd"))
	assert.Equal(t, fault.ErrUnexpectedRecordLength, err, "short hex accepted")
}

func TestDigestFromBytes(t *testing.T) {
	var d merkle.Digest
	err := merkle.DigestFromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.ErrUnexpectedRecordLength, err, "short buffer accepted")

	buffer := make([]byte, merkle.DigestLength)
	buffer[0] = 7
	err = merkle.DigestFromBytes(&d, buffer)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), d.Id())
}
