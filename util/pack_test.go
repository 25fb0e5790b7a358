// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/util"
)

func TestPackUnpack(t *testing.T) {
	record := util.Packer{}.
		Uint64(math.MaxUint64).
		Int64(-1).
		Int64(math.MinInt64).
		Bool(true).
		String("asset").
		Bytes([]byte{1, 2, 3})

	u := util.NewUnpacker(record)
	assert.Equal(t, uint64(math.MaxUint64), u.Uint64(), "wrong uint64")
	assert.Equal(t, int64(-1), u.Int64(), "wrong small negative")
	assert.Equal(t, int64(math.MinInt64), u.Int64(), "wrong min int64")
	assert.True(t, u.Bool(), "wrong bool")
	assert.Equal(t, "asset", u.String(), "wrong string")
	assert.Equal(t, []byte{1, 2, 3}, u.Bytes(), "wrong bytes")
	assert.Nil(t, u.Err(), "unexpected error")
	assert.Equal(t, 0, u.Remaining(), "bytes left over")
}

func TestSmallNegativeIsShort(t *testing.T) {
	record := util.Packer{}.Int64(-3)
	assert.Equal(t, 1, len(record), "zig-zag should keep -3 in one byte")
}

func TestUnpackTruncated(t *testing.T) {
	record := util.Packer{}.String("description")
	u := util.NewUnpacker(record[:4])
	assert.Equal(t, "", u.String(), "truncated string returned data")
	assert.Equal(t, fault.ErrRecordTruncated, u.Err(), "wrong error")
	assert.Equal(t, uint64(0), u.Uint64(), "read after failure returned data")
}
