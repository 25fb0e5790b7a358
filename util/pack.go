// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/exchanged/fault"
)

// Packer - builds a stored record as a sequence of Varint64 fields
//
// signed values are zig-zag encoded so small negative numbers stay short
type Packer []byte

// Uint64 - append an unsigned field
func (p Packer) Uint64(value uint64) Packer {
	return AppendVarint64(p, value)
}

// Int64 - append a signed field
func (p Packer) Int64(value int64) Packer {
	return AppendVarint64(p, uint64(value<<1)^uint64(value>>63))
}

// Bool - append a flag as 0/1
func (p Packer) Bool(value bool) Packer {
	if value {
		return append(p, 1)
	}
	return append(p, 0)
}

// Bytes - append a length prefixed byte field
func (p Packer) Bytes(data []byte) Packer {
	p = AppendVarint64(p, uint64(len(data)))
	return append(p, data...)
}

// String - append a length prefixed string field
func (p Packer) String(s string) Packer {
	p = AppendVarint64(p, uint64(len(s)))
	return append(p, s...)
}

// Unpacker - reads fields in the order a Packer wrote them
//
// the first failure is sticky: later reads return zero values and
// Err reports the failure
type Unpacker struct {
	buffer []byte
	err    error
}

// NewUnpacker - start reading a record
func NewUnpacker(record []byte) *Unpacker {
	return &Unpacker{
		buffer: record,
	}
}

// Uint64 - read an unsigned field
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, n := FromVarint64(u.buffer)
	if 0 == n {
		u.err = fault.ErrRecordTruncated
		return 0
	}
	u.buffer = u.buffer[n:]
	return value
}

// Int64 - read a signed field
func (u *Unpacker) Int64() int64 {
	value := u.Uint64()
	return int64(value>>1) ^ -int64(value&1)
}

// Bool - read a flag
func (u *Unpacker) Bool() bool {
	return 0 != u.Uint64()
}

// Bytes - read a length prefixed byte field
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if uint64(len(u.buffer)) < length {
		u.err = fault.ErrRecordTruncated
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[:length])
	u.buffer = u.buffer[length:]
	return data
}

// String - read a length prefixed string field
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Err - first failure, or nil
func (u *Unpacker) Err() error {
	return u.err
}

// Remaining - count of unread bytes
func (u *Unpacker) Remaining() int {
	return len(u.buffer)
}
