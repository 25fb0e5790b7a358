// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/bitmark-inc/exchanged/fault"
)

// WireWriter - builds little endian fixed width attachment data
type WireWriter []byte

// Byte - append one byte
func (w WireWriter) Byte(b byte) WireWriter {
	return append(w, b)
}

// Uint16 - append two bytes
func (w WireWriter) Uint16(n uint16) WireWriter {
	buffer := [2]byte{}
	binary.LittleEndian.PutUint16(buffer[:], n)
	return append(w, buffer[:]...)
}

// Uint32 - append four bytes
func (w WireWriter) Uint32(n uint32) WireWriter {
	buffer := [4]byte{}
	binary.LittleEndian.PutUint32(buffer[:], n)
	return append(w, buffer[:]...)
}

// Uint64 - append eight bytes
func (w WireWriter) Uint64(n uint64) WireWriter {
	buffer := [8]byte{}
	binary.LittleEndian.PutUint64(buffer[:], n)
	return append(w, buffer[:]...)
}

// Int64 - append a signed eight byte value
func (w WireWriter) Int64(n int64) WireWriter {
	return w.Uint64(uint64(n))
}

// Raw - append bytes without a length
func (w WireWriter) Raw(data []byte) WireWriter {
	return append(w, data...)
}

// WireReader - reads fields in the order a WireWriter wrote them
//
// the first failure is sticky as for Unpacker
type WireReader struct {
	buffer []byte
	err    error
}

// NewWireReader - start reading attachment data
func NewWireReader(data []byte) *WireReader {
	return &WireReader{
		buffer: data,
	}
}

func (r *WireReader) take(n int) []byte {
	if nil != r.err {
		return nil
	}
	if len(r.buffer) < n {
		r.err = fault.ErrRecordTruncated
		r.buffer = nil
		return nil
	}
	b := r.buffer[:n]
	r.buffer = r.buffer[n:]
	return b
}

// Byte - read one byte
func (r *WireReader) Byte() byte {
	b := r.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Uint16 - read two bytes
func (r *WireReader) Uint16() uint16 {
	b := r.take(2)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Uint32 - read four bytes
func (r *WireReader) Uint32() uint32 {
	b := r.take(4)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Uint64 - read eight bytes
func (r *WireReader) Uint64() uint64 {
	b := r.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Int64 - read a signed eight byte value
func (r *WireReader) Int64() int64 {
	return int64(r.Uint64())
}

// Raw - read n bytes, copied
func (r *WireReader) Raw(n int) []byte {
	b := r.take(n)
	if nil == b {
		return nil
	}
	data := make([]byte, n)
	copy(data, b)
	return data
}

// Err - first failure, or nil
func (r *WireReader) Err() error {
	return r.err
}

// Remaining - count of unread bytes
func (r *WireReader) Remaining() int {
	return len(r.buffer)
}
