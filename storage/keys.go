// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Key - build a key from fixed width parts
//
// uint64 values are big endian so keys sort numerically, a byte is
// stored as is and byte slices are appended unchanged
func Key(parts ...interface{}) []byte {
	key := make([]byte, 0, 8*len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case uint64:
			key = appendUint64(key, v)
		case int64:
			key = appendUint64(key, uint64(v))
		case byte:
			key = append(key, v)
		case []byte:
			key = append(key, v...)
		case interface{ Bytes() []byte }:
			key = append(key, v.Bytes()...)
		default:
			panic("storage.Key: unsupported key part")
		}
	}
	return key
}

// Descending - complement of a height so newer records sort first
func Descending(height uint64) uint64 {
	return ^height
}

// KeyUint64 - decode the big endian uint64 at offset in a key
func KeyUint64(key []byte, offset int) uint64 {
	return binary.BigEndian.Uint64(key[offset : offset+8])
}

func appendUint64(key []byte, n uint64) []byte {
	buffer := [8]byte{}
	binary.BigEndian.PutUint64(buffer[:], n)
	return append(key, buffer[:]...)
}
