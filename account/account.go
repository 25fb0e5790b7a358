// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/exchanged/fault"
)

// miscellaneous constants
const (
	idLength       = 8
	checksumLength = 4
)

// Id - numeric account identifier
//
// text form is base58 of the little endian id followed by a
// four byte SHA3-256 checksum
type Id uint64

// FromPublicKey - derive the account id of an ed25519 public key
func FromPublicKey(publicKey ed25519.PublicKey) (Id, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return 0, fault.ErrInvalidPublicKey
	}
	digest := sha3.Sum256(publicKey)
	return Id(binary.LittleEndian.Uint64(digest[:idLength])), nil
}

// FromBase58 - parse the text form of an account id
func FromBase58(s string) (Id, error) {
	decoded, err := base58.Decode(s)
	if nil != err || idLength+checksumLength != len(decoded) {
		return 0, fault.ErrCannotDecodeAccount
	}
	checksum := sha3.Sum256(decoded[:idLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[idLength:]) {
		return 0, fault.ErrCannotDecodeAccount
	}
	return Id(binary.LittleEndian.Uint64(decoded[:idLength])), nil
}

// Bytes - big endian key form used by storage
func (id Id) Bytes() []byte {
	b := make([]byte, idLength)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// String - base58 text form
func (id Id) String() string {
	buffer := make([]byte, idLength, idLength+checksumLength)
	binary.LittleEndian.PutUint64(buffer, uint64(id))
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}

// GoString - numeric form for %#v
func (id Id) GoString() string {
	return "<account:" + strconv.FormatUint(uint64(id), 10) + ">"
}

// MarshalText - convert to base58 text
func (id Id) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert from base58 text
func (id *Id) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}
