// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// Handle - the access methods of a single pool
type Handle interface {
	Put([]byte, []byte)
	PutN([]byte, uint64)
	Delete([]byte)
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	AtOrBefore([]byte, uint64) ([]byte, uint64, bool)
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor
}

// PoolHandle - the structure for a single pool
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		logger.Panic("pool.Put nil database")
		return
	}
	err := p.access().Put(p.prefixKey(key), value, nil)
	logger.PanicIfError("pool.Put", err)
}

// PutN - store a uint64 as an 8 byte big endian value
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		logger.Panic("pool.Delete nil database")
		return
	}
	err := p.access().Delete(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// returns nil if the key is not present
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return nil
	}
	value, err := p.access().Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return false
	}
	value, err := p.access().Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// AtOrBefore - find the record stored under key ++ h with the
// greatest big endian h that does not exceed height
//
// returns the value, the height it was stored at and true, or false
// if no such record exists
func (p *PoolHandle) AtOrBefore(key []byte, height uint64) ([]byte, uint64, bool) {
	prefix := p.prefixKey(key)
	seek := make([]byte, len(prefix)+8)
	copy(seek, prefix)
	binary.BigEndian.PutUint64(seek[len(prefix):], height)

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return nil, 0, false
	}

	iter := p.access().NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	found := false
	if iter.Seek(seek) {
		// exact match, otherwise the preceding record is the candidate
		if bytes.Equal(iter.Key(), seek) {
			found = true
		} else {
			found = iter.Prev()
		}
	} else {
		// every record precedes the seek key
		found = iter.Last()
	}
	logger.PanicIfError("pool.AtOrBefore", iter.Error())

	if !found {
		return nil, 0, false
	}

	k := iter.Key()
	if len(prefix)+8 != len(k) {
		logger.Panicf("pool.AtOrBefore unexpected key length for: %x", k)
	}
	value := make([]byte, len(iter.Value()))
	copy(value, iter.Value())
	return value, binary.BigEndian.Uint64(k[len(prefix):]), true
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p.database {
		return Element{}, false
	}

	iter := p.access().NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
