// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistentKey = []byte("/nonexistent")

// sample key and data
var testKey = []byte("key-two")
var testData = "data-two"

// helper to add to pool
func poolPut(p *storage.PoolHandle, key string, data string) {
	p.Put([]byte(key), []byte(data))
}

func TestPool(t *testing.T) {
	os.RemoveAll(databaseFileName)
	defer os.RemoveAll(databaseFileName)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Nil(t, err, "initialise")

	p := storage.Pool.TestData

	// ensure that pool was empty
	checkAgain(t, true)

	poolPut(p, "key-one", "data-one")
	poolPut(p, "key-two", "data-two")
	poolPut(p, "key-remove-me", "to be deleted")
	p.Delete([]byte("key-remove-me"))
	poolPut(p, "key-three", "data-three")
	poolPut(p, "key-one", "data-one")     // duplicate
	poolPut(p, "key-three", "data-three") // duplicate
	poolPut(p, "key-four", "data-four")
	poolPut(p, "key-delete-this", "to be deleted")
	poolPut(p, "key-five", "data-five")
	poolPut(p, "key-six", "data-six")
	p.Delete([]byte("key-delete-this"))
	poolPut(p, "key-seven", "data-seven")
	poolPut(p, "key-one", "data-one(NEW)") // duplicate

	checkResults(t, p)
	checkAgain(t, false)

	// check that restarting database keeps data
	storage.Finalise()
	err = storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen")
	checkAgain(t, false)
	storage.Finalise()
}

func TestDoubleInitialise(t *testing.T) {
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "initialise")
	defer storage.Finalise()

	err = storage.InitialiseMemory()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements, data, "pool contents")

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor = p.NewFetchCursor()
	firstPair, err := cursor.Fetch(2)
	assert.Nil(t, err, "first fetch")
	secondPair, err := cursor.Fetch(2)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, expectedElements[0:2], firstPair, "first pair")
	assert.Equal(t, expectedElements[2:4], secondPair, "second pair")

	assert.True(t, p.Has(testKey), "has: %q", testKey)
	assert.Equal(t, testData, string(p.Get(testKey)), "get: %q", testKey)

	assert.False(t, p.Has(nonExistentKey), "unexpectedly found: %q", nonExistentKey)
	assert.Nil(t, p.Get(nonExistentKey), "unexpected data")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func checkAgain(t *testing.T, empty bool) {

	p := storage.Pool.TestData

	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(100) // all data
	assert.Nil(t, err, "fetch")
	if empty {
		assert.Equal(t, 0, len(data), "pool was not empty")
	}

	for i, e := range expectedElements {
		data := p.Get(e.Key)
		if empty {
			assert.Nil(t, data, "%d: unexpected data for: %s", i, e.Key)
		} else {
			assert.True(t, bytes.Equal(data, e.Value), "%d: mismatch for: %s", i, e.Key)
		}
	}

	// cursor is exhausted
	data, err = cursor.Fetch(100)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 0, len(data), "extra elements found")
}

func TestCursorPrefixAndMap(t *testing.T) {
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "initialise")
	defer storage.Finalise()

	p := storage.Pool.TestData
	p.PutN(storage.Key(uint64(1), uint64(10)), 110)
	p.PutN(storage.Key(uint64(1), uint64(20)), 120)
	p.PutN(storage.Key(uint64(2), uint64(10)), 210)

	values := []uint64{}
	err = p.NewFetchCursor().Prefix(storage.Key(uint64(1))).Map(func(key []byte, value []byte) error {
		assert.Equal(t, uint64(1), storage.KeyUint64(key, 0), "key outside prefix")
		n, _ := p.GetN(key)
		values = append(values, n)
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []uint64{110, 120}, values, "prefix scan")

	// an error stops the scan
	count := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return fault.ErrInvalidCount
	})
	assert.Equal(t, fault.ErrInvalidCount, err, "map error")
	assert.Equal(t, 1, count, "scan continued after error")
}

func TestAtOrBefore(t *testing.T) {
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "initialise")
	defer storage.Finalise()

	p := storage.Pool.TestData
	owner := storage.Key(uint64(7))
	p.Put(storage.Key(owner, uint64(10)), []byte("ten"))
	p.Put(storage.Key(owner, uint64(20)), []byte("twenty"))
	p.Put(storage.Key(uint64(8), uint64(5)), []byte("other"))

	items := []struct {
		height   uint64
		value    string
		at       uint64
		expected bool
	}{
		{5, "", 0, false},
		{10, "ten", 10, true},
		{15, "ten", 10, true},
		{20, "twenty", 20, true},
		{1000, "twenty", 20, true},
	}
	for i, item := range items {
		value, at, ok := p.AtOrBefore(owner, item.height)
		assert.Equal(t, item.expected, ok, "%d: found", i)
		if item.expected {
			assert.Equal(t, item.value, string(value), "%d: value", i)
			assert.Equal(t, item.at, at, "%d: height", i)
		}
	}

	// key 9 sorts after everything
	_, _, ok := p.AtOrBefore(storage.Key(uint64(9)), 1000)
	assert.False(t, ok, "found record of another key")
}

func TestLastElement(t *testing.T) {
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "initialise")
	defer storage.Finalise()

	p := storage.Pool.TestData
	_, found := p.LastElement()
	assert.False(t, found, "empty pool")

	poolPut(p, "aaa", "1")
	poolPut(p, "zzz", "2")
	poolPut(p, "mmm", "3")
	e, found := p.LastElement()
	assert.True(t, found, "last element")
	assert.Equal(t, "zzz", string(e.Key), "last key")

	// other pools are not visible
	_, found = storage.Pool.State.LastElement()
	assert.False(t, found, "state pool")
}

func TestDescendingKeys(t *testing.T) {
	err := storage.InitialiseMemory()
	assert.Nil(t, err, "initialise")
	defer storage.Finalise()

	p := storage.Pool.TestData
	for _, h := range []uint64{3, 1, 2} {
		p.PutN(storage.Key(storage.Descending(h)), h)
	}
	elements, err := p.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "fetch")
	heights := []uint64{}
	for _, e := range elements {
		heights = append(heights, storage.Descending(storage.KeyUint64(e.Key, 0)))
	}
	assert.Equal(t, []uint64{3, 2, 1}, heights, "newest first")
}
