// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/logger"
)

// key in the state pool
var stateKey = []byte("blockheader")

// globals for header
type blockData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	height    uint64 // this is the current block height
	timestamp uint64 // and its timestamp

	// set once during initialise
	initialised bool
}

// global data
var globalData blockData

// Initialise - setup the current block data from storage
//
// storage must be initialised first
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("blockheader")
	globalData.log = log
	log.Info("starting…")

	globalData.height = 0
	globalData.timestamp = 0

	if nil != storage.Pool.State {
		if buffer := storage.Pool.State.Get(stateKey); nil != buffer {
			if 16 != len(buffer) {
				log.Criticalf("corrupt state record: %x", buffer)
				return fault.ErrUnexpectedRecordLength
			}
			globalData.height = binary.BigEndian.Uint64(buffer[:8])
			globalData.timestamp = binary.BigEndian.Uint64(buffer[8:])
		}
	}

	log.Infof("block height: %d", globalData.height)
	log.Infof("block timestamp: %d", globalData.timestamp)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shutdown the block header system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Set - set current header data and persist it
func Set(height uint64, timestamp uint64) {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.height = height
	globalData.timestamp = timestamp

	if nil != storage.Pool.State {
		buffer := make([]byte, 16)
		binary.BigEndian.PutUint64(buffer[:8], height)
		binary.BigEndian.PutUint64(buffer[8:], timestamp)
		storage.Pool.State.Put(stateKey, buffer)
	}
}

// Restore - put back the in-memory header after the storage
// transaction that Set it was discarded
func Restore(height uint64, timestamp uint64) {
	globalData.Lock()
	globalData.height = height
	globalData.timestamp = timestamp
	globalData.Unlock()
}

// Get - return all header data
func Get() (uint64, uint64) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height, globalData.timestamp
}

// Height - return current height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.height
}

// Timestamp - return the timestamp of the current block
func Timestamp() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.timestamp
}

// Chain - view of the block header as a blockchain collaborator
type Chain struct{}

// Height - current height
func (Chain) Height() uint64 {
	return Height()
}

// LastBlockTimestamp - timestamp of the current block
func (Chain) LastBlockTimestamp() uint64 {
	return Timestamp()
}
