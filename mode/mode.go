// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exchanged/chain"
	"github.com/bitmark-inc/exchanged/fault"
)

// Mode - state of the node
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Loading      // restoring the pending pool, submissions refused
	Normal
	maximum
)

var globalData struct {
	sync.RWMutex
	log        *logger.L
	mode       Mode
	testing    bool
	network    string
	childChain *chain.ChildChain

	initialised bool
}

// Initialise - fix the network and child chain for this process
//
// starts in Loading mode
func Initialise(network string, childChain *chain.ChildChain) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("mode")

	switch network {
	case chain.Bitmark:
		globalData.testing = false
	case chain.Testing, chain.Local:
		globalData.testing = true
	default:
		globalData.log.Criticalf("unknown network: %q", network)
		return fault.ErrInvalidChain
	}
	if nil == childChain {
		globalData.log.Critical("no child chain")
		return fault.ErrInvalidChain
	}

	globalData.network = network
	globalData.childChain = childChain
	globalData.mode = Loading
	globalData.initialised = true

	globalData.log.Infof("network: %s  child chain: %s  testing: %t", network, childChain.Name, globalData.testing)
	return nil
}

// Finalise - stop and forget the network
func Finalise() error {
	if !isInitialised() {
		return fault.ErrNotInitialised
	}

	Set(Stopped)

	globalData.Lock()
	globalData.initialised = false
	globalData.childChain = nil
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

func isInitialised() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised
}

// Set - change mode, out of range values are logged and ignored
func Set(m Mode) {
	if m < Stopped || m >= maximum {
		globalData.log.Errorf("ignore invalid mode: %d", m)
		return
	}

	globalData.Lock()
	from := globalData.mode
	globalData.mode = m
	globalData.Unlock()

	if from != m {
		globalData.log.Infof("mode: %s -> %s", from, m)
	}
}

// Is - detect mode
func Is(m Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return m == globalData.mode
}

// AcceptingTransactions - true once the pending pool is restored
func AcceptingTransactions() bool {
	return Is(Normal)
}

// IsTesting - true for the testing and local networks
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// Network - name of the current network
func Network() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.network
}

// ChildChain - the child chain whose coin pays fees and prices
func ChildChain() *chain.ChildChain {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.childChain
}

// String - current mode as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Loading:
		return "Loading"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
