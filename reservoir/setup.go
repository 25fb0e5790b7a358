// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sort"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/exchanged/background"
	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// defaults for an unset configuration
const (
	defaultRateLimit      = 100.0 // submissions per second
	defaultRateBurst      = 200
	defaultMaximumPending = 10000
)

// Configuration - pool settings
type Configuration struct {
	RateLimit      float64 `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst      int     `gluamapper:"rate_burst" json:"rate_burst"`
	MaximumPending int     `gluamapper:"maximum_pending" json:"maximum_pending"`
}

// one reserved transaction
type pendingItem struct {
	tx         *transactionrecord.Transaction
	descriptor *exchange.Descriptor
	sequence   uint64
	received   time.Time
}

// globals
type globalDataType struct {
	sync.RWMutex

	log *logger.L

	initialised bool
	enabled     bool

	env            *exchange.Environment
	limiter        *rate.Limiter
	maximumPending int

	// indexed by transaction id
	pending    map[uint64]*pendingItem
	sequence   uint64
	duplicates exchange.Duplicates

	expiry     expiryData
	background *background.T
}

// expiry background
type expiryData struct {
	log *logger.L
}

// global storage
var globalData globalDataType

// Initialise - create the pool and start the expiry process
func Initialise(env *exchange.Environment, configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}
	if nil == env || nil == configuration {
		return fault.ErrMissingConfiguration
	}

	globalData.log = logger.New("reservoir")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	limit := configuration.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := configuration.RateBurst
	if burst <= 0 {
		burst = defaultRateBurst
	}
	maximumPending := configuration.MaximumPending
	if maximumPending <= 0 {
		maximumPending = defaultMaximumPending
	}
	globalData.log.Infof("rate limit: %g/s  burst: %d  maximum pending: %d", limit, burst, maximumPending)

	globalData.env = env
	globalData.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	globalData.maximumPending = maximumPending
	globalData.pending = make(map[uint64]*pendingItem)
	globalData.sequence = lastSequence()
	globalData.duplicates = exchange.NewDuplicates()

	globalData.expiry.log = logger.New("reservoir-expiry")
	if nil == globalData.expiry.log {
		return fault.ErrInvalidLoggerChannel
	}

	globalData.initialised = true
	globalData.enabled = true
	pendingGauge.Set(0)

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.expiry,
	}
	globalData.background = background.Start(processes, &globalData)

	return nil
}

// Finalise - stop the expiry process, release every reservation and
// keep the pending transactions for the next start
func Finalise() error {

	globalData.RLock()
	initialised := globalData.initialised
	globalData.RUnlock()
	if !initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background before taking the lock, expiry needs it
	globalData.background.Stop()

	globalData.Lock()
	defer globalData.Unlock()

	globalData.enabled = false

	items := globalData.releaseAll()
	err := save(items)
	if nil != err {
		globalData.log.Errorf("save pending error: %s", err)
	}

	globalData.pending = nil
	globalData.duplicates = nil
	globalData.initialised = false
	pendingGauge.Set(0)

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}

// Enable - accept submissions
func Enable() {
	globalData.Lock()
	globalData.enabled = true
	globalData.Unlock()
}

// Disable - refuse submissions, blocks are still applied
func Disable() {
	globalData.Lock()
	globalData.enabled = false
	globalData.Unlock()
}

// IsEnabled - true if submissions are accepted
func IsEnabled() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.enabled
}

// pending items in arrival order
//
// must hold lock
func (g *globalDataType) ordered() []*pendingItem {
	items := make([]*pendingItem, 0, len(g.pending))
	for _, item := range g.pending {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].sequence < items[j].sequence
	})
	return items
}

// release every reservation, newest first, and empty the pool
//
// must hold lock
func (g *globalDataType) releaseAll() []*pendingItem {
	items := g.ordered()
	for i := len(items) - 1; i >= 0; i -= 1 {
		g.release(items[i])
	}
	g.pending = make(map[uint64]*pendingItem)
	g.duplicates = exchange.NewDuplicates()
	return items
}

// undo a single reservation
//
// must hold lock
func (g *globalDataType) release(item *pendingItem) {
	err := item.descriptor.UndoUnconfirmed(g.env, item.tx)
	if nil != err {
		g.log.Criticalf("%s: tx: %d  undo error: %s", item.descriptor.Name(), item.tx.Id, err)
		logger.Panicf("reservoir: undo of tx: %d failed: %s", item.tx.Id, err)
	}
}

// recompute the pool conflicts after a removal
//
// must hold lock
func (g *globalDataType) rebuildDuplicates() {
	g.duplicates = exchange.NewDuplicates()
	for _, item := range g.ordered() {
		d := item.descriptor
		if d.IsDuplicate(item.tx, g.duplicates) || d.IsUnconfirmedDuplicate(item.tx, g.duplicates) {
			g.log.Warnf("%s: tx: %d  conflicts after rebuild", d.Name(), item.tx.Id)
		}
	}
}
