// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 20 * time.Minute
)

// Registry - stored currencies with a read cache
type Registry struct {
	log        *logger.L
	pool       storage.Handle
	cache      *cache.Cache
	generation uint64
}

// New - create a registry over a storage pool
func New(pool storage.Handle) *Registry {
	return &Registry{
		log:        logger.New("currency"),
		pool:       pool,
		cache:      cache.New(cacheExpiration, cacheCleanup),
		generation: storage.Generation(),
	}
}

// drop cached records read from a discarded storage transaction
func (r *Registry) refresh() {
	g := storage.Generation()
	if atomic.LoadUint64(&r.generation) != g {
		r.cache.Flush()
		atomic.StoreUint64(&r.generation, g)
	}
}

func cacheKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// Get - fetch a currency, nil if it does not exist
func (r *Registry) Get(id uint64) *Currency {
	r.refresh()
	if c, found := r.cache.Get(cacheKey(id)); found {
		return c.(*Currency)
	}

	record := r.pool.Get(storage.Key(id))
	if nil == record {
		return nil
	}
	c, err := unpack(record)
	if nil != err {
		logger.Panicf("currency: %d  corrupt record: %s", id, err)
	}
	r.cache.SetDefault(cacheKey(id), c)
	return c
}

// Put - store a currency
func (r *Registry) Put(c *Currency) error {
	if 0 == c.Id {
		return fault.ErrCurrencyNotFound
	}
	if c.Decimals > 8 {
		return fault.ErrInvalidDecimals
	}
	record := *c
	r.pool.Put(storage.Key(c.Id), record.pack())
	r.cache.SetDefault(cacheKey(c.Id), &record)
	r.log.Infof("currency: %d  code: %s  active: %t", c.Id, c.Code, c.Active)
	return nil
}

// SetActive - change the active flag of an existing currency
func (r *Registry) SetActive(id uint64, active bool) error {
	c := r.Get(id)
	if nil == c {
		return fault.ErrCurrencyNotFound
	}
	record := *c
	record.Active = active
	return r.Put(&record)
}
