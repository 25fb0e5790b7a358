// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/logger"
)

const (
	cacheExpiration = 10 * time.Minute
	cacheCleanup    = 20 * time.Minute
)

// Blockchain - source of the height a change takes effect at
type Blockchain interface {
	Height() uint64
	LastBlockTimestamp() uint64
}

// Registry - storage backed asset registry
type Registry struct {
	sync.Mutex
	log        *logger.L
	blockchain Blockchain
	assets     storage.Handle
	versions   storage.Handle
	history    storage.Handle
	cache      *cache.Cache
	generation uint64
}

// New - create a registry over the asset pools
func New(blockchain Blockchain, assets storage.Handle, versions storage.Handle, history storage.Handle) *Registry {
	return &Registry{
		log:        logger.New("asset"),
		blockchain: blockchain,
		assets:     assets,
		versions:   versions,
		history:    history,
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

// Get - current version of an asset, nil if never issued
//
// the result is shared and must not be modified
func (r *Registry) Get(id uint64) *Asset {
	r.refresh()
	if a, found := r.cache.Get(cacheKey(id)); found {
		return a.(*Asset)
	}

	record := r.assets.Get(storage.Key(id))
	if nil == record {
		return nil
	}
	a, err := unpackAsset(record)
	if nil != err {
		logger.Panicf("asset: %d  corrupt record: %s", id, err)
	}
	r.cache.SetDefault(cacheKey(id), a)
	return a
}

// GetAt - the version of an asset in force at a height, nil if it
// had not been issued by then
func (r *Registry) GetAt(id uint64, height uint64) *Asset {
	record, _, found := r.versions.AtOrBefore(storage.Key(id), height)
	if !found {
		return nil
	}
	a, err := unpackAsset(record)
	if nil != err {
		logger.Panicf("asset: %d  height: %d  corrupt version: %s", id, height, err)
	}
	return a
}

// must hold lock
func (r *Registry) store(a *Asset) {
	a.Height = r.blockchain.Height()
	record := a.pack()
	r.assets.Put(storage.Key(a.Id), record)
	r.versions.Put(storage.Key(a.Id, a.Height), record)
	r.cache.SetDefault(cacheKey(a.Id), a)
}

// Add - register a newly issued asset
func (r *Registry) Add(a *Asset) error {
	r.Lock()
	defer r.Unlock()

	if nil != r.Get(a.Id) {
		return fault.Detail(fault.ErrAssetAlreadyExists, "asset: %d", a.Id)
	}
	if a.Quantity <= 0 || a.Quantity > constants.MaxAssetQuantity {
		return fault.ErrInvalidQuantity
	}

	record := *a
	record.InitialQuantity = a.Quantity
	r.store(&record)

	r.log.Infof("issued: asset: %d  name: %q  quantity: %d  issuer: %d", a.Id, a.Name, a.Quantity, a.Issuer)
	return nil
}

// DeleteQuantity - reduce the supply and record the change
func (r *Registry) DeleteQuantity(h History) error {
	if h.Quantity <= 0 {
		return fault.ErrInvalidQuantity
	}
	return r.changeQuantity(h, -h.Quantity)
}

// IncreaseQuantity - increase the supply and record the change
func (r *Registry) IncreaseQuantity(h History) error {
	if h.Quantity <= 0 {
		return fault.ErrInvalidQuantity
	}
	return r.changeQuantity(h, h.Quantity)
}

func (r *Registry) changeQuantity(h History, delta int64) error {
	r.Lock()
	defer r.Unlock()

	current := r.Get(h.AssetId)
	if nil == current {
		return fault.Detail(fault.ErrAssetNotFound, "asset: %d", h.AssetId)
	}

	quantity := current.Quantity + delta
	if quantity < 0 {
		return fault.Detail(fault.ErrAssetQuantityExceeded, "asset: %d  supply: %d  delete: %d", h.AssetId, current.Quantity, -delta)
	}
	if quantity > constants.MaxAssetQuantity {
		return fault.Detail(fault.ErrArithmeticOverflow, "asset: %d  supply: %d  increase: %d", h.AssetId, current.Quantity, delta)
	}

	next := *current
	next.Quantity = quantity
	r.store(&next)

	// deletes are stored as negative quantities
	h.Quantity = delta
	h.Height = next.Height
	h.Timestamp = r.blockchain.LastBlockTimestamp()
	r.history.Put(storage.Key(h.AssetId, storage.Descending(h.Height), h.Id), h.pack())

	r.log.Infof("asset: %d  change: %d  supply: %d", h.AssetId, delta, quantity)
	return nil
}

// SetPhasingControl - set or clear the phasing control flag
func (r *Registry) SetPhasingControl(id uint64, enabled bool) error {
	r.Lock()
	defer r.Unlock()

	current := r.Get(id)
	if nil == current {
		return fault.Detail(fault.ErrAssetNotFound, "asset: %d", id)
	}
	if current.HasPhasingControl == enabled {
		return nil
	}

	next := *current
	next.HasPhasingControl = enabled
	r.store(&next)
	return nil
}

// History - supply changes of an asset, newest first
func (r *Registry) History(id uint64, count int) ([]History, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	elements, err := r.history.NewFetchCursor().Prefix(storage.Key(id)).Fetch(count)
	if nil != err {
		return nil, err
	}
	result := make([]History, 0, len(elements))
	for _, e := range elements {
		h, err := unpackHistory(e.Value)
		if nil != err {
			logger.Panicf("asset: %d  corrupt history: %s", id, err)
		}
		result = append(result, h)
	}
	return result, nil
}
