// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package order

import (
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/logger"
)

// Book - storage backed order book
type Book struct {
	log  *logger.L
	asks storage.Handle
	bids storage.Handle
}

// New - create an order book over the ask and bid pools
func New(asks storage.Handle, bids storage.Handle) *Book {
	return &Book{
		log:  logger.New("order"),
		asks: asks,
		bids: bids,
	}
}

func (b *Book) pool(k Kind) storage.Handle {
	switch k {
	case Ask:
		return b.asks
	case Bid:
		return b.bids
	default:
		logger.Panicf("order: invalid kind: %d", k)
	}
	return nil
}

// Add - record a new order
func (b *Book) Add(o *Order) error {
	p := b.pool(o.Kind)
	key := storage.Key(o.Id)
	if p.Has(key) {
		return fault.Detail(fault.ErrOrderAlreadyExists, "%s order: %d", o.Kind, o.Id)
	}
	p.Put(key, o.pack())
	b.log.Debugf("add %s order: %d  asset: %d  quantity: %d  price: %d", o.Kind, o.Id, o.AssetId, o.Quantity, o.Price)
	return nil
}

// Get - an open order, nil if it does not exist
func (b *Book) Get(k Kind, id uint64) *Order {
	record := b.pool(k).Get(storage.Key(id))
	if nil == record {
		return nil
	}
	o, err := unpack(record)
	if nil != err {
		logger.Panicf("%s order: %d  corrupt record: %s", k, id, err)
	}
	return o
}

// Remove - take an order out of the book
//
// returns the removed order, or nil if it was not present
func (b *Book) Remove(k Kind, id uint64) *Order {
	o := b.Get(k, id)
	if nil == o {
		return nil
	}
	b.pool(k).Delete(storage.Key(id))
	b.log.Debugf("remove %s order: %d", k, id)
	return o
}

// List - open orders of one kind, optionally restricted to an asset
//
// assetId zero selects every asset; at most count are returned in
// order id sequence
func (b *Book) List(k Kind, assetId uint64, count int) ([]*Order, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	result := make([]*Order, 0)
	err := b.pool(k).NewFetchCursor().Map(func(key []byte, value []byte) error {
		o, err := unpack(value)
		if nil != err {
			return err
		}
		if 0 != assetId && o.AssetId != assetId {
			return nil
		}
		result = append(result, o)
		if len(result) >= count {
			return errDone
		}
		return nil
	})
	if errDone == err {
		err = nil
	}
	return result, err
}

// stops a Map early
var errDone = fault.ProcessError("done")
