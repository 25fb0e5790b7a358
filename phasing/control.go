// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phasing

import (
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/util"
	"github.com/bitmark-inc/logger"
)

// Control - the phasing parameters of each controlled asset
type Control struct {
	log  *logger.L
	pool storage.Handle
}

// NewControl - create the control store over a pool
func NewControl(pool storage.Handle) *Control {
	return &Control{
		log:  logger.New("phasing"),
		pool: pool,
	}
}

// Get - the control parameters of an asset, nil if uncontrolled
func (c *Control) Get(assetId uint64) *Params {
	record := c.pool.Get(storage.Key(assetId))
	if nil == record {
		return nil
	}
	r := util.NewWireReader(record)
	p, err := ReadBinary(r)
	if nil == err && 0 != r.Remaining() {
		err = fault.ErrUnexpectedRecordLength
	}
	if nil != err {
		logger.Panicf("phasing: asset: %d  corrupt control: %s", assetId, err)
	}
	return p
}

// Set - store parameters, or remove control for the NONE model
//
// returns true if the asset is controlled afterwards
func (c *Control) Set(assetId uint64, p *Params) bool {
	key := storage.Key(assetId)
	if p.IsNone() {
		c.pool.Delete(key)
		c.log.Infof("asset: %d  control removed", assetId)
		return false
	}
	c.pool.Put(key, p.AppendBinary(util.WireWriter{}))
	c.log.Infof("asset: %d  control: %s  quorum: %d", assetId, p.VotingModel, p.Quorum)
	return true
}
