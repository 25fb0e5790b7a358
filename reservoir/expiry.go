// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/exchanged/constants"
)

// expiry loop
func (state *expiryData) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	globalData := args.(*globalDataType)

	log.Info("starting…")

	ticker := time.NewTicker(constants.ExpiryCheckInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case now := <-ticker.C:
			globalData.Lock()
			n := globalData.expire(now)
			globalData.Unlock()
			if n > 0 {
				log.Infof("expired: %d", n)
			}
		}
	}
	log.Info("stopped")
}

// Expire - evict transactions past their deadline now
//
// returns the number evicted
func Expire() int {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0
	}
	return globalData.expire(time.Now())
}

// evict transactions whose deadline precedes the last block or that
// have waited longer than the pool timeout
//
// must hold lock
func (g *globalDataType) expire(now time.Time) int {
	lastTimestamp := g.env.Blockchain.LastBlockTimestamp()

	n := 0
	for id, item := range g.pending {
		if item.tx.Expiry() > lastTimestamp && now.Sub(item.received) <= constants.ReservoirTimeout {
			continue
		}
		g.log.Infof("%s: tx: %d  expired", item.descriptor.Name(), id)
		g.release(item)
		delete(g.pending, id)
		expiredCounter.WithLabelValues(item.descriptor.Name()).Inc()
		n += 1
	}

	if n > 0 {
		g.rebuildDuplicates()
		pendingGauge.Set(float64(len(g.pending)))
	}
	return n
}
