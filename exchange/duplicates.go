// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"math"
	"strconv"

	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// Duplicates - keys seen while assembling a block or pool
//
// one map per namespace; a count of zero marks an exclusive key
type Duplicates map[transactionrecord.Subtype]map[string]int

// NewDuplicates - an empty duplicate tracker
func NewDuplicates() Duplicates {
	return make(Duplicates)
}

// Seen - the current count of a key, false if never seen
func (d Duplicates) Seen(namespace transactionrecord.Subtype, key string) (int, bool) {
	n, ok := d[namespace][key]
	return n, ok
}

// isDuplicate - record a key, true if it conflicts
//
// an exclusive key admits one occurrence; otherwise up to maxCount
func (d Duplicates) isDuplicate(namespace transactionrecord.Subtype, key string, exclusive bool) bool {
	maxCount := math.MaxInt32
	if exclusive {
		maxCount = 0
	}

	keys, ok := d[namespace]
	if !ok {
		keys = make(map[string]int)
		d[namespace] = keys
	}

	current, ok := keys[key]
	if !ok {
		if maxCount > 0 {
			keys[key] = 1
		} else {
			keys[key] = 0
		}
		return false
	}
	if 0 == current {
		return true
	}
	if current < maxCount {
		keys[key] = current + 1
		return false
	}
	return true
}

func idKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}
