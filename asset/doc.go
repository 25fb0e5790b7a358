// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - registry of issued assets
//
// the registry keeps:
// a. the current version of each asset, cached in memory
// b. every version keyed by the height it took effect, so the
//    asset in force at a past height can be found
// c. history rows for supply deletes and increases
// d. the append-only record of asset transfers
//
// an asset is never removed; deleting the whole supply leaves a
// record with zero quantity
package asset
