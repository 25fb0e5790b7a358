// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package exchange - asset exchange transaction types
//
// each subtype is a Descriptor in a fixed table; a transaction passes
// through its descriptor in stages:
//
//   Validate          check against current state, no side effects
//   IsDuplicate       conflicts within a pool or block
//   ApplyUnconfirmed  reserve the sender's unconfirmed balances
//   Apply             settle at block application
//   UndoUnconfirmed   release a reservation that will not be applied
//
// ApplyUnconfirmed and UndoUnconfirmed are exact inverses; Apply
// assumes the reservation is in place and moves confirmed balances
// only
package exchange
