// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - pool of pending transactions and block applier
//
// a submitted transaction is validated, checked for conflicts with
// the rest of the pool and has its unconfirmed balances reserved.
// When a block arrives every pending reservation is released, the
// block is applied and the surviving transactions are resubmitted.
// Transactions past their deadline are evicted by a background
// process, each reservation being released exactly once.
package reservoir
