// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. height       = big endian uint64 (8 bytes)
// 4. ^height      = bitwise complement of height, so newest sorts first
// 5. id           = asset, order, account or transaction id as big endian uint64
// 6. holding      = holding type (1 byte) ++ holding id
// 7. *others*     = varint packed records
//
// Assets:
//
//   A ++ assetId                       - current asset version
//   a ++ assetId ++ height             - asset version in force from height
//   c ++ assetId ++ ^height ++ txId    - asset history (delete / increase)
//
// Balances:
//
//   L ++ account ++ holding            - confirmed ++ unconfirmed
//   h ++ holding ++ account ++ height  - confirmed balance from height
//   E ++ height ++ txId ++ account ++ holding ++ sequence
//                                      - ledger audit entries
//
// Orders:
//
//   S ++ orderId                       - ask orders
//   K ++ orderId                       - bid orders
//
// Dividends:
//
//   V ++ assetId ++ ^height ++ txId    - dividend events
//   W ++ assetId                       - most recent dividend event
//
// Transfers:
//
//   T ++ txId                          - asset transfer record
//   t ++ assetId ++ ^height ++ txId    - transfers of an asset
//   u ++ account ++ ^height ++ txId    - transfers sent or received by an account
//
// Other:
//
//   P ++ assetId                       - phasing asset control parameters
//   C ++ currencyId                    - currency registry
//   U ++ txId                          - pending transactions saved at shutdown
//   Q ++ name                          - node state (block height, timestamp)
//   Z ++ key                           - testing data
package storage
