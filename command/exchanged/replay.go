// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/exchanged/blockheader"
	"github.com/bitmark-inc/exchanged/reservoir"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// seconds between blocks when a replay file leaves the timestamp out
const blockInterval = 60

// one block of a replay file
type blockJSON struct {
	Height       uint64            `json:"height"`
	Timestamp    uint64            `json:"timestamp"`
	Transactions []json.RawMessage `json:"transactions"`
}

type block struct {
	height       uint64
	timestamp    uint64
	transactions []*transactionrecord.Transaction
}

// decode a replay file
//
// heights and timestamps left as zero follow on from the previous
// block, starting after the current header
func decodeBlocks(r io.Reader, height uint64, timestamp uint64) ([]block, error) {
	var items []blockJSON
	err := json.NewDecoder(r).Decode(&items)
	if nil != err {
		return nil, err
	}

	blocks := make([]block, 0, len(items))
	for i, item := range items {
		if 0 == item.Height {
			item.Height = height + 1
		}
		if item.Height <= height {
			return nil, fmt.Errorf("block[%d]: height: %d does not follow: %d", i, item.Height, height)
		}
		if 0 == item.Timestamp {
			item.Timestamp = timestamp + blockInterval
		}

		txs := make([]*transactionrecord.Transaction, len(item.Transactions))
		for j, raw := range item.Transactions {
			tx, err := transactionrecord.ParseTransactionJSON(raw)
			if nil != err {
				return nil, fmt.Errorf("block[%d] transaction[%d]: %s", i, j, err)
			}
			txs[j] = tx
		}

		blocks = append(blocks, block{
			height:       item.Height,
			timestamp:    item.Timestamp,
			transactions: txs,
		})
		height = item.Height
		timestamp = item.Timestamp
	}
	return blocks, nil
}

// apply each block of a file in order
func replay(log *logger.L, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	height, timestamp := blockheader.Get()
	blocks, err := decodeBlocks(f, height, timestamp)
	if nil != err {
		return err
	}

	for _, b := range blocks {
		err := reservoir.ApplyBlock(b.height, b.timestamp, b.transactions)
		if nil != err {
			return fmt.Errorf("block: %d: %s", b.height, err)
		}
		log.Infof("applied block: %d  transactions: %d", b.height, len(b.transactions))
		fmt.Printf("block: %d  transactions: %d\n", b.height, len(b.transactions))
	}
	return nil
}

// add transactions to the pool; rejections are reported, not fatal
func submit(log *logger.L, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	var items []json.RawMessage
	err = json.NewDecoder(f).Decode(&items)
	if nil != err {
		return err
	}

	for i, raw := range items {
		tx, err := transactionrecord.ParseTransactionJSON(raw)
		if nil != err {
			return fmt.Errorf("transaction[%d]: %s", i, err)
		}
		err = reservoir.Submit(tx)
		if nil != err {
			log.Warnf("tx: %d  rejected: %s", tx.Id, err)
			fmt.Printf("%d: %d  rejected: %s\n", i, tx.Id, err)
			continue
		}
		fmt.Printf("%d: %d  accepted\n", i, tx.Id)
	}
	return nil
}
