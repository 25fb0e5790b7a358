// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

var maxUnits = decimal.New(math.MaxInt64, 0)

// whole units in text to smallest units
//
// more fractional digits than decimals is an error, not a rounding
func parseUnits(s string, decimals uint8) (int64, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, err
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, fmt.Errorf("%q has more than %d decimal places", s, decimals)
	}
	if scaled.GreaterThan(maxUnits) || scaled.LessThan(maxUnits.Neg()) {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return scaled.IntPart(), nil
}

// smallest units to whole units
func formatUnits(value int64, decimals uint8) string {
	return decimal.New(value, -int32(decimals)).StringFixed(int32(decimals))
}

func checkUnits(name string, s string, decimals uint8) (int64, error) {
	if "" == s {
		return 0, fmt.Errorf("missing %s", name)
	}
	n, err := parseUnits(s, decimals)
	if nil != err {
		return 0, fmt.Errorf("%s: %s", name, err)
	}
	return n, nil
}

func checkDecimals(n uint) (uint8, error) {
	if n > constants.MaxAssetDecimals {
		return 0, fmt.Errorf("decimals: %d exceeds: %d", n, constants.MaxAssetDecimals)
	}
	return uint8(n), nil
}

// a base58 account or a decimal account number
func checkAccount(name string, s string) (account.Id, error) {
	if "" == s {
		return 0, fmt.Errorf("missing %s", name)
	}
	if n, err := strconv.ParseUint(s, 10, 64); nil == err {
		return account.Id(n), nil
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return 0, fmt.Errorf("%s: %q: %s", name, s, err)
	}
	return a, nil
}

// fill the envelope from the global flags
func buildTransaction(c *cli.Context, m *metadata, senderText string, recipient account.Id, attachment transactionrecord.Attachment) (*transactionrecord.Transaction, error) {
	sender, err := checkAccount("sender", senderText)
	if nil != err {
		return nil, err
	}

	timestamp := c.GlobalUint64("timestamp")
	if 0 == timestamp {
		timestamp = uint64(time.Now().Unix())
	}

	tx := &transactionrecord.Transaction{
		Subtype:             attachment.Subtype(),
		ChainId:             m.chain.Id,
		Timestamp:           timestamp,
		Deadline:            uint16(c.GlobalUint("deadline")),
		Sender:              sender,
		Recipient:           recipient,
		PhasingFinishHeight: c.GlobalUint64("phasing-finish"),
		Attachment:          attachment,
	}

	if fee := c.GlobalString("fee"); "" != fee {
		tx.Fee, err = parseUnits(fee, m.chain.Decimals)
		if nil != err {
			return nil, fmt.Errorf("fee: %s", err)
		}
	} else {
		d, err := exchange.ForTransaction(tx)
		if nil != err {
			return nil, err
		}
		tx.Fee = d.BaselineFee(tx)
	}

	err = tx.Seal()
	if nil != err {
		return nil, err
	}
	return tx, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
