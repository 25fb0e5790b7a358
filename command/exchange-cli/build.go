// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/exchange"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/phasing"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// the result of every build command
type reply struct {
	Attachment     string                         `json:"attachmentBytes"`
	AttachmentJSON transactionrecord.Attachment   `json:"attachment"`
	BaselineFee    string                         `json:"baselineFee,omitempty"`
	Transaction    *transactionrecord.Transaction `json:"transactionJSON,omitempty"`
	TransactionHex string                         `json:"transactionBytes,omitempty"`
}

func runIssue(c *cli.Context) error {
	decimals, err := checkDecimals(c.Uint("decimals"))
	if nil != err {
		return err
	}
	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing asset name")
	}
	quantity, err := checkUnits("quantity", c.String("quantity"), decimals)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.AssetIssuance{
		Name:        name,
		Description: c.String("description"),
		Quantity:    quantity,
		Decimals:    decimals,
	})
}

// asset and quantity common to several commands
func assetQuantity(c *cli.Context) (uint64, int64, uint8, error) {
	assetId := c.Uint64("asset")
	if 0 == assetId {
		return 0, 0, 0, fmt.Errorf("missing asset id")
	}
	decimals, err := checkDecimals(c.Uint("decimals"))
	if nil != err {
		return 0, 0, 0, err
	}
	quantity, err := checkUnits("quantity", c.String("quantity"), decimals)
	if nil != err {
		return 0, 0, 0, err
	}
	return assetId, quantity, decimals, nil
}

func runTransfer(c *cli.Context) error {
	assetId, quantity, _, err := assetQuantity(c)
	if nil != err {
		return err
	}
	recipient, err := checkAccount("recipient", c.String("recipient"))
	if nil != err {
		return err
	}
	return output(c, recipient, &transactionrecord.AssetTransfer{AssetId: assetId, Quantity: quantity})
}

func runDelete(c *cli.Context) error {
	assetId, quantity, _, err := assetQuantity(c)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.AssetDelete{AssetId: assetId, Quantity: quantity})
}

func runIncrease(c *cli.Context) error {
	assetId, quantity, _, err := assetQuantity(c)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.AssetIncrease{AssetId: assetId, Quantity: quantity})
}

func placement(c *cli.Context) (transactionrecord.OrderPlacement, error) {
	m := c.App.Metadata["config"].(*metadata)

	assetId, quantity, _, err := assetQuantity(c)
	if nil != err {
		return transactionrecord.OrderPlacement{}, err
	}
	price, err := checkUnits("price", c.String("price"), m.chain.Decimals)
	if nil != err {
		return transactionrecord.OrderPlacement{}, err
	}
	return transactionrecord.OrderPlacement{AssetId: assetId, Quantity: quantity, Price: price}, nil
}

func runAsk(c *cli.Context) error {
	p, err := placement(c)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.AskOrderPlacement{OrderPlacement: p})
}

func runBid(c *cli.Context) error {
	p, err := placement(c)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.BidOrderPlacement{OrderPlacement: p})
}

func orderHash(c *cli.Context) (merkle.Digest, error) {
	var digest merkle.Digest
	err := digest.UnmarshalText([]byte(c.String("order")))
	if nil != err {
		return digest, fmt.Errorf("order: %q: %s", c.String("order"), err)
	}
	return digest, nil
}

func runCancelAsk(c *cli.Context) error {
	digest, err := orderHash(c)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.AskOrderCancellation{
		OrderCancellation: transactionrecord.OrderCancellation{OrderHash: digest},
	})
}

func runCancelBid(c *cli.Context) error {
	digest, err := orderHash(c)
	if nil != err {
		return err
	}
	return output(c, 0, &transactionrecord.BidOrderCancellation{
		OrderCancellation: transactionrecord.OrderCancellation{OrderHash: digest},
	})
}

func runDividend(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	assetId := c.Uint64("asset")
	if 0 == assetId {
		return fmt.Errorf("missing asset id")
	}
	height := c.Uint("height")
	if 0 == height {
		return fmt.Errorf("missing height")
	}
	h, err := holding.Parse(c.String("holding"), m.chain.Id)
	if nil != err {
		return err
	}

	decimals := m.chain.Decimals
	if holding.Coin != h.Type {
		decimals, err = checkDecimals(c.Uint("holding-decimals"))
		if nil != err {
			return err
		}
	}
	amount, err := checkUnits("amount", c.String("amount"), decimals)
	if nil != err {
		return err
	}

	return output(c, 0, &transactionrecord.DividendPayment{
		AssetId:       assetId,
		Height:        uint32(height),
		HoldingType:   h.Type,
		HoldingId:     h.Id,
		AmountPerUnit: amount,
	})
}

// voting models allowed for asset control
var models = map[string]phasing.VotingModel{
	"none":     phasing.VotingNone,
	"account":  phasing.VotingAccount,
	"coin":     phasing.VotingCoin,
	"asset":    phasing.VotingAsset,
	"currency": phasing.VotingCurrency,
}

func runPhasingControl(c *cli.Context) error {
	assetId := c.Uint64("asset")
	if 0 == assetId {
		return fmt.Errorf("missing asset id")
	}

	model, ok := models[strings.ToLower(c.String("model"))]
	if !ok {
		return fmt.Errorf("model: %q is not supported", c.String("model"))
	}

	params := phasing.Params{
		VotingModel:     model,
		Quorum:          c.Int64("quorum"),
		MinBalance:      c.Int64("min-balance"),
		HoldingId:       c.Uint64("holding"),
		MinBalanceModel: phasing.MinBalanceModel(c.Uint("min-balance-model")),
	}
	for _, s := range c.StringSlice("whitelist") {
		a, err := checkAccount("whitelist", s)
		if nil != err {
			return err
		}
		params.Whitelist = append(params.Whitelist, a)
	}

	// catch mistakes before anything is signed
	err := params.ValidateRestrictable()
	if nil != err {
		return err
	}

	return output(c, 0, &transactionrecord.SetPhasingAssetControl{AssetId: assetId, Params: params})
}

func runDecode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 1 != c.NArg() {
		return fmt.Errorf("expected one hex argument")
	}
	record, err := hex.DecodeString(strings.TrimSpace(c.Args().First()))
	if nil != err {
		return err
	}
	tx, err := transactionrecord.UnpackTransaction(record)
	if nil != err {
		return err
	}
	return printJson(m.w, tx)
}

// print the attachment and, with a sender, the whole transaction
func output(c *cli.Context, recipient account.Id, attachment transactionrecord.Attachment) error {
	m := c.App.Metadata["config"].(*metadata)

	r := reply{
		Attachment:     hex.EncodeToString(attachment.Pack()),
		AttachmentJSON: attachment,
	}

	sender := c.GlobalString("sender")
	if "" == sender {
		return printJson(m.w, r)
	}

	tx, err := buildTransaction(c, m, sender, recipient, attachment)
	if nil != err {
		return err
	}
	packed, err := tx.Pack()
	if nil != err {
		return err
	}

	d, err := exchange.ForTransaction(tx)
	if nil != err {
		return err
	}
	r.BaselineFee = formatUnits(d.BaselineFee(tx), m.chain.Decimals)
	r.Transaction = tx
	r.TransactionHex = hex.EncodeToString(packed)

	if m.verbose {
		fmt.Fprintf(m.e, "%s: id: %d  fee: %s\n", d.Name(), tx.Id, formatUnits(tx.Fee, m.chain.Decimals))
	}
	return printJson(m.w, r)
}
