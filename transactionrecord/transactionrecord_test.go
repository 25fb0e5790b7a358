// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/holding"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/phasing"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

func attachments() []transactionrecord.Attachment {
	return []transactionrecord.Attachment{
		&transactionrecord.AssetIssuance{
			Name:        "Gold",
			Description: "one gram of gold",
			Quantity:    100000,
			Decimals:    2,
		},
		&transactionrecord.AssetTransfer{AssetId: 0x1122334455667788, Quantity: 7},
		&transactionrecord.AskOrderPlacement{
			OrderPlacement: transactionrecord.OrderPlacement{AssetId: 5, Quantity: 400, Price: 1000},
		},
		&transactionrecord.BidOrderPlacement{
			OrderPlacement: transactionrecord.OrderPlacement{AssetId: 5, Quantity: 10, Price: 99},
		},
		&transactionrecord.AskOrderCancellation{
			OrderCancellation: transactionrecord.OrderCancellation{OrderHash: merkle.NewDigest([]byte("ask"))},
		},
		&transactionrecord.BidOrderCancellation{
			OrderCancellation: transactionrecord.OrderCancellation{OrderHash: merkle.NewDigest([]byte("bid"))},
		},
		&transactionrecord.DividendPayment{
			AssetId:       5,
			Height:        1234,
			HoldingType:   holding.Currency,
			HoldingId:     77,
			AmountPerUnit: 25,
		},
		&transactionrecord.AssetDelete{AssetId: 5, Quantity: 200},
		&transactionrecord.AssetIncrease{AssetId: 5, Quantity: 300},
		&transactionrecord.SetPhasingAssetControl{
			AssetId: 5,
			Params: phasing.Params{
				VotingModel: phasing.VotingAccount,
				Quorum:      1,
				Whitelist:   []account.Id{11, 12},
			},
		},
	}
}

func TestSubtypeCodes(t *testing.T) {
	for i, a := range attachments() {
		assert.Equal(t, transactionrecord.Subtype(i), a.Subtype(), "attachment %d", i)
		assert.True(t, a.Subtype().Valid())
	}
	assert.False(t, transactionrecord.InvalidSubtype.Valid())
	assert.Equal(t, "DividendPayment", transactionrecord.DividendPaymentSubtype.String())
	assert.Equal(t, "Subtype(42)", transactionrecord.Subtype(42).String())
}

func TestPackUnpack(t *testing.T) {
	for _, a := range attachments() {
		packed := a.Pack()
		assert.Equal(t, byte(1), packed[0], "%s: version", a.Subtype())

		unpacked, err := packed.Unpack(a.Subtype())
		assert.Nil(t, err, "%s: unpack error: %s", a.Subtype(), err)
		assert.Equal(t, a, unpacked, "%s", a.Subtype())
	}
}

func TestUnpackTruncated(t *testing.T) {
	for _, a := range attachments() {
		packed := a.Pack()
		for n := 0; n < len(packed); n += 1 {
			_, err := packed[:n].Unpack(a.Subtype())
			assert.NotNil(t, err, "%s: truncated to %d", a.Subtype(), n)
		}
	}
}

func TestUnpackExtraBytes(t *testing.T) {
	a := &transactionrecord.AssetTransfer{AssetId: 1, Quantity: 2}
	packed := append(a.Pack(), 0)
	_, err := packed.Unpack(a.Subtype())
	assert.True(t, errors.Is(err, fault.ErrUnexpectedRecordLength), "actual: %v", err)
}

func TestUnpackBadVersion(t *testing.T) {
	a := &transactionrecord.AssetDelete{AssetId: 1, Quantity: 2}
	packed := a.Pack()
	packed[0] = 2
	_, err := packed.Unpack(a.Subtype())
	assert.True(t, errors.Is(err, fault.ErrInvalidAttachmentVersion), "actual: %v", err)
}

func TestUnpackLimits(t *testing.T) {
	long := &transactionrecord.AssetIssuance{Name: strings.Repeat("x", 11), Quantity: 1}
	_, err := long.Pack().Unpack(transactionrecord.AssetIssuanceSubtype)
	assert.True(t, errors.Is(err, fault.ErrNameTooLong), "actual: %v", err)

	d := &transactionrecord.DividendPayment{AssetId: 1, HoldingType: holding.Type(7)}
	_, err = d.Pack().Unpack(transactionrecord.DividendPaymentSubtype)
	assert.True(t, fault.IsErrInvalid(err), "actual: %v", err)

	_, err = transactionrecord.Packed{1}.Unpack(transactionrecord.InvalidSubtype)
	assert.Equal(t, fault.ErrInvalidSubtype, err)
}

func TestJSONRoundTrip(t *testing.T) {
	for _, a := range attachments() {
		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%s: marshal error: %s", a.Subtype(), err)

		parsed, err := transactionrecord.ParseJSON(a.Subtype(), buffer)
		assert.Nil(t, err, "%s: parse error: %s", a.Subtype(), err)
		assert.Equal(t, a, parsed, "%s", a.Subtype())
	}
}

func TestParseJSON(t *testing.T) {
	a, err := transactionrecord.ParseJSON(transactionrecord.AssetTransferSubtype,
		[]byte(`{"asset":"18446744073709551615","quantityQNT":"12"}`))
	assert.Nil(t, err)
	assert.Equal(t, &transactionrecord.AssetTransfer{AssetId: 18446744073709551615, Quantity: 12}, a)

	_, err = transactionrecord.ParseJSON(transactionrecord.AssetTransferSubtype,
		[]byte(`{"asset":"1","quantity":"12"}`))
	assert.True(t, errors.Is(err, fault.ErrInvalidAttachment), "actual: %v", err)

	_, err = transactionrecord.ParseJSON(transactionrecord.DividendPaymentSubtype,
		[]byte(`{"asset":"1","height":3,"holdingType":9,"holding":"0","amountNQTPerShare":"1"}`))
	assert.Equal(t, fault.ErrInvalidHoldingType, err)

	_, err = transactionrecord.ParseJSON(transactionrecord.InvalidSubtype, []byte(`{}`))
	assert.Equal(t, fault.ErrInvalidSubtype, err)
}

func makeTransaction() *transactionrecord.Transaction {
	return &transactionrecord.Transaction{
		Subtype:   transactionrecord.AskOrderPlacementSubtype,
		ChainId:   1,
		Timestamp: 1000,
		Deadline:  15,
		Sender:    account.Id(0x0102030405060708),
		Fee:       100000000,
		Attachment: &transactionrecord.AskOrderPlacement{
			OrderPlacement: transactionrecord.OrderPlacement{AssetId: 5, Quantity: 400, Price: 1000},
		},
	}
}

func TestTransactionPackUnpack(t *testing.T) {
	tx := makeTransaction()
	err := tx.Seal()
	assert.Nil(t, err)
	assert.False(t, tx.FullHash.IsEmpty())
	assert.Equal(t, tx.FullHash.Id(), tx.Id)
	assert.Equal(t, uint64(1000+15*60), tx.Expiry())
	assert.False(t, tx.IsPhased())

	packed, err := tx.Pack()
	assert.Nil(t, err)
	assert.Equal(t, transactionrecord.AssetExchangeType, packed[0])
	assert.Equal(t, byte(transactionrecord.AskOrderPlacementSubtype), packed[1])

	unpacked, err := transactionrecord.UnpackTransaction(packed)
	assert.Nil(t, err)
	assert.Equal(t, tx, unpacked)

	_, err = transactionrecord.UnpackTransaction(packed[:20])
	assert.Equal(t, fault.ErrRecordTruncated, err)

	wrong := append(transactionrecord.Packed{}, packed...)
	wrong[0] = 1
	_, err = transactionrecord.UnpackTransaction(wrong)
	assert.Equal(t, fault.ErrWrongTransactionType, err)
}

func TestTransactionMismatchedAttachment(t *testing.T) {
	tx := makeTransaction()
	tx.Subtype = transactionrecord.BidOrderPlacementSubtype
	_, err := tx.Pack()
	assert.Equal(t, fault.ErrWrongTransactionType, err)

	tx.Attachment = nil
	_, err = tx.Pack()
	assert.Equal(t, fault.ErrInvalidAttachment, err)
}

func TestTransactionJSON(t *testing.T) {
	tx := makeTransaction()
	tx.Recipient = account.Id(99)
	err := tx.Seal()
	assert.Nil(t, err)

	buffer, err := json.Marshal(tx)
	assert.Nil(t, err)

	parsed, err := transactionrecord.ParseTransactionJSON(buffer)
	assert.Nil(t, err, "parse error: %s", err)
	assert.Equal(t, tx, parsed)

	_, err = transactionrecord.ParseTransactionJSON([]byte(`{"type":1,"subtype":0,"attachment":{}}`))
	assert.Equal(t, fault.ErrWrongTransactionType, err)
}
