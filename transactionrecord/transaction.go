// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"
	"math"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/util"
)

// envelope version
const transactionVersion = byte(1)

// fixed part of a packed transaction:
// type ++ subtype ++ version ++ chain(4) ++ timestamp(4) ++ deadline(2) ++
// sender(8) ++ recipient(8) ++ amount(8) ++ fee(8) ++ phasing finish height(4)
const envelopeLength = 1 + 1 + 1 + 4 + 4 + 2 + 8 + 8 + 8 + 8 + 4

// Transaction - the envelope of an asset exchange transaction
//
// signature checks, fees and deadlines are enforced before a
// transaction reaches this package; Height and Index are assigned
// when the transaction is included in a block and are not hashed
type Transaction struct {
	Id                  uint64
	FullHash            merkle.Digest
	Subtype             Subtype
	ChainId             uint64
	Timestamp           uint64
	Deadline            uint16 // minutes
	Sender              account.Id
	Recipient           account.Id // zero for none
	Amount              int64
	Fee                 int64
	PhasingFinishHeight uint64 // zero when not phased
	Height              uint64
	Index               uint32
	Attachment          Attachment
}

// Expiry - timestamp after which the transaction cannot be included
func (tx *Transaction) Expiry() uint64 {
	return tx.Timestamp + 60*uint64(tx.Deadline)
}

// IsPhased - true if the transaction is held until a finish height
func (tx *Transaction) IsPhased() bool {
	return 0 != tx.PhasingFinishHeight
}

// Pack - canonical binary form; the full hash is computed over this
func (tx *Transaction) Pack() (Packed, error) {
	if nil == tx.Attachment {
		return nil, fault.ErrInvalidAttachment
	}
	if tx.Attachment.Subtype() != tx.Subtype {
		return nil, fault.ErrWrongTransactionType
	}
	if tx.ChainId > math.MaxUint32 || tx.Timestamp > math.MaxUint32 || tx.PhasingFinishHeight > math.MaxUint32 {
		return nil, fault.ErrHeightOutOfRange
	}
	w := util.WireWriter{}.
		Byte(AssetExchangeType).
		Byte(byte(tx.Subtype)).
		Byte(transactionVersion).
		Uint32(uint32(tx.ChainId)).
		Uint32(uint32(tx.Timestamp)).
		Uint16(tx.Deadline).
		Uint64(uint64(tx.Sender)).
		Uint64(uint64(tx.Recipient)).
		Int64(tx.Amount).
		Int64(tx.Fee).
		Uint32(uint32(tx.PhasingFinishHeight)).
		Raw(tx.Attachment.Pack())
	return Packed(w), nil
}

// Seal - compute the full hash and id from the packed form
func (tx *Transaction) Seal() error {
	packed, err := tx.Pack()
	if nil != err {
		return err
	}
	tx.FullHash = merkle.NewDigest(packed)
	tx.Id = tx.FullHash.Id()
	return nil
}

// UnpackTransaction - decode a packed transaction and derive its hash
func UnpackTransaction(record Packed) (*Transaction, error) {
	if len(record) < envelopeLength {
		return nil, fault.ErrRecordTruncated
	}
	r := util.NewWireReader(record[:envelopeLength])
	if AssetExchangeType != r.Byte() {
		return nil, fault.ErrWrongTransactionType
	}
	subtype := Subtype(r.Byte())
	if !subtype.Valid() {
		return nil, fault.ErrInvalidSubtype
	}
	if version := r.Byte(); transactionVersion != version {
		return nil, fault.Detail(fault.ErrInvalidAttachmentVersion, "transaction version: %d", version)
	}
	tx := &Transaction{
		Subtype:             subtype,
		ChainId:             uint64(r.Uint32()),
		Timestamp:           uint64(r.Uint32()),
		Deadline:            r.Uint16(),
		Sender:              account.Id(r.Uint64()),
		Recipient:           account.Id(r.Uint64()),
		Amount:              r.Int64(),
		Fee:                 r.Int64(),
		PhasingFinishHeight: uint64(r.Uint32()),
	}
	if nil != r.Err() {
		return nil, r.Err()
	}

	attachment, err := record[envelopeLength:].Unpack(subtype)
	if nil != err {
		return nil, err
	}
	tx.Attachment = attachment
	tx.FullHash = merkle.NewDigest(record)
	tx.Id = tx.FullHash.Id()
	return tx, nil
}

// JSON form as used by the API
type transactionJSON struct {
	Id                  uint64          `json:"transaction,string,omitempty"`
	FullHash            *merkle.Digest  `json:"fullHash,omitempty"`
	Type                byte            `json:"type"`
	Subtype             Subtype         `json:"subtype"`
	ChainId             uint64          `json:"chain"`
	Timestamp           uint64          `json:"timestamp"`
	Deadline            uint16          `json:"deadline"`
	Sender              account.Id      `json:"sender"`
	Recipient           *account.Id     `json:"recipient,omitempty"`
	Amount              int64           `json:"amountNQT,string"`
	Fee                 int64           `json:"feeNQT,string"`
	PhasingFinishHeight uint64          `json:"phasingFinishHeight,omitempty"`
	Height              uint64          `json:"height,omitempty"`
	Attachment          json.RawMessage `json:"attachment"`
}

// MarshalJSON - API form
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	attachment, err := json.Marshal(tx.Attachment)
	if nil != err {
		return nil, err
	}
	j := transactionJSON{
		Id:                  tx.Id,
		Type:                AssetExchangeType,
		Subtype:             tx.Subtype,
		ChainId:             tx.ChainId,
		Timestamp:           tx.Timestamp,
		Deadline:            tx.Deadline,
		Sender:              tx.Sender,
		Amount:              tx.Amount,
		Fee:                 tx.Fee,
		PhasingFinishHeight: tx.PhasingFinishHeight,
		Height:              tx.Height,
		Attachment:          attachment,
	}
	if !tx.FullHash.IsEmpty() {
		hash := tx.FullHash
		j.FullHash = &hash
	}
	if 0 != tx.Recipient {
		recipient := tx.Recipient
		j.Recipient = &recipient
	}
	return json.Marshal(j)
}

// ParseTransactionJSON - decode the API form and seal it
//
// id, full hash and height in the input are ignored
func ParseTransactionJSON(data []byte) (*Transaction, error) {
	j := transactionJSON{}
	err := json.Unmarshal(data, &j)
	if nil != err {
		return nil, fault.Detail(fault.ErrInvalidAttachment, "transaction: %s", err)
	}
	if AssetExchangeType != j.Type {
		return nil, fault.ErrWrongTransactionType
	}
	if !j.Subtype.Valid() {
		return nil, fault.ErrInvalidSubtype
	}
	attachment, err := ParseJSON(j.Subtype, j.Attachment)
	if nil != err {
		return nil, err
	}
	tx := &Transaction{
		Subtype:             j.Subtype,
		ChainId:             j.ChainId,
		Timestamp:           j.Timestamp,
		Deadline:            j.Deadline,
		Sender:              j.Sender,
		Amount:              j.Amount,
		Fee:                 j.Fee,
		PhasingFinishHeight: j.PhasingFinishHeight,
		Attachment:          attachment,
	}
	if nil != j.Recipient {
		tx.Recipient = *j.Recipient
	}
	err = tx.Seal()
	if nil != err {
		return nil, err
	}
	return tx, nil
}
