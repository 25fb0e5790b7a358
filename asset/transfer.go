// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/storage"
	"github.com/bitmark-inc/exchanged/util"
	"github.com/bitmark-inc/logger"
)

// Transfer - one executed asset transfer
type Transfer struct {
	Id        uint64        `json:"assetTransfer,string"`
	FullHash  merkle.Digest `json:"assetTransferFullHash"`
	ChainId   uint64        `json:"chain"`
	AssetId   uint64        `json:"asset,string"`
	Sender    account.Id    `json:"sender"`
	Recipient account.Id    `json:"recipient"`
	Quantity  int64         `json:"quantityQNT,string"`
	Timestamp uint64        `json:"timestamp"`
	Height    uint64        `json:"height"`
}

// TransferSink - receives each transfer after it is recorded
type TransferSink interface {
	Transferred(*Transfer)
}

// Transfers - the append-only transfer record
type Transfers struct {
	log        *logger.L
	blockchain Blockchain
	records    storage.Handle
	byAsset    storage.Handle
	byAccount  storage.Handle
	sink       TransferSink
}

// NewTransfers - create the transfer record; sink may be nil
func NewTransfers(blockchain Blockchain, records storage.Handle, byAsset storage.Handle, byAccount storage.Handle, sink TransferSink) *Transfers {
	return &Transfers{
		log:        logger.New("transfer"),
		blockchain: blockchain,
		records:    records,
		byAsset:    byAsset,
		byAccount:  byAccount,
		sink:       sink,
	}
}

// Add - record a transfer at the current height and notify the sink
// once the record is committed
func (t *Transfers) Add(transfer Transfer) (*Transfer, error) {
	if t.records.Has(storage.Key(transfer.Id)) {
		return nil, fault.Detail(fault.ErrDuplicateTransaction, "transfer: %d", transfer.Id)
	}

	transfer.Height = t.blockchain.Height()
	transfer.Timestamp = t.blockchain.LastBlockTimestamp()

	descending := storage.Descending(transfer.Height)
	t.records.Put(storage.Key(transfer.Id), transfer.pack())
	t.byAsset.Put(storage.Key(transfer.AssetId, descending, transfer.Id), []byte{})
	t.byAccount.Put(storage.Key(transfer.Sender, descending, transfer.Id), []byte{})
	if transfer.Recipient != transfer.Sender {
		t.byAccount.Put(storage.Key(transfer.Recipient, descending, transfer.Id), []byte{})
	}

	t.log.Debugf("asset: %d  quantity: %d  from: %d  to: %d", transfer.AssetId, transfer.Quantity, transfer.Sender, transfer.Recipient)

	if nil != t.sink {
		notify := transfer
		storage.AfterCommit(func() {
			t.sink.Transferred(&notify)
		})
	}
	return &transfer, nil
}

// Get - a transfer by its id, nil if not found
func (t *Transfers) Get(id uint64) *Transfer {
	record := t.records.Get(storage.Key(id))
	if nil == record {
		return nil
	}
	transfer, err := unpackTransfer(record)
	if nil != err {
		logger.Panicf("transfer: %d  corrupt record: %s", id, err)
	}
	return transfer
}

// ByAsset - transfers of an asset, newest first
func (t *Transfers) ByAsset(assetId uint64, count int) ([]*Transfer, error) {
	return t.list(t.byAsset, storage.Key(assetId), count)
}

// ByAccount - transfers sent or received by an account, newest first
func (t *Transfers) ByAccount(a account.Id, count int) ([]*Transfer, error) {
	return t.list(t.byAccount, storage.Key(a), count)
}

// index keys are: id ++ ^height ++ transferId
func (t *Transfers) list(index storage.Handle, prefix []byte, count int) ([]*Transfer, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	elements, err := index.NewFetchCursor().Prefix(prefix).Fetch(count)
	if nil != err {
		return nil, err
	}
	result := make([]*Transfer, 0, len(elements))
	for _, e := range elements {
		if 24 != len(e.Key) {
			logger.Panicf("transfer: corrupt index key: %x", e.Key)
		}
		transfer := t.Get(storage.KeyUint64(e.Key, 16))
		if nil == transfer {
			logger.Panicf("transfer: index key: %x  has no record", e.Key)
		}
		result = append(result, transfer)
	}
	return result, nil
}

func (transfer *Transfer) pack() []byte {
	return util.Packer{}.
		Uint64(transfer.Id).
		Bytes(transfer.FullHash[:]).
		Uint64(transfer.ChainId).
		Uint64(transfer.AssetId).
		Uint64(uint64(transfer.Sender)).
		Uint64(uint64(transfer.Recipient)).
		Int64(transfer.Quantity).
		Uint64(transfer.Timestamp).
		Uint64(transfer.Height)
}

func unpackTransfer(record []byte) (*Transfer, error) {
	u := util.NewUnpacker(record)
	transfer := &Transfer{
		Id: u.Uint64(),
	}
	hash := u.Bytes()
	transfer.ChainId = u.Uint64()
	transfer.AssetId = u.Uint64()
	transfer.Sender = account.Id(u.Uint64())
	transfer.Recipient = account.Id(u.Uint64())
	transfer.Quantity = u.Int64()
	transfer.Timestamp = u.Uint64()
	transfer.Height = u.Uint64()
	if nil != u.Err() {
		return nil, u.Err()
	}
	if 0 != u.Remaining() {
		return nil, fault.ErrUnexpectedRecordLength
	}
	err := merkle.DigestFromBytes(&transfer.FullHash, hash)
	return transfer, err
}
