// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/ledger"
	"github.com/bitmark-inc/exchanged/transactionrecord"
)

// Descriptor - the behaviour of one asset exchange subtype
//
// descriptors are immutable and shared; all state lives in the
// Environment passed to each call
type Descriptor struct {
	subtype          transactionrecord.Subtype
	event            ledger.Event
	canHaveRecipient bool
	phasingSafe      bool
	global           bool

	fee                  func(*transactionrecord.Transaction) int64
	validateAttachment   func(*Environment, *transactionrecord.Transaction) error
	validateId           func(*Environment, *transactionrecord.Transaction) error
	applyUnconfirmed     func(*Environment, *transactionrecord.Transaction) (bool, error)
	apply                func(*Environment, *transactionrecord.Transaction) error
	undoUnconfirmed      func(*Environment, *transactionrecord.Transaction) error
	duplicate            func(*transactionrecord.Transaction, Duplicates) bool
	blockDuplicate       func(*transactionrecord.Transaction, Duplicates) bool
	unconfirmedDuplicate func(*transactionrecord.Transaction, Duplicates) bool
	assetId              func(*transactionrecord.Transaction) uint64
}

// the dispatch table, indexed by subtype code
var descriptors [transactionrecord.InvalidSubtype]*Descriptor

func register(d *Descriptor) *Descriptor {
	if nil != descriptors[d.subtype] {
		panic("exchange: duplicate descriptor for " + d.subtype.String())
	}
	descriptors[d.subtype] = d
	return d
}

// Lookup - the descriptor of a type and subtype
func Lookup(txType byte, subtype transactionrecord.Subtype) (*Descriptor, error) {
	if transactionrecord.AssetExchangeType != txType {
		return nil, fault.ErrWrongTransactionType
	}
	if !subtype.Valid() {
		return nil, fault.ErrInvalidSubtype
	}
	return descriptors[subtype], nil
}

// ForTransaction - the descriptor of a decoded transaction
func ForTransaction(tx *transactionrecord.Transaction) (*Descriptor, error) {
	return Lookup(transactionrecord.AssetExchangeType, tx.Subtype)
}

// Subtype - wire code
func (d *Descriptor) Subtype() transactionrecord.Subtype {
	return d.subtype
}

// Name - subtype name
func (d *Descriptor) Name() string {
	return d.subtype.String()
}

// LedgerEvent - the event written to the ledger for this subtype
func (d *Descriptor) LedgerEvent() ledger.Event {
	return d.event
}

// CanHaveRecipient - whether a recipient account is permitted
func (d *Descriptor) CanHaveRecipient() bool {
	return d.canHaveRecipient
}

// IsPhasingSafe - whether the subtype may be executed after a phasing delay
func (d *Descriptor) IsPhasingSafe() bool {
	return d.phasingSafe
}

// IsGlobal - whether the subtype affects state shared by all chains
func (d *Descriptor) IsGlobal() bool {
	return d.global
}

// BaselineFee - minimum fee in the smallest coin unit
func (d *Descriptor) BaselineFee(tx *transactionrecord.Transaction) int64 {
	if nil == d.fee {
		return DefaultFee
	}
	return d.fee(tx)
}

// AssetId - the asset a transaction concerns
//
// false for subtypes without a single asset
func (d *Descriptor) AssetId(tx *transactionrecord.Transaction) (uint64, bool) {
	if nil == d.assetId {
		return 0, false
	}
	return d.assetId(tx), true
}

// ParseBinary - decode a packed attachment of this subtype
func (d *Descriptor) ParseBinary(record []byte) (transactionrecord.Attachment, error) {
	return transactionrecord.Packed(record).Unpack(d.subtype)
}

// ParseJSON - decode the API form of an attachment of this subtype
func (d *Descriptor) ParseJSON(data []byte) (transactionrecord.Attachment, error) {
	return transactionrecord.ParseJSON(d.subtype, data)
}

// Validate - check a transaction against current state
//
// reads state only; the envelope rules owned here are checked first,
// then the attachment, then the uniqueness of the transaction id
func (d *Descriptor) Validate(env *Environment, tx *transactionrecord.Transaction) error {
	err := d.check(tx)
	if nil != err {
		return err
	}
	if tx.ChainId != env.Chain.Id {
		return fault.Detail(fault.ErrWrongChain, "chain: %d  expected: %d", tx.ChainId, env.Chain.Id)
	}
	if 0 != tx.Recipient && !d.canHaveRecipient {
		return fault.Detail(fault.ErrInvalidRecipient, "%s", d.subtype)
	}
	if 0 == tx.Recipient && d.canHaveRecipient {
		return fault.Detail(fault.ErrMissingRecipient, "%s", d.subtype)
	}
	err = d.validateAttachment(env, tx)
	if nil != err {
		return err
	}
	if nil != d.validateId {
		return d.validateId(env, tx)
	}
	return nil
}

// ApplyUnconfirmed - reserve the sender's balances
//
// false if the unconfirmed balance cannot cover the reservation, in
// which case nothing has changed
func (d *Descriptor) ApplyUnconfirmed(env *Environment, tx *transactionrecord.Transaction) bool {
	if nil != d.check(tx) {
		return false
	}
	ok, err := d.applyUnconfirmed(env, tx)
	if nil != err {
		env.Log().Warnf("%s: tx: %d  reserve error: %s", d.subtype, tx.Id, err)
		return false
	}
	return ok
}

// Apply - settle a transaction at block application
//
// an error here means the ledger no longer matches the checks that
// accepted the transaction
func (d *Descriptor) Apply(env *Environment, tx *transactionrecord.Transaction) error {
	err := d.check(tx)
	if nil != err {
		return err
	}
	err = d.apply(env, tx)
	if nil != err {
		env.Log().Criticalf("%s: tx: %d  apply error: %s", d.subtype, tx.Id, err)
	}
	return err
}

// UndoUnconfirmed - release a reservation made by ApplyUnconfirmed
func (d *Descriptor) UndoUnconfirmed(env *Environment, tx *transactionrecord.Transaction) error {
	err := d.check(tx)
	if nil != err {
		return err
	}
	if nil == d.undoUnconfirmed {
		return nil
	}
	return d.undoUnconfirmed(env, tx)
}

// IsDuplicate - conflicts with a transaction already seen in the
// same pool or block
func (d *Descriptor) IsDuplicate(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
	if nil == d.duplicate {
		return false
	}
	return d.duplicate(tx, duplicates)
}

// IsBlockDuplicate - conflicts with another transaction of the same block
func (d *Descriptor) IsBlockDuplicate(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
	if nil == d.blockDuplicate {
		return false
	}
	return d.blockDuplicate(tx, duplicates)
}

// IsUnconfirmedDuplicate - conflicts with another pending transaction
func (d *Descriptor) IsUnconfirmedDuplicate(tx *transactionrecord.Transaction, duplicates Duplicates) bool {
	if nil == d.unconfirmedDuplicate {
		return false
	}
	return d.unconfirmedDuplicate(tx, duplicates)
}

// the attachment must match the descriptor
func (d *Descriptor) check(tx *transactionrecord.Transaction) error {
	if tx.Subtype != d.subtype || nil == tx.Attachment || tx.Attachment.Subtype() != d.subtype {
		return fault.Detail(fault.ErrWrongTransactionType, "expected: %s", d.subtype)
	}
	return nil
}

// eventId - the ledger event id of a transaction
func eventId(tx *transactionrecord.Transaction) ledger.EventId {
	return ledger.EventId{
		TransactionId: tx.Id,
		FullHash:      tx.FullHash,
		ChainId:       tx.ChainId,
	}
}
