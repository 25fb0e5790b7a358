// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotCurrentlyValidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrArithmeticOverflow         = InvalidError("arithmetic overflow")
	ErrAssetAlreadyExists         = NotCurrentlyValidError("asset already exists")
	ErrAssetDeleted               = NotCurrentlyValidError("asset has been deleted")
	ErrAssetNotFound              = NotCurrentlyValidError("asset does not exist")
	ErrAssetQuantityExceeded      = NotCurrentlyValidError("quantity exceeds asset supply")
	ErrCannotDecodeAccount        = InvalidError("cannot decode account")
	ErrCurrencyNotActive          = NotCurrentlyValidError("currency is not active")
	ErrCurrencyNotFound           = NotCurrentlyValidError("currency does not exist")
	ErrDatabaseIsNotSet           = ProcessError("database is not set")
	ErrDatabaseTransactionClosed  = ProcessError("database transaction already closed")
	ErrDatabaseTransactionInUse   = ProcessError("database transaction already in use")
	ErrDividendHeightTooHigh      = NotCurrentlyValidError("dividend height exceeds current height")
	ErrDividendHeightTooLow       = NotCurrentlyValidError("dividend height is too far in the past")
	ErrDividendIntervalNotElapsed = NotCurrentlyValidError("minimum dividend payment interval has not elapsed")
	ErrDuplicateTransaction       = ExistsError("duplicate transaction")
	ErrHoldingIdMismatch          = InvalidError("holding id does not match chain")
	ErrIncreaseNotAllowed         = NotCurrentlyValidError("quantity increase not allowed")
	ErrInsufficientBalance        = ProcessError("insufficient unconfirmed balance")
	ErrInsufficientAssetOwnership = NotCurrentlyValidError("asset issuer must own all asset units")
	ErrInvalidAmount              = InvalidError("invalid amount")
	ErrInvalidAssetId             = InvalidError("invalid asset identifier")
	ErrInvalidAssetName           = InvalidError("invalid asset name")
	ErrInvalidAttachment          = InvalidError("invalid attachment")
	ErrInvalidAttachmentVersion   = InvalidError("invalid attachment version")
	ErrInvalidChain               = InvalidError("invalid chain")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidCursor              = InvalidError("invalid cursor")
	ErrInvalidDecimals            = InvalidError("invalid decimals")
	ErrInvalidDescription         = InvalidError("invalid asset description")
	ErrInvalidHoldingType         = InvalidError("invalid holding type")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidOrderSender         = InvalidError("order was created by a different account")
	ErrInvalidPhasingParameters   = InvalidError("invalid phasing parameters")
	ErrInvalidPrice               = InvalidError("invalid price")
	ErrInvalidQuantity            = InvalidError("invalid quantity")
	ErrInvalidRecipient           = InvalidError("transaction type cannot have a recipient")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidSubtype             = InvalidError("invalid transaction subtype")
	ErrInvalidVotingModel         = InvalidError("invalid voting model")
	ErrMissingRecipient           = InvalidError("transaction requires a recipient")
	ErrNotAssetOwner              = InvalidError("sender is not the asset owner")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrNotTransactionPack         = RecordError("not transaction pack")
	ErrOrderHasNoValue            = InvalidError("order has no value")
	ErrOrderAlreadyExists         = NotCurrentlyValidError("order already exists")
	ErrOrderNotFound              = NotCurrentlyValidError("order does not exist")
	ErrPhasingControlNotEnabled   = NotCurrentlyValidError("phasing asset control is not enabled")
	ErrRateLimited                = ProcessError("rate limited")
	ErrRecordTooLong              = LengthError("record too long")
	ErrRecordTruncated            = LengthError("record truncated")
	ErrTransactionExpired         = ProcessError("transaction has expired")
	ErrTransactionNotFound        = NotFoundError("transaction not found")
	ErrWrongChain                 = InvalidError("transaction is for a different chain")
	ErrWrongTransactionType       = InvalidError("attachment does not match transaction type")
	ErrZeroAmountTransfer         = InvalidError("asset transfer cannot carry a coin amount")
	ErrUnsupportedDatabaseVersion = ProcessError("unsupported database version")
	ErrUnexpectedRecordLength     = RecordError("unexpected record length")
	ErrNameTooLong                = LengthError("name too long")
	ErrDescriptionTooLong         = LengthError("description too long")
	ErrPoolNotEnabled             = ProcessError("pool is not enabled")
	ErrHeightOutOfRange           = InvalidError("height out of range")
	ErrInvalidPublicKey           = InvalidError("invalid public key")
	ErrMissingConfiguration       = NotFoundError("missing configuration")
	ErrAccountNotFound            = NotFoundError("account not found")
	ErrTooManyItemsToProcess      = LengthError("too many items to process")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string            { return string(e) }
func (e InvalidError) Error() string           { return string(e) }
func (e LengthError) Error() string            { return string(e) }
func (e NotCurrentlyValidError) Error() string { return string(e) }
func (e NotFoundError) Error() string          { return string(e) }
func (e ProcessError) Error() string           { return string(e) }
func (e RecordError) Error() string            { return string(e) }

// DetailError - a class error with a diagnostic message attached
type DetailError struct {
	Err     error
	Message string
}

func (e *DetailError) Error() string {
	return e.Err.Error() + ": " + e.Message
}

// Unwrap - expose the underlying class error
func (e *DetailError) Unwrap() error {
	return e.Err
}

// Detail - attach a diagnostic to one of the error instances above
func Detail(err error, format string, arguments ...interface{}) error {
	return &DetailError{
		Err:     err,
		Message: fmt.Sprintf(format, arguments...),
	}
}

// determine the class of an error
func IsErrExists(e error) bool            { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool           { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool            { var x LengthError; return errors.As(e, &x) }
func IsErrNotCurrentlyValid(e error) bool { var x NotCurrentlyValidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool          { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool           { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool            { var x RecordError; return errors.As(e, &x) }

// IsValidationError - true for either validation class
//
// length and record errors come from decoding and are permanent
func IsValidationError(e error) bool {
	return IsErrInvalid(e) || IsErrNotCurrentlyValid(e) || IsErrLength(e) || IsErrRecord(e)
}
