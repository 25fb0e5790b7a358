// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/exchanged/fault"
)

// ParseJSON - decode the API form of an attachment
//
// unsigned 64 bit values are decimal strings; unknown fields are
// rejected so misspelt parameters do not silently default to zero
func ParseJSON(subtype Subtype, data []byte) (Attachment, error) {
	result := newAttachment(subtype)
	if nil == result {
		return nil, fault.ErrInvalidSubtype
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(result)
	if nil != err {
		return nil, fault.Detail(fault.ErrInvalidAttachment, "%s: %s", subtype, err)
	}

	if d, ok := result.(*DividendPayment); ok {
		if !d.HoldingType.Valid() {
			return nil, fault.ErrInvalidHoldingType
		}
	}
	return result, nil
}
