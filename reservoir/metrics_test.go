// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/exchanged/fault"
)

func TestRejectReason(t *testing.T) {
	assert.Equal(t, reasonNotCurrentlyValid, rejectReason(fault.Detail(fault.ErrAssetNotFound, "asset: 1")))
	assert.Equal(t, reasonInvalid, rejectReason(fault.ErrInvalidPrice))
	assert.Equal(t, reasonInvalid, rejectReason(fault.ErrRecordTruncated))
}

func TestRejectedCounter(t *testing.T) {
	c := rejectedCounter.WithLabelValues("AssetTransfer", reasonBalance)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
