// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/exchanged/fault"
)

// rejection reasons
const (
	reasonBalance           = "balance"
	reasonDuplicate         = "duplicate"
	reasonExpired           = "expired"
	reasonFull              = "full"
	reasonInvalid           = "invalid"
	reasonNotCurrentlyValid = "not_currently_valid"
	reasonRateLimited       = "rate_limited"
)

var (
	acceptedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exchanged",
		Subsystem: "reservoir",
		Name:      "accepted_total",
		Help:      "transactions reserved in the pool",
	}, []string{"subtype"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exchanged",
		Subsystem: "reservoir",
		Name:      "rejected_total",
		Help:      "transactions refused by the pool",
	}, []string{"subtype", "reason"})

	appliedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exchanged",
		Subsystem: "reservoir",
		Name:      "applied_total",
		Help:      "transactions settled in a block",
	}, []string{"subtype"})

	expiredCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exchanged",
		Subsystem: "reservoir",
		Name:      "expired_total",
		Help:      "pending transactions evicted",
	}, []string{"subtype"})

	pendingGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exchanged",
		Subsystem: "reservoir",
		Name:      "pending",
		Help:      "transactions currently in the pool",
	})
)

func init() {
	prometheus.MustRegister(acceptedCounter, rejectedCounter, appliedCounter, expiredCounter, pendingGauge)
}

func rejectReason(err error) string {
	if fault.IsErrNotCurrentlyValid(err) {
		return reasonNotCurrentlyValid
	}
	return reasonInvalid
}
