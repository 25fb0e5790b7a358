// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package phasing - phasing parameters and asset control
//
// an asset under phasing control may only be moved by transactions
// that carry the control's approval parameters; voting itself is
// handled elsewhere, this package stores and validates parameters
package phasing

import (
	"strconv"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
)

// VotingModel - how approval votes are weighted
type VotingModel int8

// all voting models
const (
	VotingNone        VotingModel = -1
	VotingAccount     VotingModel = 0
	VotingCoin        VotingModel = 1
	VotingAsset       VotingModel = 2
	VotingCurrency    VotingModel = 3
	VotingTransaction VotingModel = 4
	VotingHash        VotingModel = 5
)

// String - model name
func (m VotingModel) String() string {
	switch m {
	case VotingNone:
		return "NONE"
	case VotingAccount:
		return "ACCOUNT"
	case VotingCoin:
		return "COIN"
	case VotingAsset:
		return "ASSET"
	case VotingCurrency:
		return "CURRENCY"
	case VotingTransaction:
		return "TRANSACTION"
	case VotingHash:
		return "HASH"
	default:
		return "MODEL(" + strconv.Itoa(int(m)) + ")"
	}
}

// Valid - true for a known model
func (m VotingModel) Valid() bool {
	return m >= VotingNone && m <= VotingHash
}

// MinBalanceModel - what a voter's minimum balance is measured in
type MinBalanceModel byte

// all minimum balance models
const (
	MinBalanceNone     MinBalanceModel = 0
	MinBalanceCoin     MinBalanceModel = 1
	MinBalanceAsset    MinBalanceModel = 2
	MinBalanceCurrency MinBalanceModel = 3
)

// Valid - true for a known model
func (m MinBalanceModel) Valid() bool {
	return m <= MinBalanceCurrency
}

// Params - phasing approval parameters
type Params struct {
	VotingModel      VotingModel
	Quorum           int64
	MinBalance       int64
	Whitelist        []account.Id
	HoldingId        uint64
	MinBalanceModel  MinBalanceModel
	LinkedFullHashes []merkle.Digest
	HashedSecret     []byte
	Algorithm        byte
}

// IsNone - parameters that clear control
func (p *Params) IsNone() bool {
	return VotingNone == p.VotingModel
}

// ValidateRestrictable - check parameters usable as a standing
// restriction such as asset control
func (p *Params) ValidateRestrictable() error {
	if !p.VotingModel.Valid() {
		return fault.ErrInvalidVotingModel
	}
	if !p.MinBalanceModel.Valid() {
		return fault.Detail(fault.ErrInvalidPhasingParameters, "min balance model: %d", p.MinBalanceModel)
	}
	if len(p.Whitelist) > constants.MaxPhasingWhitelistSize {
		return fault.Detail(fault.ErrInvalidPhasingParameters, "whitelist size: %d exceeds: %d", len(p.Whitelist), constants.MaxPhasingWhitelistSize)
	}
	seen := make(map[account.Id]struct{}, len(p.Whitelist))
	for _, a := range p.Whitelist {
		if 0 == a {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "zero account in whitelist")
		}
		if _, ok := seen[a]; ok {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "duplicate whitelist account: %d", a)
		}
		seen[a] = struct{}{}
	}
	if 0 != len(p.LinkedFullHashes) || 0 != len(p.HashedSecret) || 0 != p.Algorithm {
		return fault.Detail(fault.ErrInvalidPhasingParameters, "linked transactions and hashed secret are not allowed")
	}
	if p.MinBalance < 0 {
		return fault.Detail(fault.ErrInvalidPhasingParameters, "min balance: %d", p.MinBalance)
	}

	if p.IsNone() {
		if 0 != p.Quorum || 0 != p.MinBalance || 0 != len(p.Whitelist) || 0 != p.HoldingId || MinBalanceNone != p.MinBalanceModel {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "voting model NONE takes no parameters")
		}
		return nil
	}

	if p.Quorum <= 0 {
		return fault.Detail(fault.ErrInvalidPhasingParameters, "quorum: %d", p.Quorum)
	}
	if VotingAccount == p.VotingModel && 0 != len(p.Whitelist) && p.Quorum > int64(len(p.Whitelist)) {
		return fault.Detail(fault.ErrInvalidPhasingParameters, "quorum: %d exceeds whitelist size: %d", p.Quorum, len(p.Whitelist))
	}

	switch p.VotingModel {
	case VotingAsset, VotingCurrency:
		if 0 == p.HoldingId {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "voting model %s requires a holding", p.VotingModel)
		}
	}

	switch p.MinBalanceModel {
	case MinBalanceNone:
		if 0 != p.MinBalance {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "min balance without a min balance model")
		}
	case MinBalanceAsset, MinBalanceCurrency:
		if 0 == p.HoldingId {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "min balance model requires a holding")
		}
	}
	return nil
}
