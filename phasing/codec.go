// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package phasing

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/bitmark-inc/exchanged/account"
	"github.com/bitmark-inc/exchanged/constants"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/merkle"
	"github.com/bitmark-inc/exchanged/util"
)

// AppendBinary - write the parameter block
func (p *Params) AppendBinary(w util.WireWriter) util.WireWriter {
	w = w.Byte(byte(p.VotingModel)).
		Int64(p.Quorum).
		Int64(p.MinBalance).
		Byte(byte(len(p.Whitelist)))
	for _, a := range p.Whitelist {
		w = w.Uint64(uint64(a))
	}
	w = w.Uint64(p.HoldingId).
		Byte(byte(p.MinBalanceModel)).
		Byte(byte(len(p.LinkedFullHashes)))
	for _, h := range p.LinkedFullHashes {
		w = w.Raw(h[:])
	}
	return w.Byte(byte(len(p.HashedSecret))).
		Raw(p.HashedSecret).
		Byte(p.Algorithm)
}

// maximum linked transactions accepted by the decoder
const maxLinkedFullHashes = 10

// ReadBinary - read a parameter block
func ReadBinary(r *util.WireReader) (*Params, error) {
	p := &Params{
		VotingModel: VotingModel(int8(r.Byte())),
		Quorum:      r.Int64(),
		MinBalance:  r.Int64(),
	}
	n := int(r.Byte())
	if n > constants.MaxPhasingWhitelistSize {
		return nil, fault.Detail(fault.ErrInvalidPhasingParameters, "whitelist size: %d", n)
	}
	if n > 0 {
		p.Whitelist = make([]account.Id, n)
		for i := range p.Whitelist {
			p.Whitelist[i] = account.Id(r.Uint64())
		}
	}
	p.HoldingId = r.Uint64()
	p.MinBalanceModel = MinBalanceModel(r.Byte())

	n = int(r.Byte())
	if n > maxLinkedFullHashes {
		return nil, fault.Detail(fault.ErrInvalidPhasingParameters, "linked transactions: %d", n)
	}
	if n > 0 {
		p.LinkedFullHashes = make([]merkle.Digest, n)
		for i := range p.LinkedFullHashes {
			copy(p.LinkedFullHashes[i][:], r.Raw(merkle.DigestLength))
		}
	}
	n = int(r.Byte())
	if n > 0 {
		p.HashedSecret = r.Raw(n)
	}
	p.Algorithm = r.Byte()

	if nil != r.Err() {
		return nil, r.Err()
	}
	return p, nil
}

// JSON form as used by the API
type paramsJSON struct {
	VotingModel      int8            `json:"phasingVotingModel"`
	Quorum           string          `json:"phasingQuorum,omitempty"`
	MinBalance       string          `json:"phasingMinBalance,omitempty"`
	Whitelist        []account.Id    `json:"phasingWhitelist,omitempty"`
	HoldingId        string          `json:"phasingHolding,omitempty"`
	MinBalanceModel  byte            `json:"phasingMinBalanceModel"`
	LinkedFullHashes []merkle.Digest `json:"phasingLinkedFullHashes,omitempty"`
	HashedSecret     string          `json:"phasingHashedSecret,omitempty"`
	Algorithm        byte            `json:"phasingHashedSecretAlgorithm,omitempty"`
}

// MarshalJSON - API form; numbers as decimal strings
func (p Params) MarshalJSON() ([]byte, error) {
	j := paramsJSON{
		VotingModel:      int8(p.VotingModel),
		Whitelist:        p.Whitelist,
		MinBalanceModel:  byte(p.MinBalanceModel),
		LinkedFullHashes: p.LinkedFullHashes,
		Algorithm:        p.Algorithm,
	}
	if 0 != p.Quorum {
		j.Quorum = strconv.FormatInt(p.Quorum, 10)
	}
	if 0 != p.MinBalance {
		j.MinBalance = strconv.FormatInt(p.MinBalance, 10)
	}
	if 0 != p.HoldingId {
		j.HoldingId = strconv.FormatUint(p.HoldingId, 10)
	}
	if 0 != len(p.HashedSecret) {
		j.HashedSecret = hex.EncodeToString(p.HashedSecret)
	}
	return json.Marshal(j)
}

// UnmarshalJSON - API form
func (p *Params) UnmarshalJSON(data []byte) error {
	j := paramsJSON{}
	err := json.Unmarshal(data, &j)
	if nil != err {
		return err
	}

	result := Params{
		VotingModel:      VotingModel(j.VotingModel),
		Whitelist:        j.Whitelist,
		MinBalanceModel:  MinBalanceModel(j.MinBalanceModel),
		LinkedFullHashes: j.LinkedFullHashes,
		Algorithm:        j.Algorithm,
	}
	if "" != j.Quorum {
		result.Quorum, err = strconv.ParseInt(j.Quorum, 10, 64)
		if nil != err {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "quorum: %q", j.Quorum)
		}
	}
	if "" != j.MinBalance {
		result.MinBalance, err = strconv.ParseInt(j.MinBalance, 10, 64)
		if nil != err {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "min balance: %q", j.MinBalance)
		}
	}
	if "" != j.HoldingId {
		result.HoldingId, err = strconv.ParseUint(j.HoldingId, 10, 64)
		if nil != err {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "holding: %q", j.HoldingId)
		}
	}
	if "" != j.HashedSecret {
		result.HashedSecret, err = hex.DecodeString(j.HashedSecret)
		if nil != err {
			return fault.Detail(fault.ErrInvalidPhasingParameters, "hashed secret: %q", j.HashedSecret)
		}
	}
	*p = result
	return nil
}
