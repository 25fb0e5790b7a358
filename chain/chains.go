// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all networks
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a network name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// ChildChain - parameters of one of the parallel ledgers
//
// Decimals are the implied decimals of the chain's native coin
type ChildChain struct {
	Id       uint64 `json:"id"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
}

// the known child chains
var (
	Ignis = &ChildChain{
		Id:       2,
		Name:     "IGNIS",
		Decimals: 8,
	}
	Aeur = &ChildChain{
		Id:       3,
		Name:     "AEUR",
		Decimals: 4,
	}
)

var childChains = map[uint64]*ChildChain{
	Ignis.Id: Ignis,
	Aeur.Id:  Aeur,
}

// ChildChainById - look up a chain, nil if unknown
func ChildChainById(id uint64) *ChildChain {
	return childChains[id]
}

// ChildChainByName - look up a chain by its name, nil if unknown
func ChildChainByName(name string) *ChildChain {
	for _, c := range childChains {
		if c.Name == name {
			return c
		}
	}
	return nil
}
