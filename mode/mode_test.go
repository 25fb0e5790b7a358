// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/exchanged/chain"
	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/exchanged/fixtures"
	"github.com/bitmark-inc/exchanged/mode"
)

func TestTestingNetwork(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(chain.Testing, chain.Ignis)
	require.NoError(t, err, "initialise")
	defer mode.Finalise()

	assert.True(t, mode.IsTesting(), "testing network not detected")
	assert.True(t, mode.Is(mode.Loading), "wrong initial mode")
	assert.False(t, mode.AcceptingTransactions(), "accepting while loading")
	assert.Equal(t, chain.Testing, mode.Network())
	assert.Equal(t, chain.Ignis, mode.ChildChain())

	mode.Set(mode.Normal)
	assert.True(t, mode.AcceptingTransactions(), "not accepting in normal mode")
	assert.Equal(t, "Normal", mode.String())

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid mode was not ignored")

	err = mode.Initialise(chain.Testing, chain.Ignis)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestInvalidNetwork(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise("nonsense", chain.Ignis)
	assert.Equal(t, fault.ErrInvalidChain, err, "invalid network accepted")

	err = mode.Initialise(chain.Local, nil)
	assert.Equal(t, fault.ErrInvalidChain, err, "missing child chain accepted")
}

func TestFinaliseUninitialised(t *testing.T) {
	assert.Equal(t, fault.ErrNotInitialised, mode.Finalise())
}
