// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/exchanged/configuration"
	"github.com/bitmark-inc/exchanged/fault"
)

type poolType struct {
	RateLimit float64 `gluamapper:"rate_limit"`
	RateBurst int     `gluamapper:"rate_burst"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Pool          poolType          `gluamapper:"pool"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testFile = `
local M = {}
M.data_directory = base .. "/data"
M.chain = "testing"
M.pool = {
    rate_limit = 12.5,
    rate_burst = 40,
}
M.levels = {
    reservoir = "debug",
    DEFAULT = "error",
}
return M
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "exchanged-config")
	require.Nil(t, err, "temp dir")
	name := filepath.Join(dir, "exchanged.conf")
	err = ioutil.WriteFile(name, []byte(text), 0600)
	require.Nil(t, err, "write")
	return name, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	name, cleanup := writeFile(t, testFile)
	defer cleanup()

	config := &testConfiguration{
		Chain: "bitmark",
		Pool:  poolType{RateBurst: 1},
	}
	err := configuration.ParseConfigurationFile(name, config, map[string]string{"base": "/srv"})
	require.Nil(t, err, "parse")

	assert.Equal(t, "/srv/data", config.DataDirectory)
	assert.Equal(t, "testing", config.Chain)
	assert.Equal(t, 12.5, config.Pool.RateLimit)
	assert.Equal(t, 40, config.Pool.RateBurst)
	assert.Equal(t, "debug", config.Levels["reservoir"])
	assert.Equal(t, "error", config.Levels["DEFAULT"])
}

func TestParseNotTable(t *testing.T) {
	name, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(name, &testConfiguration{}, nil)
	assert.True(t, fault.IsErrNotFound(err), "not a table: %v", err)
}

func TestParseBadPointer(t *testing.T) {
	err := configuration.ParseConfigurationFile("unused.conf", testConfiguration{}, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}

func TestParseLuaError(t *testing.T) {
	name, cleanup := writeFile(t, `return {`)
	defer cleanup()

	err := configuration.ParseConfigurationFile(name, &testConfiguration{}, nil)
	assert.NotNil(t, err, "syntax error")
}
