// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const configurationData = `
local M = {}

M.data_directory = "."
M.network = "local"

M.client_rpc = {
    maximum_connections = 20,
    listen = {
        "127.0.0.1:2230",
    },
}

M.clock = {
    interval = "5m",
}

M.funds = {
    {
        account = "eZpSzishBGJpKdTHCjyAyQEcVjmDqBYMJEWQknwTQmxUWqnTpU",
        amount = 50000,
    },
}

return M
`

// write a configuration file into a scratch directory
func writeConfiguration(t *testing.T, data string) (string, func()) {
	dir, err := ioutil.TempDir("", "ledgerd-configuration")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	fileName := filepath.Join(dir, "ledgerd.conf")
	err = ioutil.WriteFile(fileName, []byte(data), 0600)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, teardown := writeConfiguration(t, configurationData)
	defer teardown()

	dir := filepath.Dir(fileName)

	options, err := getConfiguration(fileName)
	assert.NoError(t, err, "configuration error")

	assert.Equal(t, "local", options.Network, "wrong network")

	// local network picks the local database default
	assert.Equal(t, filepath.Join(dir, "data", "local"), options.Database.Name, "wrong database name")

	assert.Equal(t, uint64(20), options.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, []string{"127.0.0.1:2230"}, options.ClientRPC.Listen, "wrong listen list")

	// relative file names are anchored to the data directory
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate path")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.ClientRPC.PrivateKey, "wrong key path")
	assert.Equal(t, filepath.Join(dir, "broadcast.public"), options.Publishing.PublicKey, "wrong broadcast public key")

	assert.Equal(t, "5m", options.Clock.Interval, "wrong clock interval")

	// spool and log directories are created
	assert.Equal(t, filepath.Join(dir, "spool"), options.Spool.Directory, "wrong spool directory")
	assert.DirExists(t, options.Spool.Directory, "missing spool directory")
	assert.DirExists(t, options.Logging.Directory, "missing log directory")

	assert.Equal(t, 1, len(options.Funds), "wrong allocation count")
	assert.Equal(t, uint64(50000), options.Funds[0].Amount, "wrong allocation amount")
}

func TestGetConfigurationWhenBadNetwork(t *testing.T) {
	fileName, teardown := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.network = "mainnet"
return M
`)
	defer teardown()

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "unexpected success")
}

func TestGetConfigurationWhenMissingDataDirectory(t *testing.T) {
	fileName, teardown := writeConfiguration(t, `
local M = {}
M.network = "local"
return M
`)
	defer teardown()

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "unexpected success")
}

func TestGetConfigurationWhenDatabaseNameIsPath(t *testing.T) {
	fileName, teardown := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.network = "local"
M.database = { name = "sub/dir/name" }
return M
`)
	defer teardown()

	_, err := getConfiguration(fileName)
	assert.Error(t, err, "unexpected success")
}
