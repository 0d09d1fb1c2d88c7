// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"

	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/command/ledger-cli/rpccalls"
	"github.com/countinghouse/ledgerd/fault"
	"golang.org/x/crypto/ed25519"
)

// fetch the context metadata set up by app.Before
func checkMetadata(c *cli.Context) (*metadata, error) {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return nil, fault.InvalidStructure
	}
	return m, nil
}

// open an RPC connection to the first configured daemon
func connect(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrRequiredConnect
	}
	return rpccalls.NewClient(m.testnet, m.config.Connections[0], m.verbose, m.e)
}

// create a new random private key for the given network
func makePrivateKey(testnet bool) (*account.PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}

	privateKey := &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       testnet,
			PrivateKey: priv,
		},
	}
	return privateKey, nil
}
