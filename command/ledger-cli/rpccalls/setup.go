// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC client for the ledgerd daemon
//
// all mutating calls sign their packed argument record locally; the
// daemon never sees a private key
package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"golang.org/x/crypto/ed25519"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/fault"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a ledgerd
func NewClient(testnet bool, connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the ledgerd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign a packed argument record, refusing a key from the wrong network
func (client *Client) sign(key *account.PrivateKey, message []byte) (account.Signature, error) {
	if key.IsTesting() != client.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return ed25519.Sign(key.PrivateKeyBytes(), message), nil
}
