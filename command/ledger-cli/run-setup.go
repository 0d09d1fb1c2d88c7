// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/command/ledger-cli/configuration"
)

// create a fresh configuration and its first identity
func runSetup(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	// optional existing key
	privateKeyStr := c.String("key")

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	if "" == privateKeyStr {
		privateKey, err := makePrivateKey(m.testnet)
		if nil != err {
			return err
		}
		privateKeyStr = privateKey.String()
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	m.config = &configuration.Configuration{
		DefaultIdentity: name,
		TestNet:         m.testnet,
		Connections:     []string{connect},
		Identities:      map[string]configuration.Identity{},
	}

	err = m.config.AddIdentity(name, description, privateKeyStr, password)
	if nil != err {
		return err
	}

	// require configuration update
	m.save = true
	return nil
}
