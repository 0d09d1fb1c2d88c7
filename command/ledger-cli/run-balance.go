// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/command/ledger-cli/rpccalls"
)

// display the posted balance of one holder on one account code
func runBalance(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	owner, err := checkOwner(m.config, c.String("owner"), m.config.DefaultIdentity)
	if nil != err {
		return err
	}

	code, err := checkAccountCode(c.String("code"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(&rpccalls.BalanceData{
		Holder: owner,
		Code:   code,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// display the network wide aggregate of one account code
func runGlobals(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	code, err := checkAccountCode(c.String("code"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetGlobalBalance(code)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
