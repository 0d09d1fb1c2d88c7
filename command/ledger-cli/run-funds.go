// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/command/ledger-cli/rpccalls"
)

// display the spendable value and locks of a holder
func runFunds(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	owner, err := checkOwner(m.config, c.String("owner"), m.config.DefaultIdentity)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetFunds(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// credit value to the current identity, testing networks only
func runDeposit(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredPositiveAmount
	}

	private, err := getPrivateKey(m, c.GlobalString("password"), c.GlobalString("identity"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Deposit(&rpccalls.DepositData{
		Holder: private,
		Amount: amount,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
