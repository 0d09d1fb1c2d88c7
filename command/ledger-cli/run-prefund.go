// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/command/ledger-cli/rpccalls"
)

// lock funds against a beneficiary under a freshly derived reference
func runPrefund(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	beneficiary, err := checkRecipient(m.config, c.String("receiver"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredPositiveAmount
	}

	deadline := c.Uint64("deadline")

	// a random nonce keeps repeat prefundings on identical terms
	// distinct in the signed record
	buffer := make([]byte, 8)
	if _, err := rand.Read(buffer); nil != err {
		return err
	}
	nonce := binary.BigEndian.Uint64(buffer)

	private, err := getPrivateKey(m, c.GlobalString("password"), c.GlobalString("identity"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreatePrefund(&rpccalls.PrefundData{
		Owner:       private,
		Beneficiary: beneficiary,
		Amount:      amount,
		Deadline:    deadline,
		Nonce:       nonce,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// post the invoice pair of legs against a prefunded reference
func runInvoice(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	payer, err := checkRecipient(m.config, c.String("payer"))
	if nil != err {
		return err
	}

	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	reference, err := checkReference(c.String("reference"))
	if nil != err {
		return err
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

	response, err := client.Invoice(&rpccalls.InvoiceData{
		Seller:    private,
		Payer:     payer,
		Amount:    amount,
		Reference: reference,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// settle an invoiced reference as the payer
func runSettle(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	reference, err := checkReference(c.String("reference"))
	if nil != err {
		return err
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

	response, err := client.Settle(&rpccalls.SettleData{
		Payer:     private,
		Reference: reference,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// signal release, or keep the hold, on a reference
func runRelease(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	reference, err := checkReference(c.String("reference"))
	if nil != err {
		return err
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

	response, err := client.Release(&rpccalls.ReleaseData{
		Signer:    private,
		Hold:      c.Bool("hold"),
		Reference: reference,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// cancel a reference and return its locked funds
func runCancel(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	reference, err := checkReference(c.String("reference"))
	if nil != err {
		return err
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

	response, err := client.Cancel(&rpccalls.CancelData{
		Owner:     private,
		Reference: reference,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// display the status record of a reference
func runStatus(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	reference, err := checkReference(c.String("reference"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetStatus(reference)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// display the references an owner has in play
func runList(c *cli.Context) error {

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

	response, err := client.GetList(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
