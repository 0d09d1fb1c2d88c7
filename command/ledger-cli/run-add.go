// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/fault"
)

// add an identity to the configuration
//
// with --account the identity is receive only and has no private key;
// otherwise a key is either supplied with --key or freshly generated
func runAdd(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	privateKeyStr := c.String("key")
	accountStr := c.String("account")

	if "" != accountStr && "" != privateKeyStr {
		return fault.IncompatibleOptions
	}

	// receive-only identity, account but no private key
	if "" != accountStr {
		acc, err := account.AccountFromBase58(accountStr)
		if nil != err {
			return err
		}
		err = m.config.AddReceiveOnlyIdentity(name, description, acc.String())
		if nil != err {
			return err
		}
		m.save = true
		return nil
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

	err = m.config.AddIdentity(name, description, privateKeyStr, password)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}
