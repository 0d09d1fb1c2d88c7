// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// re-encrypt the private key of an identity with a new password
func runChangePassword(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	identity, err := m.config.Identity(name)
	if nil != err {
		return err
	}

	private, err := getPrivateKey(m, c.GlobalString("password"), name)
	if nil != err {
		return err
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	description := identity.Description
	delete(m.config.Identities, name)

	err = m.config.AddIdentity(name, description, private.String(), newPassword)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}
