// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// show the account string of an identity
func runAccount(c *cli.Context) error {

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

	out := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Account     string `json:"account"`
	}{
		Name:        name,
		Description: identity.Description,
		Account:     identity.Account,
	}
	return printJson(m.w, out)
}
