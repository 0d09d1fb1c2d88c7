// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// generate a key pair and print it, nothing is stored
func runGenerate(c *cli.Context) error {

	testnet := "live" != c.GlobalString("network")

	privateKey, err := makePrivateKey(testnet)
	if nil != err {
		return err
	}

	out := struct {
		Account    string `json:"account"`
		PrivateKey string `json:"private_key"`
	}{
		Account:    privateKey.Account().String(),
		PrivateKey: privateKey.String(),
	}
	return printJson(c.App.Writer, out)
}
