// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/command/ledger-cli/configuration"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
)

var (
	ErrRequiredAccountCode    = fault.InvalidError("account code is required")
	ErrRequiredConnect        = fault.InvalidError("connect is required")
	ErrRequiredDescription    = fault.InvalidError("description is required")
	ErrRequiredIdentity       = fault.InvalidError("identity is required")
	ErrRequiredPositiveAmount = fault.InvalidError("positive amount is required")
	ErrRequiredRecipient      = fault.InvalidError("recipient is required")
	ErrRequiredReference      = fault.InvalidError("reference is required")
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required and must be in the style: HOST:PORT
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	// parse the host and port, ensuring both are present
	s := strings.Split(connect, ":")
	if 2 > len(s) || "" == s[len(s)-1] {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// recipient is either an identity name in the configuration or a
// base58 account string
func checkRecipient(config *configuration.Configuration, recipient string) (*account.Account, error) {
	if "" == recipient {
		return nil, ErrRequiredRecipient
	}

	newOwner, err := config.Account(recipient)
	if nil != err {
		newOwner, err = account.AccountFromBase58(recipient)
		if nil != err {
			return nil, err
		}
	}
	return newOwner, nil
}

// the owner flag defaults to the current identity
func checkOwner(config *configuration.Configuration, owner string, fallback string) (*account.Account, error) {
	if "" == owner {
		owner = fallback
	}
	return checkRecipient(config, owner)
}

// account code is a decimal number within the chart of accounts range
func checkAccountCode(code string) (chart.Code, error) {
	if "" == code {
		return chart.Code(0), ErrRequiredAccountCode
	}
	var c chart.Code
	err := c.UnmarshalText([]byte(code))
	if nil != err {
		return chart.Code(0), err
	}
	return c, nil
}

// amount is a decimal number, only positive values are accepted
func checkAmount(amount string) (int128.Int128, error) {
	if "" == amount {
		return int128.Int128{}, ErrRequiredPositiveAmount
	}
	var a int128.Int128
	err := a.UnmarshalText([]byte(amount))
	if nil != err {
		return int128.Int128{}, err
	}
	if 0 >= a.Sign() {
		return int128.Int128{}, ErrRequiredPositiveAmount
	}
	return a, nil
}

// reference is the hex form of a correlation reference
func checkReference(reference string) (ledger.Reference, error) {
	if "" == reference {
		return ledger.Reference{}, ErrRequiredReference
	}
	var ref ledger.Reference
	err := ref.UnmarshalText([]byte(reference))
	if nil != err {
		return ledger.Reference{}, err
	}
	return ref, nil
}

// check if file exists, return true if the name is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
