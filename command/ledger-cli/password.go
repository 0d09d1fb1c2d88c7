// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/fault"
)

const passwordConsole = "ledger-cli: "

// minimum acceptable password length for a new identity
const minimumPasswordLength = 8

// prompt for a new password, requiring a verification entry
func promptNewPassword() (string, error) {
	fmt.Print(passwordConsole + "set identity password (length >= 8): ")
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if nil != err {
		return "", err
	}

	passwordStr := string(password)
	if minimumPasswordLength > len(passwordStr) {
		return "", fault.InvalidPasswordLength
	}

	fmt.Print(passwordConsole + "verify password: ")
	verifyPassword, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if nil != err {
		return "", err
	}

	if passwordStr != string(verifyPassword) {
		return "", fault.PasswordMismatch
	}

	return passwordStr, nil
}

// prompt for the password of an existing identity
func promptPassword(name string) (string, error) {
	fmt.Printf(passwordConsole+"password for: %q: ", name)
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// obtain the decrypted private key of an identity, the password
// coming from the global flag or an interactive prompt
func getPrivateKey(m *metadata, password string, name string) (*account.PrivateKey, error) {
	if "" == name {
		name = m.config.DefaultIdentity
	}
	if "" == password {
		p, err := promptPassword(name)
		if nil != err {
			return nil, err
		}
		password = p
	}
	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	return private.PrivateKey, nil
}
