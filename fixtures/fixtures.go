// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
//
// test logger directory and a set of deterministic test parties used
// by the ledger, escrow and rpc tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic test parties
var (
	Alice    *account.Account
	AliceKey *account.PrivateKey
	Bob      *account.Account
	BobKey   *account.PrivateKey
	Carol    *account.Account
	CarolKey *account.PrivateKey
)

func init() {
	Alice, AliceKey = makeParty(0x11)
	Bob, BobKey = makeParty(0x22)
	Carol, CarolKey = makeParty(0x33)
}

// derive a test-network key pair from a repeated seed byte
func makeParty(seedByte byte) (*account.Account, *account.PrivateKey) {
	seed := bytes.Repeat([]byte{seedByte}, ed25519.SeedSize)
	pub, priv, err := ed25519.GenerateKey(bytes.NewReader(seed))
	if nil != err {
		panic(fmt.Sprintf("fixtures: cannot generate key: %s", err))
	}
	a := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: pub,
		},
	}
	k := &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       true,
			PrivateKey: priv,
		},
	}
	return a, k
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
