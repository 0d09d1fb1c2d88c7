// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/command/ledger-cli/configuration"
	"github.com/countinghouse/ledgerd/fault"
)

// deterministic test key
func testPrivateKey(t *testing.T) *account.PrivateKey {
	seed := bytes.Repeat([]byte{0x77}, ed25519.SeedSize)
	_, priv, err := ed25519.GenerateKey(bytes.NewReader(seed))
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	return &account.PrivateKey{
		PrivateKeyInterface: &account.ED25519PrivateKey{
			Test:       true,
			PrivateKey: priv,
		},
	}
}

func TestAddIdentityRoundTrip(t *testing.T) {
	key := testPrivateKey(t)

	config := &configuration.Configuration{
		DefaultIdentity: "alice",
		TestNet:         true,
		Connections:     []string{"127.0.0.1:2230"},
		Identities:      make(map[string]configuration.Identity),
	}

	err := config.AddIdentity("alice", "first party", key.String(), "test-password-1")
	assert.NoError(t, err, "add identity error")

	// public part is stored in clear
	acc, err := config.Account("alice")
	assert.NoError(t, err, "account error")
	assert.Equal(t, key.Account().String(), acc.String(), "wrong account")

	// correct password recovers the private key
	private, err := config.Private("test-password-1", "alice")
	assert.NoError(t, err, "decrypt error")
	assert.Equal(t, key.String(), private.PrivateKey.String(), "wrong private key")
	assert.Equal(t, "first party", private.Description, "wrong description")

	// wrong password is rejected
	_, err = config.Private("not-the-password", "alice")
	assert.Equal(t, fault.WrongPassword, err, "wrong error")
}

func TestAddIdentityWhenDuplicate(t *testing.T) {
	key := testPrivateKey(t)

	config := &configuration.Configuration{
		Identities: make(map[string]configuration.Identity),
	}

	err := config.AddIdentity("alice", "first", key.String(), "test-password-1")
	assert.NoError(t, err, "add identity error")

	err = config.AddIdentity("alice", "again", key.String(), "test-password-1")
	assert.Equal(t, fault.IdentityNameAlreadyExists, err, "wrong error")
}

func TestReceiveOnlyIdentity(t *testing.T) {
	key := testPrivateKey(t)

	config := &configuration.Configuration{
		Identities: make(map[string]configuration.Identity),
	}

	err := config.AddReceiveOnlyIdentity("bob", "payee", key.Account().String())
	assert.NoError(t, err, "add identity error")

	acc, err := config.Account("bob")
	assert.NoError(t, err, "account error")
	assert.Equal(t, key.Account().String(), acc.String(), "wrong account")

	// no private data stored
	_, err = config.Private("any-password", "bob")
	assert.Equal(t, fault.NotPrivateKey, err, "wrong error")
}

func TestIdentityWhenMissing(t *testing.T) {
	config := &configuration.Configuration{
		Identities: make(map[string]configuration.Identity),
	}

	_, err := config.Identity("nobody")
	assert.Equal(t, fault.IdentityNameNotFound, err, "wrong error")
}
