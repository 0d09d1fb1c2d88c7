// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/countinghouse/ledgerd/command/ledger-cli/configuration"
)

func TestSaltMarshalling(t *testing.T) {
	salt, err := configuration.MakeSalt()
	assert.NoError(t, err, "make salt error")

	text, err := salt.MarshalText()
	assert.NoError(t, err, "marshal error")
	assert.Equal(t, 32, len(text), "wrong text length")

	recovered := new(configuration.Salt)
	err = recovered.UnmarshalText(text)
	assert.NoError(t, err, "unmarshal error")
	assert.Equal(t, salt.Bytes(), recovered.Bytes(), "salt does not round trip")
}

func TestSaltUnmarshalWhenWrongLength(t *testing.T) {
	salt := new(configuration.Salt)
	err := salt.UnmarshalText([]byte("0011"))
	assert.Error(t, err, "unexpected success")
}
