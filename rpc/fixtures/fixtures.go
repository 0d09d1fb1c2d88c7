// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"bytes"
	"crypto/ed25519"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"

	// LogCategory - logger name used inside the RPC tests
	LogCategory = "testing"
)

// deterministic signing keys for request records
var (
	IssuerPublicKey  ed25519.PublicKey
	IssuerPrivateKey ed25519.PrivateKey

	ReceiverPublicKey  ed25519.PublicKey
	ReceiverPrivateKey ed25519.PrivateKey
)

func init() {
	IssuerPublicKey, IssuerPrivateKey, _ = ed25519.GenerateKey(
		bytes.NewReader(bytes.Repeat([]byte{0x55}, 32)))
	ReceiverPublicKey, ReceiverPrivateKey, _ = ed25519.GenerateKey(
		bytes.NewReader(bytes.Repeat([]byte{0x66}, 32)))
}

// SetupTestLogger - create a logging environment for tests
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
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

// TeardownTestLogger - drop the logging environment
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// self-signed TLS material, generated once per test directory

// Certificate - PEM encoded test certificate
func Certificate(dir string) string {
	certificate, _ := tlsPair(dir)
	return certificate
}

// Key - PEM encoded test private key
func Key(dir string) string {
	_, key := tlsPair(dir)
	return key
}

func tlsPair(dir string) (string, string) {
	certificateFileName := path.Join(dir, "rpc-fixture.crt")
	keyFileName := path.Join(dir, "rpc-fixture.key")

	certificate, errC := ioutil.ReadFile(certificateFileName)
	key, errK := ioutil.ReadFile(keyFileName)
	if nil == errC && nil == errK {
		return string(certificate), string(key)
	}

	certificate, key, err := certgen.NewTLSCertPair(
		"fixture",
		time.Now().Add(365*24*time.Hour),
		false,
		nil,
	)
	if nil != err {
		logger.Panicf("fixture certificate error: %s", err)
	}
	_ = os.MkdirAll(dir, 0700)
	_ = ioutil.WriteFile(certificateFileName, certificate, 0644)
	_ = ioutil.WriteFile(keyFileName, key, 0600)
	return string(certificate), string(key)
}
