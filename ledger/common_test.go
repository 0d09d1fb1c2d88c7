// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/countinghouse/ledgerd/fixtures"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/storage"
)

// test database file
const (
	databaseFileName = "ledger-test"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-ledger.leveldb")
	os.RemoveAll(databaseFileName + "-funds.leveldb")
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	fixtures.SetupTestLogger()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = ledger.Initialise(ledger.Handles{
		Balances:     storage.Pool.Balances,
		GlobalLedger: storage.Pool.GlobalLedger,
		Postings:     storage.Pool.Postings,
		Touched:      storage.Pool.Touched,
		Counters:     storage.Pool.Counters,
	})
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = ledger.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
	removeFiles()
}
