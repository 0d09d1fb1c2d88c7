// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"os"
	"testing"
	"time"

	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/escrow"
	"github.com/countinghouse/ledgerd/fixtures"
	"github.com/countinghouse/ledgerd/funds"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/storage"
)

// test database file
const (
	databaseFileName = "escrow-test"
)

// a long interval so the ticker never fires during a test
const quietInterval = time.Minute

func removeFiles() {
	os.RemoveAll(databaseFileName + "-ledger.leveldb")
	os.RemoveAll(databaseFileName + "-funds.leveldb")
}

// bring up the full posting stack: storage, mode, clock, funds with
// genesis allocations, the ledger and finally the escrow engine
func setup(t *testing.T, allocations []funds.Allocation) {
	removeFiles()
	fixtures.SetupTestLogger()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = mode.Initialise("local")
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}
	mode.Set(mode.Normal)

	err = clock.Initialise(quietInterval)
	if nil != err {
		t.Fatalf("clock initialise error: %s", err)
	}

	err = funds.Initialise(funds.Handles{
		Balances: storage.Pool.FreeBalances,
		Locks:    storage.Pool.Locks,
		Counters: storage.Pool.Counters,
	}, allocations)
	if nil != err {
		t.Fatalf("funds initialise error: %s", err)
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

	err = escrow.Initialise(escrow.Handles{
		Prefunding:       storage.Pool.Prefunding,
		PrefundingOwners: storage.Pool.PrefundingOwners,
		OwnerRefs:        storage.Pool.OwnerRefs,
		ReferenceStatus:  storage.Pool.ReferenceStatus,
	}, funds.Get())
	if nil != err {
		t.Fatalf("escrow initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = escrow.Finalise()
	_ = ledger.Finalise()
	_ = funds.Finalise()
	_ = clock.Finalise()
	_ = mode.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
	removeFiles()
}
