// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock_test

import (
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

// a long interval so the ticker never fires during a test
const quietInterval = time.Minute

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T, networkName string) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)

	err := mode.Initialise(networkName)
	if nil != err {
		t.Fatalf("mode initialise error: %s", err)
	}

	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = clock.Initialise(quietInterval)
	if nil != err {
		t.Fatalf("clock initialise error: %s", err)
	}
}

func teardown() {
	_ = clock.Finalise()
	storage.Finalise()
	_ = mode.Finalise()
	removeFiles()
}

func TestAdvance(t *testing.T) {
	setup(t, "local")
	defer teardown()

	start := clock.Current()
	seedBefore := clock.Seed()

	period, err := clock.Advance(5)
	assert.Equal(t, nil, err, "advance failed")
	assert.Equal(t, start+5, period, "wrong period after advance")
	assert.Equal(t, period, clock.Current(), "current does not match advance result")
	assert.NotEqual(t, seedBefore, clock.Seed(), "seed did not change")

	// the advanced state must survive a restart
	seedAfter := clock.Seed()
	_ = clock.Finalise()
	err = clock.Initialise(quietInterval)
	assert.Equal(t, nil, err, "reinitialise failed")

	assert.Equal(t, period, clock.Current(), "period lost on restart")
	assert.Equal(t, seedAfter, clock.Seed(), "seed lost on restart")
}

func TestAdvanceZero(t *testing.T) {
	setup(t, "local")
	defer teardown()

	start := clock.Current()
	period, err := clock.Advance(0)
	assert.Equal(t, nil, err, "advance zero failed")
	assert.Equal(t, start, period, "advance zero moved the clock")
}

func TestAdvanceRefusedOnLive(t *testing.T) {
	setup(t, "live")
	defer teardown()

	start := clock.Current()
	_, err := clock.Advance(1)
	assert.Equal(t, fault.ClockNotAdjustable, err, "advance allowed on live network")
	assert.Equal(t, start, clock.Current(), "period moved on refused advance")
}

func TestNextExtrinsic(t *testing.T) {
	setup(t, "local")
	defer teardown()

	assert.Equal(t, uint64(0), clock.NextExtrinsic(), "first extrinsic not zero")
	assert.Equal(t, uint64(1), clock.NextExtrinsic(), "second extrinsic wrong")
	assert.Equal(t, uint64(2), clock.NextExtrinsic(), "third extrinsic wrong")

	_, err := clock.Advance(1)
	assert.Equal(t, nil, err, "advance failed")

	assert.Equal(t, uint64(0), clock.NextExtrinsic(), "extrinsic not reset on new period")
}

func TestSeedStableWithinPeriod(t *testing.T) {
	setup(t, "local")
	defer teardown()

	assert.Equal(t, clock.Seed(), clock.Seed(), "seed changed without advance")
}

func TestTimestamp(t *testing.T) {
	first := clock.Timestamp()
	time.Sleep(2 * time.Millisecond)
	second := clock.Timestamp()

	assert.Equal(t, true, first > 0, "timestamp not positive")
	assert.Equal(t, true, second > first, "timestamp not increasing")
}
