// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - deterministic period clock
//
// The ledger stamps postings and measures deadlines in periods, not
// wall time.  A background ticker advances the period at a fixed
// interval and chains a per-period seed so that reference generation
// stays deterministic for replay.  The period and seed survive a
// restart through the Counters pool.
package clock

import (
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/background"
	"github.com/countinghouse/ledgerd/constants"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/storage"
)

// SeedSize - bytes in a period seed
const SeedSize = 32

// counter pool keys
const (
	periodCounter = "clock.period"
	seedCounter   = "clock.seed"
)

// globals for the period clock
type clockData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	period    uint64         // the current period number
	seed      [SeedSize]byte // per-period seed for reference generation
	extrinsic uint64         // operation counter within the period
	interval  time.Duration  // period length
	dirty     bool           // an advance is not yet persisted

	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData clockData

// Initialise - restore the period state and start the ticker
//
// storage must already be initialised
func Initialise(interval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("clock")
	globalData.log.Info("starting…")

	if interval <= 0 {
		interval = constants.DefaultClockInterval
	}
	globalData.interval = interval
	globalData.extrinsic = 0
	globalData.dirty = false

	period, found := storage.Pool.Counters.GetN([]byte(periodCounter))
	seedBytes := storage.Pool.Counters.Get([]byte(seedCounter))
	if !found || SeedSize != len(seedBytes) {
		// an empty database starts at period one with a seed bound
		// to the network so live and testing chains never collide
		period = 1
		globalData.seed = sha3.Sum256([]byte("ledger clock: " + mode.NetworkName()))
		globalData.period = period
		if !persist() {
			globalData.log.Error("cannot store initial period")
		}
	} else {
		copy(globalData.seed[:], seedBytes)
		globalData.period = period
	}

	globalData.log.Infof("period: %d  interval: %s", globalData.period, globalData.interval)

	// list of background processes to start
	processes := background.Processes{
		&ticker{log: logger.New("clock-tick")},
	}

	globalData.background = background.Start(processes, nil)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the ticker
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.background.Stop()

	globalData.Lock()
	if globalData.dirty {
		if !persist() {
			globalData.log.Error("final period not stored")
		}
	}
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Current - the current period number
func Current() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.period
}

// Seed - the seed of the current period
func Seed() [SeedSize]byte {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.seed
}

// NextExtrinsic - allocate the next operation number in this period
func NextExtrinsic() uint64 {
	globalData.Lock()
	n := globalData.extrinsic
	globalData.extrinsic += 1
	globalData.Unlock()
	return n
}

// Timestamp - wall clock reading as unix milliseconds
func Timestamp() uint64 {
	return uint64(time.Now().UnixNano() / int64(time.Millisecond))
}

// Advance - move the clock forward by some periods
//
// only available on testing networks, the live clock is driven by the
// ticker alone
func Advance(n uint64) (uint64, error) {
	if !mode.IsTesting() {
		return 0, fault.ClockNotAdjustable
	}
	if 0 == n {
		return Current(), nil
	}

	globalData.Lock()
	for i := uint64(0); i < n; i += 1 {
		advance()
	}
	globalData.dirty = !persist()
	period := globalData.period
	globalData.Unlock()

	return period, nil
}

// move to the next period and chain the seed
// must hold lock
func advance() {
	globalData.period += 1
	globalData.extrinsic = 0

	buffer := make([]byte, SeedSize+8)
	copy(buffer, globalData.seed[:])
	binary.BigEndian.PutUint64(buffer[SeedSize:], globalData.period)
	globalData.seed = sha3.Sum256(buffer)
}

// store period and seed, false if the store is busy
// must hold lock
func persist() bool {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		globalData.log.Debugf("period store deferred: %s", err)
		return false
	}
	_ = trx.PutN(storage.Pool.Counters, []byte(periodCounter), globalData.period)
	_ = trx.Put(storage.Pool.Counters, []byte(seedCounter), globalData.seed[:])
	err = trx.Commit()
	if nil != err {
		globalData.log.Errorf("period store error: %s", err)
		return false
	}
	return true
}
