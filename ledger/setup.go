// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/storage"
)

// Handles - the storage pools used by the posting engine
type Handles struct {
	Balances     storage.Handle
	GlobalLedger storage.Handle
	Postings     storage.Handle
	Touched      storage.Handle
	Counters     storage.Handle
}

// counter pool key for the process wide posting index
const postingCounter = "ledger.posting"

// globals for the posting engine
type ledgerData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	handles Handles

	// last posting index handed out, zero on an empty database
	postingIndex uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData ledgerData

// Initialise - restore the posting index and attach the pools
//
// storage must already be initialised
func Initialise(handles Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	if nil == handles.Balances ||
		nil == handles.GlobalLedger ||
		nil == handles.Postings ||
		nil == handles.Touched ||
		nil == handles.Counters {
		return fault.NilPointer
	}
	globalData.handles = handles

	index, found := handles.Counters.GetN([]byte(postingCounter))
	if !found {
		index = 0
	}
	globalData.postingIndex = index

	globalData.log.Infof("posting index: %d", globalData.postingIndex)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the posting engine
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")

	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// PostingIndex - the last posting index consumed
func PostingIndex() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.postingIndex
}
