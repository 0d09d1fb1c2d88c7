// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/funds"
	"github.com/countinghouse/ledgerd/storage"
)

// Handles - the storage pools used by the escrow engine
type Handles struct {
	Prefunding       storage.Handle // ref → amount, deadline
	PrefundingOwners storage.Handle // ref → parties and lock bits
	OwnerRefs        storage.Handle // owner → reference list
	ReferenceStatus  storage.Handle // ref → status code
}

// globals for the escrow engine
type escrowData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	handles Handles
	cash    funds.Funds

	// set once during initialise
	initialised bool
}

// global data
var globalData escrowData

// Initialise - attach the pools and the value locking primitive
//
// storage, the ledger and the clock must already be initialised
func Initialise(handles Handles, cash funds.Funds) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("escrow")
	globalData.log.Info("starting…")

	if nil == handles.Prefunding ||
		nil == handles.PrefundingOwners ||
		nil == handles.OwnerRefs ||
		nil == handles.ReferenceStatus {
		return fault.NilPointer
	}
	if nil == cash {
		return fault.NilPointer
	}
	globalData.handles = handles
	globalData.cash = cash

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the escrow engine
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
