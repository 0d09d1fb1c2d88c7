// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/storage"
)

// Handles - the storage pools used by the value store
type Handles struct {
	Balances storage.Handle // holder → spendable balance
	Locks    storage.Handle // holder+id → amount, until, reason
	Counters storage.Handle // allocation marker
}

// Allocation - one initial balance from the configuration
type Allocation struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// counter pool marker so genesis allocations apply exactly once
const allocatedMarker = "funds.allocated"

// Funds - the value store as seen by the escrow engine and the RPC
// services
type Funds interface {
	SetLock(id [8]byte, holder *account.Account, amount uint64, until uint64, reason string) error
	RemoveLock(id [8]byte, holder *account.Account) error
	Transfer(from *account.Account, to *account.Account, amount uint64) error
	Balance(holder *account.Account) (uint64, error)
	FreeBalance(holder *account.Account) (uint64, error)
	LocksFor(holder *account.Account) ([]Lock, error)
	Deposit(holder *account.Account, amount uint64) error
}

// access to the global store through the Funds interface
type access struct{}

func (access) SetLock(id [8]byte, holder *account.Account, amount uint64, until uint64, reason string) error {
	return SetLock(id, holder, amount, until, reason)
}
func (access) RemoveLock(id [8]byte, holder *account.Account) error {
	return RemoveLock(id, holder)
}
func (access) Transfer(from *account.Account, to *account.Account, amount uint64) error {
	return Transfer(from, to, amount)
}
func (access) Balance(holder *account.Account) (uint64, error) {
	return Balance(holder)
}
func (access) FreeBalance(holder *account.Account) (uint64, error) {
	return FreeBalance(holder)
}
func (access) LocksFor(holder *account.Account) ([]Lock, error) {
	return LocksFor(holder)
}
func (access) Deposit(holder *account.Account, amount uint64) error {
	return Deposit(holder, amount)
}

// Get - the global value store
func Get() Funds {
	return access{}
}

// globals for the value store
type fundsData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	handles Handles

	// set once during initialise
	initialised bool
}

// global data
var globalData fundsData

// Initialise - attach the pools and apply genesis allocations
//
// storage and mode must already be initialised; the allocation list
// from the configuration is applied only to a virgin database
func Initialise(handles Handles, allocations []Allocation) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("funds")
	globalData.log.Info("starting…")

	if nil == handles.Balances || nil == handles.Locks || nil == handles.Counters {
		return fault.NilPointer
	}
	globalData.handles = handles

	if _, done := handles.Counters.GetN([]byte(allocatedMarker)); !done {
		err := allocate(allocations)
		if nil != err {
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the value store
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

// write the genesis balances and the applied marker
// must hold lock
func allocate(allocations []Allocation) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, allocation := range allocations {
		holder, err := account.AccountFromBase58(allocation.Account)
		if nil != err {
			trx.Abort()
			return err
		}
		if holder.IsTesting() != mode.IsTesting() {
			trx.Abort()
			return fault.WrongNetworkForPublicKey
		}
		globalData.log.Infof("allocate: %s ← %d", holder, allocation.Amount)
		_ = trx.PutN(globalData.handles.Balances, holder.Bytes(), allocation.Amount)
	}
	_ = trx.PutN(globalData.handles.Counters, []byte(allocatedMarker), 1)

	return trx.Commit()
}
