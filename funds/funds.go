// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds

import (
	"encoding/binary"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/messagebus"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/storage"
)

// LockIdSize - bytes in a lock identifier
const LockIdSize = 8

// Lock - one value lock in force against a holder
type Lock struct {
	Id     [LockIdSize]byte `json:"id"`
	Amount uint64           `json:"amount"`
	Until  uint64           `json:"until"`
	Reason string           `json:"reason"`
}

// Balance - the full spendable balance of a holder
func Balance(holder *account.Account) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if nil == holder {
		return 0, fault.NilPointer
	}

	balance, _ := globalData.handles.Balances.GetN(holder.Bytes())
	return balance, nil
}

// FreeBalance - the balance less all locks still in force
func FreeBalance(holder *account.Account) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if nil == holder {
		return 0, fault.NilPointer
	}

	return freeBalance(holder)
}

// LocksFor - all locks currently recorded against a holder
//
// expired locks stay listed until removed, they no longer restrict
// the free balance
func LocksFor(holder *account.Account) ([]Lock, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == holder {
		return nil, fault.NilPointer
	}

	return locksFor(holder)
}

// SetLock - hold part of a holder's balance until a period is reached
//
// re-setting an existing lock id replaces the previous amounts; the
// lock fails if the holder's remaining free balance cannot cover it
func SetLock(id [LockIdSize]byte, holder *account.Account, amount uint64, until uint64, reason string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == holder {
		return fault.NilPointer
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	key := lockKey(holder, id)

	// the replaced lock must not count against its own replacement
	free, err := freeBalanceExcluding(holder, &id)
	if nil != err {
		return err
	}
	if free < amount {
		return fault.InsufficientFreeBalance
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.Put(globalData.handles.Locks, key, packLock(amount, until, reason))
	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Events.Send("funds.locked", holder.Bytes(), id[:])
	return nil
}

// RemoveLock - release a lock
func RemoveLock(id [LockIdSize]byte, holder *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == holder {
		return fault.NilPointer
	}

	key := lockKey(holder, id)
	if !globalData.handles.Locks.Has(key) {
		return fault.LockNotFound
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.Delete(globalData.handles.Locks, key)
	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Events.Send("funds.unlocked", holder.Bytes(), id[:])
	return nil
}

// Transfer - move spendable value between holders
//
// fails if the sender's free balance cannot cover the amount or the
// receiver's balance would wrap
func Transfer(from *account.Account, to *account.Account, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == from || nil == to {
		return fault.NilPointer
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	free, err := freeBalance(from)
	if nil != err {
		return err
	}
	if free < amount {
		return fault.InsufficientFreeBalance
	}

	fromBalance, _ := globalData.handles.Balances.GetN(from.Bytes())
	toBalance, _ := globalData.handles.Balances.GetN(to.Bytes())
	if toBalance+amount < toBalance {
		return fault.BalanceOverflow
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.PutN(globalData.handles.Balances, from.Bytes(), fromBalance-amount)
	_ = trx.PutN(globalData.handles.Balances, to.Bytes(), toBalance+amount)
	err = trx.Commit()
	if nil != err {
		return err
	}

	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, amount)
	messagebus.Bus.Events.Send("funds.transferred", from.Bytes(), to.Bytes(), buffer)
	return nil
}

// Deposit - create new spendable value
//
// only available on testing networks
func Deposit(holder *account.Account, amount uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if !mode.IsTesting() {
		return fault.DepositNotAvailable
	}
	if nil == holder {
		return fault.NilPointer
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	balance, _ := globalData.handles.Balances.GetN(holder.Bytes())
	if balance+amount < balance {
		return fault.BalanceOverflow
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.PutN(globalData.handles.Balances, holder.Bytes(), balance+amount)
	err = trx.Commit()
	if nil != err {
		return err
	}

	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, amount)
	messagebus.Bus.Events.Send("funds.deposit", holder.Bytes(), buffer)
	return nil
}

// internal lock key: holder bytes then lock id
func lockKey(holder *account.Account, id [LockIdSize]byte) []byte {
	return append(holder.Bytes(), id[:]...)
}

// lock record: amount, until period, reason text
func packLock(amount uint64, until uint64, reason string) []byte {
	buffer := make([]byte, 16, 16+len(reason))
	binary.BigEndian.PutUint64(buffer[:8], amount)
	binary.BigEndian.PutUint64(buffer[8:], until)
	return append(buffer, reason...)
}

func unpackLock(buffer []byte) (uint64, uint64, string, error) {
	if len(buffer) < 16 {
		return 0, 0, "", fault.InvalidBufferLength
	}
	amount := binary.BigEndian.Uint64(buffer[:8])
	until := binary.BigEndian.Uint64(buffer[8:16])
	return amount, until, string(buffer[16:]), nil
}

// must hold lock (read or write)
func locksFor(holder *account.Account) ([]Lock, error) {
	prefix := holder.Bytes()

	cursor := globalData.handles.Locks.NewFetchCursor().Seek(prefix)

	locks := []Lock(nil)
	for {
		elements, err := cursor.Fetch(20)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			return locks, nil
		}
		for _, element := range elements {
			if len(element.Key) != len(prefix)+LockIdSize || string(element.Key[:len(prefix)]) != string(prefix) {
				return locks, nil // past this holder's locks
			}
			amount, until, reason, err := unpackLock(element.Value)
			if nil != err {
				return nil, err
			}
			lock := Lock{Amount: amount, Until: until, Reason: reason}
			copy(lock.Id[:], element.Key[len(prefix):])
			locks = append(locks, lock)
		}
	}
}

// balance less locks in force
// must hold lock (read or write)
func freeBalance(holder *account.Account) (uint64, error) {
	return freeBalanceExcluding(holder, nil)
}

// must hold lock (read or write)
func freeBalanceExcluding(holder *account.Account, exclude *[LockIdSize]byte) (uint64, error) {
	balance, _ := globalData.handles.Balances.GetN(holder.Bytes())

	locks, err := locksFor(holder)
	if nil != err {
		return 0, err
	}

	current := clock.Current()
	for _, lock := range locks {
		if lock.Until <= current {
			continue // expired, no longer restricts
		}
		if nil != exclude && *exclude == lock.Id {
			continue
		}
		if lock.Amount >= balance {
			return 0, nil
		}
		balance -= lock.Amount
	}
	return balance, nil
}
