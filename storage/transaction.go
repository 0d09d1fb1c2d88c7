// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"reflect"
	"sync"

	"github.com/countinghouse/ledgerd/fault"
)

// Transaction - atomic write access across all databases
//
// a transaction covers every database so a single commit either
// applies all staged writes or none of them
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte) error
	Get(Handle, []byte) ([]byte, error)
	GetN(Handle, []byte) (uint64, bool, error)
	GetNB(Handle, []byte) (uint64, []byte, error)
	InUse() bool
	Put(Handle, []byte, []byte) error
	PutN(Handle, []byte, uint64) error
}

type TransactionData struct {
	sync.Mutex
	inUse  bool
	access []DataAccess
}

func newTransaction(access []DataAccess) Transaction {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

func isNilPtr(h interface{}) error {
	if nil == h {
		return fault.NilPointer
	}
	v := reflect.ValueOf(h)
	if reflect.Ptr == v.Kind() && v.IsNil() {
		return fault.NilPointer
	}
	return nil
}

func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionAlreadyInUse
	}

	for _, access := range t.access {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// Commit - write out all staged changes
//
// each database batch is written atomically, the transaction is
// released whether or not the writes succeed
func (t *TransactionData) Commit() error {
	for _, access := range t.access {
		err := access.Commit()
		if nil != err {
			t.Abort()
			return err
		}
	}
	t.Abort()
	return nil
}

func (t *TransactionData) Abort() {
	for _, access := range t.access {
		access.Abort()
	}
	t.Lock()
	t.inUse = false
	t.Unlock()
}

func (t *TransactionData) InUse() bool {
	return t.inUse
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) error {
	err := isNilPtr(h)
	if nil != err {
		return err
	}
	h.put(key, value)
	return nil
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) error {
	err := isNilPtr(h)
	if nil != err {
		return err
	}
	h.putN(key, value)
	return nil
}

func (t *TransactionData) Delete(h Handle, key []byte) error {
	err := isNilPtr(h)
	if nil != err {
		return err
	}
	h.remove(key)
	return nil
}

func (t *TransactionData) Get(h Handle, key []byte) ([]byte, error) {
	err := isNilPtr(h)
	if nil != err {
		return nil, err
	}
	return h.Get(key), nil
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool, error) {
	err := isNilPtr(h)
	if nil != err {
		return 0, false, err
	}
	n, found := h.getN(key)
	return n, found, nil
}

func (t *TransactionData) GetNB(h Handle, key []byte) (uint64, []byte, error) {
	err := isNilPtr(h)
	if nil != err {
		return 0, nil, err
	}
	n, buffer := h.getNB(key)
	return n, buffer, nil
}
