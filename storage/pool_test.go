// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/countinghouse/ledgerd/storage"
)

// helper to add to pool
func trxPut(t *testing.T, trx storage.Transaction, p *storage.PoolHandle, key string, data string) {
	err := trx.Put(p, []byte(key), []byte(data))
	if nil != err {
		t.Fatalf("trx put error: %s", err)
	}
}

// helper to remove from pool
func trxDelete(t *testing.T, trx storage.Transaction, p *storage.PoolHandle, key string) {
	err := trx.Delete(p, []byte(key))
	if nil != err {
		t.Fatalf("trx delete error: %s", err)
	}
}

// main pool test
func TestPool(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	// ensure that pool was empty
	checkAgain(t, true)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}

	// add more items than poolSize
	trxPut(t, trx, p, "key-one", "data-one")
	trxPut(t, trx, p, "key-two", "data-two")
	trxPut(t, trx, p, "key-remove-me", "to be deleted")
	trxDelete(t, trx, p, "key-remove-me")
	trxPut(t, trx, p, "key-three", "data-three")
	trxPut(t, trx, p, "key-one", "data-one")     // duplicate
	trxPut(t, trx, p, "key-three", "data-three") // duplicate
	trxPut(t, trx, p, "key-four", "data-four")
	trxPut(t, trx, p, "key-delete-this", "to be deleted")
	trxPut(t, trx, p, "key-five", "data-five")
	trxPut(t, trx, p, "key-six", "data-six")
	trxDelete(t, trx, p, "key-delete-this")
	trxPut(t, trx, p, "key-seven", "data-seven")
	trxPut(t, trx, p, "key-one", "data-one(NEW)") // duplicate

	err = trx.Commit()
	if nil != err {
		t.Fatalf("transaction commit error: %s", err)
	}

	// ensure that data is correct
	checkResults(t, p)

	// recheck
	checkAgain(t, false)

	// check that restarting database keeps data
	storage.Finalise()
	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	checkAgain(t, false)
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: Excess, got: '%s'  expected: Nothing", i, a)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: Mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor.Seek(nil)
	firstPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	secondPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if bytes.Equal(firstPair[1].Key, secondPair[0].Key) {
		t.Errorf("Fetch Overlap got duplicate: '%s:%s'", firstPair[1].Key, firstPair[1].Value)
	}

	// check key exists
	if !p.Has(testKey) {
		t.Errorf("not found: %q", testKey)
	}

	// retrieve a key
	d2 := p.Get(testKey)
	if nil == d2 {
		t.Errorf("not found: %q", testKey)
	}
	if string(d2) != testData {
		t.Errorf("Mismatch on Get, got: '%s'  expected: '%s'", d2, testData)
	}

	// check that key does not exist
	if p.Has(nonExistantKey) {
		t.Errorf("unexpectedly found: %q", nonExistantKey)
	}

	// retrieve a key not in the pool
	dn := p.Get(nonExistantKey)
	if nil != dn {
		t.Errorf("Unexpected data on Get, got: '%s'  expected: nil", dn)
	}
}

func checkAgain(t *testing.T, empty bool) {

	p := storage.Pool.TestData

	// cache will be empty
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(100) // all data
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if empty && 0 != len(data) {
		t.Errorf("Pool was not empty, count = %d", len(data))
	}

	for i, e := range expectedElements {

		data := p.Get([]byte(e.Key))
		if empty {
			if nil != data {
				t.Errorf("checkAgain: %d: Unexpected data on Get('%s'), got: '%s'  expected: nil", i, e.Key, data)
			}
		} else {
			if nil == data {
				t.Errorf("checkAgain: %d: Error on Get('%s') not found", i, e.Key)
			}
			if !bytes.Equal(data, e.Value) {
				t.Errorf("checkAgain: %d: Mismatch on Get('%s'), got: '%s'  expected: '%s'", i, e.Key, data, e.Value)
			}
		}
	}

	// try to retrieve some more data - shout be zero
	data, err = cursor.Fetch(100)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	n := len(data)
	if 0 != n {
		t.Errorf("checkAgain: extra: %d elements found", n)
		t.Errorf("checkAgain: data: %s", data)
	}

	// check that key does not exist
	if p.Has(nonExistantKey) {
		t.Errorf("unexpectedly found: %q", nonExistantKey)
	}

	// attempt to retrieve a key that does not exist
	dn := p.Get(nonExistantKey)
	if nil != dn {
		t.Errorf("checkAgain: Unexpected data on Get('/nonexistant'), got: '%s'  expected: nil", dn)
	}
}

// repeated write and read back cycles on a single pool
func TestWriteRead(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	key := []byte("cycle-key")

	for i := 0; i < 25; i += 1 {

		data := []byte{byte(i), byte(i >> 8), 0x55, 0xaa, byte(i)}

		trx, err := storage.NewDBTransaction()
		if nil != err {
			t.Fatalf("%d: transaction begin error: %s", i, err)
		}

		err = trx.Put(p, key, data)
		if nil != err {
			t.Fatalf("%d: trx put error: %s", i, err)
		}

		// uncommitted value must already be visible inside the transaction
		d, err := trx.Get(p, key)
		if nil != err {
			t.Fatalf("%d: trx get error: %s", i, err)
		}
		if !bytes.Equal(data, d) {
			t.Errorf("%d: uncommitted: actual: %x  expected: %x", i, d, data)
		}

		err = trx.Commit()
		if nil != err {
			t.Fatalf("%d: transaction commit error: %s", i, err)
		}

		d = p.Get(key)
		if !bytes.Equal(data, d) {
			t.Errorf("%d: committed: actual: %x  expected: %x", i, d, data)
		}
	}

	// a discarded transaction must leave the last committed value
	final := p.Get(key)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction begin error: %s", err)
	}
	err = trx.Put(p, key, []byte("should vanish"))
	if nil != err {
		t.Fatalf("trx put error: %s", err)
	}
	trx.Abort()

	d := p.Get(key)
	if !bytes.Equal(final, d) {
		t.Errorf("abort: actual: %x  expected: %x", d, final)
	}
}
