// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Balances         *PoolHandle `prefix:"B" database:"ledger"`
	GlobalLedger     *PoolHandle `prefix:"G" database:"ledger"`
	Postings         *PoolHandle `prefix:"P" database:"ledger"`
	Touched          *PoolHandle `prefix:"T" database:"ledger"`
	Counters         *PoolHandle `prefix:"N" database:"ledger"`
	Prefunding       *PoolHandle `prefix:"F" database:"ledger"`
	PrefundingOwners *PoolHandle `prefix:"O" database:"ledger"`
	OwnerRefs        *PoolHandle `prefix:"R" database:"ledger"`
	ReferenceStatus  *PoolHandle `prefix:"S" database:"ledger"`
	FreeBalances     *PoolHandle `prefix:"M" database:"funds"`
	Locks            *PoolHandle `prefix:"L" database:"funds"`
	TestData         *PoolHandle `prefix:"Z" database:"ledger"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentLedgerDBVersion = 0x100
	currentFundsDBVersion  = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	dbLedger  *leveldb.DB
	dbFunds   *leveldb.DB
	trx       Transaction
	ledgerTrx *leveldb.Batch
	fundsTrx  *leveldb.Batch
	cache     Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connections
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.dbLedger {
		return fault.AlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	ledgerDatabase := database + "-ledger.leveldb"
	fundsDatabase := database + "-funds.leveldb"

	db, ledgerVersion, err := getDB(ledgerDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbLedger = db

	// ensure no database downgrade
	if ledgerVersion > currentLedgerDBVersion {
		logger.Criticalf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerDBVersion)
		return fmt.Errorf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerDBVersion)
	}

	db, fundsVersion, err := getDB(fundsDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbFunds = db

	// ensure no database downgrade
	if fundsVersion > currentFundsDBVersion {
		logger.Criticalf("funds database version: %d > current version: %d", fundsVersion, currentFundsDBVersion)
		return fmt.Errorf("funds database version: %d > current version: %d", fundsVersion, currentFundsDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && (ledgerVersion != currentLedgerDBVersion || fundsVersion != currentFundsDBVersion) {
		logger.Criticalf("database is inconsistent: ledger: %d  funds: %d  current: %d & %d", ledgerVersion, fundsVersion, currentLedgerDBVersion, currentFundsDBVersion)
		return fmt.Errorf("database is inconsistent: ledger: %d  funds: %d  current: %d & %d", ledgerVersion, fundsVersion, currentLedgerDBVersion, currentFundsDBVersion)
	}

	if 0 == ledgerVersion {
		// database was empty so tag as current version
		err = putVersion(poolData.dbLedger, currentLedgerDBVersion)
		if nil != err {
			return err
		}
	}
	if 0 == fundsVersion {
		err = putVersion(poolData.dbFunds, currentFundsDBVersion)
		if nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// databases
	poolData.ledgerTrx = new(leveldb.Batch)
	poolData.fundsTrx = new(leveldb.Batch)
	poolData.cache = newCache()
	ledgerDBAccess := newDA(poolData.dbLedger, poolData.ledgerTrx, poolData.cache)
	fundsDBAccess := newDA(poolData.dbFunds, poolData.fundsTrx, poolData.cache)
	access := []DataAccess{ledgerDBAccess, fundsDBAccess}
	poolData.trx = newTransaction(access)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		var dataAccess DataAccess
		switch dbName := fieldInfo.Tag.Get("database"); dbName {
		case "ledger":
			dataAccess = ledgerDBAccess
		case "funds":
			dataAccess = fundsDBAccess
		default:
			return fmt.Errorf("pool: %v  has invalid database: %q", fieldInfo, dbName)
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: dataAccess,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.dbFunds {
		poolData.dbFunds.Close()
		poolData.dbFunds = nil
	}
	if nil != poolData.dbLedger {
		poolData.dbLedger.Close()
		poolData.dbLedger = nil
	}
}

// Finalise - close the database connections
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - acquire the global write transaction
//
// returns an error if another transaction is still in progress
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}
