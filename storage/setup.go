// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/exchanged/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Assets          *PoolHandle `prefix:"A"`
	AssetVersions   *PoolHandle `prefix:"a"`
	AssetHistory    *PoolHandle `prefix:"c"`
	Balances        *PoolHandle `prefix:"L"`
	BalanceHistory  *PoolHandle `prefix:"h"`
	LedgerEntries   *PoolHandle `prefix:"E"`
	AskOrders       *PoolHandle `prefix:"S"`
	BidOrders       *PoolHandle `prefix:"K"`
	Dividends       *PoolHandle `prefix:"V"`
	LastDividend    *PoolHandle `prefix:"W"`
	Transfers       *PoolHandle `prefix:"T"`
	AssetTransfers  *PoolHandle `prefix:"t"`
	AccountTransfer *PoolHandle `prefix:"u"`
	PhasingControl  *PoolHandle `prefix:"P"`
	Currencies      *PoolHandle `prefix:"C"`
	Pending         *PoolHandle `prefix:"U"`
	State           *PoolHandle `prefix:"Q"`
	TestData        *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	database    *leveldb.DB
	transaction *leveldb.Transaction
	afterCommit []func()
	generation  uint64
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}
	return open(func() (*leveldb.DB, error) {
		return leveldb.OpenFile(database, opt)
	}, readOnly)
}

// InitialiseMemory - open an empty memory backed database
//
// contents are lost on Finalise
func InitialiseMemory() error {
	return open(func() (*leveldb.DB, error) {
		return leveldb.Open(ldb_storage.NewMemStorage(), nil)
	}, ReadWrite)
}

func open(opener func() (*leveldb.DB, error), readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.database {
		return fault.ErrAlreadyInitialised
	}

	db, err := opener()
	if nil != err {
		return err
	}

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.ErrUnsupportedDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			db.Close()
			return fault.ErrUnsupportedDatabaseVersion
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return err
		}
	}

	err = setupPools(db)
	if nil != err {
		db.Close()
		return err
	}
	poolData.database = db

	return nil
}

// fill in the pool handles from the struct tags
func setupPools(db *leveldb.DB) error {

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}

		prefix := prefixTag[0]
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s reuses prefix: %q of: %s", fieldInfo.Name, prefixTag, previous)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return
	}

	if nil != poolData.transaction {
		logger.Critical("storage: open transaction discarded")
		poolData.transaction.Discard()
		poolData.transaction = nil
		poolData.afterCommit = nil
		poolData.generation += 1
	}

	// detach all pools so stale handles fail safely
	poolValue := reflect.ValueOf(&Pool).Elem()
	for i := 0; i < poolValue.NumField(); i += 1 {
		if p, ok := poolValue.Field(i).Interface().(*PoolHandle); ok && nil != p {
			p.database = nil
		}
	}

	poolData.database.Close()
	poolData.database = nil
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
