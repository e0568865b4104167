// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/storage"
)

const (
	testingDirName = "testing"
)

// test database file
var databaseFileName = filepath.Join(testingDirName, "test")

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
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

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	_ = os.RemoveAll(databaseFileName + ".leveldb")
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.Nil(t, err, "storage initialise")
}

// post test cleanup
func teardown() {
	storage.Finalise()
	_ = os.RemoveAll(databaseFileName + ".leveldb")
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReadOnlyKeepsData(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "begin")
	trx.Put(storage.Pool.Accounts, []byte("key"), []byte("value"))
	require.Nil(t, trx.Commit(), "commit")

	storage.Finalise()

	err = storage.Initialise(databaseFileName, storage.ReadOnly)
	require.Nil(t, err, "read only initialise")
	assert.Equal(t, []byte("value"), storage.Pool.Accounts.Get([]byte("key")), "persisted value")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	_ = os.RemoveAll(databaseFileName + ".leveldb")
	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.NotNil(t, err, "missing database must not be created")
	storage.Finalise()
}

func TestNewDBTransactionUninitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrNotInitialised, err, "no database")
}
