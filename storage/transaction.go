// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all-or-nothing group of writes across pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

// TransactionImpl - the batch backed transaction
type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		dataAccess: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write every staged value in one batch
func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

// Abort - discard every staged value
func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}
