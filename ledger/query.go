// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/storage"
)

// Digest - SHA3-256 of an account's data
type Digest [32]byte

// run f in its own storage transaction, committing only on success
func (l *Ledger) update(f func(trx storage.Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		l.log.Warnf("update: %s", err)
		return err
	}
	return trx.Commit()
}

// Airdrop - credit lamports to an account, creating it if necessary
func (l *Ledger) Airdrop(key account.PublicKey, lamports uint64) error {
	return l.update(func(trx storage.Transaction) error {
		record := &AccountRecord{
			Owner: l.configuration.SystemProgram,
		}
		if b := trx.Get(storage.Pool.Accounts, key[:]); nil != b {
			var err error
			record, err = unpackAccount(b)
			if nil != err {
				return err
			}
		} else if exists(trx, key) {
			return fault.ErrAccountAlreadyInUse
		}

		if record.Lamports+lamports < record.Lamports {
			return fault.ErrInsufficientFunds
		}
		record.Lamports += lamports
		trx.Put(storage.Pool.Accounts, key[:], pack(record))
		l.log.Infof("airdrop: %d  to: %s  balance: %d", lamports, key, record.Lamports)
		return nil
	})
}

// Account - the stored state of a plain account
func (l *Ledger) Account(key account.PublicKey) (*AccountRecord, error) {
	b := storage.Pool.Accounts.Get(key[:])
	if nil == b {
		return nil, fault.ErrAccountNotFound
	}
	return unpackAccount(b)
}

// Mint - the stored state of a token mint
func (l *Ledger) Mint(key account.PublicKey) (*MintRecord, error) {
	b := storage.Pool.Mints.Get(key[:])
	if nil == b {
		return nil, fault.ErrAccountNotFound
	}
	return unpackMint(b)
}

// Holding - the stored state of a token account
func (l *Ledger) Holding(key account.PublicKey) (*HoldingRecord, error) {
	b := storage.Pool.Holdings.Get(key[:])
	if nil == b {
		return nil, fault.ErrAccountNotFound
	}
	return unpackHolding(b)
}

// Digest - fingerprint of an account's data for quick comparison
func (l *Ledger) Digest(key account.PublicKey) (Digest, error) {
	record, err := l.Account(key)
	if nil != err {
		return Digest{}, err
	}
	return sha3.Sum256(record.Data), nil
}

// String - hex for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}
