// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/processor"
	"github.com/bitmark-inc/echobuffer/storage"
)

// Ledger - executes transactions against the storage pools
type Ledger struct {
	sync.Mutex
	log           *logger.L
	configuration Configuration
	deriver       derive.Deriver
}

// where a loaded account lives
type location int

const (
	inNowhere location = iota
	inAccounts
	inMints
	inHoldings
)

// an account as loaded at the start of a transaction
type loaded struct {
	info     *processor.AccountInfo
	location location
	original AccountRecord
}

// New - create a ledger over already initialised storage
func New(log *logger.L, configuration Configuration) (*Ledger, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if configuration.EchoProgram.IsZero() {
		return nil, fault.ErrUnknownProgram
	}
	return &Ledger{
		log:           log,
		configuration: configuration.withDefaults(),
		deriver:       derive.Default,
	}, nil
}

// Configuration - the effective parameters
func (l *Ledger) Configuration() Configuration {
	return l.configuration
}

// Execute - verify and run a transaction
//
// either every instruction succeeds and all account changes are
// committed, or nothing at all is written
func (l *Ledger) Execute(tx *Transaction) error {
	signed, err := tx.Verify()
	if nil != err {
		l.log.Warnf("verify: %s", err)
		return err
	}

	l.Lock()
	defer l.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	accounts := make(map[account.PublicKey]*loaded)
	for i, ix := range tx.Instructions {
		infos := make([]*processor.AccountInfo, 0, len(ix.Accounts))
		for _, meta := range ix.Accounts {
			a, ok := accounts[meta.Key]
			if !ok {
				a, err = l.load(trx, meta.Key)
				if nil != err {
					return err
				}
				accounts[meta.Key] = a
			}
			a.info.IsSigner = meta.IsSigner && signed[meta.Key]
			a.info.IsWritable = meta.IsWritable
			infos = append(infos, a.info)
		}

		err = l.invoke(ix.Program, infos, ix.Data)
		if nil != err {
			l.log.Warnf("instruction[%d]: program: %s  error: %s", i, ix.Program, err)
			return err
		}
	}

	for _, a := range accounts {
		err = l.store(trx, a)
		if nil != err {
			return err
		}
	}

	err = trx.Commit()
	if nil != err {
		return err
	}
	committed = true

	l.log.Debugf("committed: %d instructions  %d accounts", len(tx.Instructions), len(accounts))
	return nil
}

// run one instruction and enforce the data ownership rules
func (l *Ledger) invoke(program account.PublicKey, infos []*processor.AccountInfo, data []byte) error {
	switch program {
	case l.configuration.EchoProgram, l.configuration.SystemProgram:
	default:
		return fault.ErrUnknownProgram
	}

	type before struct {
		owner account.PublicKey
		data  []byte
	}
	snapshot := make(map[*processor.AccountInfo]before, len(infos))
	for _, info := range infos {
		snapshot[info] = before{
			owner: info.Owner,
			data:  append([]byte{}, info.Data...),
		}
	}

	host := &invocation{
		ledger:  l,
		program: program,
		touched: make(map[*processor.AccountInfo]struct{}),
	}

	var err error
	if program == l.configuration.SystemProgram {
		err = host.system(infos, data)
	} else {
		p := processor.New(l.log, host, processor.Configuration{
			SystemProgram: l.configuration.SystemProgram,
			TokenProgram:  l.configuration.TokenProgram,
			Deriver:       l.deriver,
		})
		err = p.Process(program, infos, data)
	}
	if nil != err {
		return err
	}

	for info, b := range snapshot {
		if bytes.Equal(b.data, info.Data) {
			continue
		}
		if !info.IsWritable {
			return fault.ErrReadonlyDataModified
		}
		if _, ok := host.touched[info]; ok {
			continue
		}
		if b.owner != program {
			return fault.ErrExternalAccountDataModified
		}
	}
	return nil
}

// read an account from whichever pool holds it
//
// an unknown address is an empty account owned by the system program
func (l *Ledger) load(trx storage.Transaction, key account.PublicKey) (*loaded, error) {
	a := &loaded{
		info: &processor.AccountInfo{
			Key:   key,
			Owner: l.configuration.SystemProgram,
		},
		location: inNowhere,
	}

	if b := trx.Get(storage.Pool.Accounts, key[:]); nil != b {
		record, err := unpackAccount(b)
		if nil != err {
			return nil, err
		}
		a.info.Lamports = record.Lamports
		a.info.Owner = record.Owner
		a.info.Data = record.Data
		a.location = inAccounts
	} else if b := trx.Get(storage.Pool.Mints, key[:]); nil != b {
		a.info.Owner = l.configuration.TokenProgram
		a.info.Data = b
		a.location = inMints
	} else if b := trx.Get(storage.Pool.Holdings, key[:]); nil != b {
		a.info.Owner = l.configuration.TokenProgram
		a.info.Data = b
		a.location = inHoldings
	}

	a.original = AccountRecord{
		Lamports: a.info.Lamports,
		Owner:    a.info.Owner,
		Data:     append([]byte{}, a.info.Data...),
	}
	return a, nil
}

// stage a changed account back into its pool
func (l *Ledger) store(trx storage.Transaction, a *loaded) error {
	info := a.info
	if info.Lamports == a.original.Lamports && info.Owner == a.original.Owner && bytes.Equal(info.Data, a.original.Data) {
		return nil
	}

	switch a.location {
	case inMints:
		if _, err := unpackMint(info.Data); nil != err {
			return err
		}
		trx.Put(storage.Pool.Mints, info.Key[:], info.Data)

	case inHoldings:
		if _, err := unpackHolding(info.Data); nil != err {
			return err
		}
		trx.Put(storage.Pool.Holdings, info.Key[:], info.Data)

	default:
		record := AccountRecord{
			Lamports: info.Lamports,
			Owner:    info.Owner,
			Data:     info.Data,
		}
		trx.Put(storage.Pool.Accounts, info.Key[:], pack(record))
	}
	return nil
}
