// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/instruction"
)

// names of external services for error wrapping
const (
	systemService = "system"
	tokenService  = "token"
)

// Processor - the echo program bound to its collaborators
type Processor struct {
	log     *logger.L
	host    Host
	system  account.PublicKey
	token   account.PublicKey
	deriver derive.Deriver
}

// New - create a processor
func New(log *logger.L, host Host, configuration Configuration) *Processor {
	deriver := configuration.Deriver
	if nil == deriver {
		deriver = derive.Default
	}
	return &Processor{
		log:     log,
		host:    host,
		system:  configuration.SystemProgram,
		token:   configuration.TokenProgram,
		deriver: deriver,
	}
}

// Process - decode an instruction and route it to its handler
func (p *Processor) Process(program account.PublicKey, accounts []*AccountInfo, data []byte) error {

	ix, err := instruction.Packed(data).Unpack()
	if nil != err {
		p.log.Warnf("unpack: %x  error: %s", data, err)
		return err
	}

	name, _ := instruction.Name(ix)
	p.log.Infof("instruction: %s", name)

	accountList := &accountIterator{accounts: accounts}

	switch tx := ix.(type) {
	case *instruction.Echo:
		return p.echo(accountList, tx.Data)

	case *instruction.InitializeAuthorizedEcho:
		return p.initializeAuthorizedEcho(program, accountList, tx.BufferSeed, tx.BufferSize)

	case *instruction.AuthorizedEcho:
		return p.authorizedEcho(program, accountList, tx.Data)

	case *instruction.InitializeVendingMachine:
		return p.initializeVendingMachine(program, accountList, tx.Price, tx.BufferSize)

	case *instruction.VendingMachineEcho:
		return p.vendingMachineEcho(program, accountList, tx.Data)

	default:
		return fault.ErrInvalidInstructionData
	}
}

// check a precondition, logging the reason when it fails
func (p *Processor) require(statement bool, err error, message string) error {
	if statement {
		return nil
	}
	p.log.Warnf("%s: %s", message, err)
	return err
}

// positional access to the accounts list
type accountIterator struct {
	accounts []*AccountInfo
	index    int
}

func (it *accountIterator) next() (*AccountInfo, error) {
	if it.index >= len(it.accounts) {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	a := it.accounts[it.index]
	it.index += 1
	return a, nil
}

// fetch n accounts at once
func (it *accountIterator) take(n int) ([]*AccountInfo, error) {
	result := make([]*AccountInfo, n)
	for i := range result {
		a, err := it.next()
		if nil != err {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}
