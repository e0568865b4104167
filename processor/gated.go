// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/buffer"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/fault"
)

// parameters shared by both initialise instructions
type gatedBuffer struct {
	program       account.PublicKey
	buffer        *AccountInfo
	payer         *AccountInfo
	systemProgram *AccountInfo
	seeds         [][]byte
	value         uint64
	size          uint64
}

// create a derived buffer and write its header
//
// the payer signature has been checked by the caller
func (p *Processor) initializeGated(g gatedBuffer) error {

	derivation, err := derive.Derive(p.deriver, g.seeds, g.program)
	if nil != err {
		p.log.Warnf("derive: %s", err)
		return err
	}

	err = p.require(g.systemProgram.Key == p.system, fault.ErrInvalidSystemProgram, "invalid system program passed")
	if nil != err {
		return err
	}

	err = p.require(derivation.Address == g.buffer.Key, fault.ErrIncorrectSeeds, "provided address has incorrect seeds")
	if nil != err {
		return err
	}

	err = p.require(g.size >= buffer.MinimumGatedSize, fault.ErrBufferTooSmall, "buffer size cannot hold a header")
	if nil != err {
		return err
	}

	request := &CreateAccount{
		Payer:    g.payer,
		Account:  g.buffer,
		Lamports: p.host.MinimumBalance(g.size),
		Space:    g.size,
		Owner:    g.program,
	}
	err = p.host.CreateAccount(request, derivation.Proof(g.program, g.seeds))
	if nil != err {
		p.log.Warnf("create account: %s  error: %s", g.buffer.Key, err)
		return fault.External(systemService, err)
	}

	_, err = buffer.WriteEnvelope(g.buffer.Data, buffer.EncodeHeader(derivation.Bump, g.value))
	if nil != err {
		return err
	}

	p.log.Debugf("created buffer: %s  bump: %d  size: %d", g.buffer.Key, derivation.Bump, g.size)
	return nil
}

// verify a derived buffer against its stored header, returning the header
//
// seeds builds the seed list from the stored value bytes
func (p *Processor) verifyGated(program account.PublicKey, b *AccountInfo, seeds func(value []byte) [][]byte) (buffer.Header, error) {

	header, err := buffer.DecodeHeader(b.Data)
	if nil != err {
		p.log.Warnf("buffer: %s  header: %s", b.Key, err)
		return buffer.Header{}, err
	}
	value, err := buffer.ValueSeed(b.Data)
	if nil != err {
		return buffer.Header{}, err
	}

	err = derive.VerifyBump(p.deriver, b.Key, seeds(value), header.Bump, program)
	err = p.require(nil == err, fault.ErrIncorrectSeeds, "provided address has incorrect seeds")
	if nil != err {
		return buffer.Header{}, err
	}
	return header, nil
}

// re-emit the header ahead of the new payload
func (p *Processor) writeGated(b *AccountInfo, data []byte) error {

	header, err := buffer.CarryForward(b.Data)
	if nil != err {
		return err
	}
	n, err := buffer.WriteGated(b.Data, header, data)
	if nil != err {
		return err
	}
	p.log.Debugf("buffer: %s  wrote: %d of %d payload bytes", b.Key, n-buffer.HeaderSize, len(data))
	return nil
}
