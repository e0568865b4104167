// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/fault"
)

// accounts:
//   0. buffer (writable)
//   1. mint
//   2. payer (signer)
//   3. system program
func (p *Processor) initializeVendingMachine(program account.PublicKey, accounts *accountIterator, price uint64, size uint64) error {

	list, err := accounts.take(4)
	if nil != err {
		return err
	}
	vendBuffer, mint, payer, systemProgram := list[0], list[1], list[2], list[3]

	err = p.require(payer.IsSigner, fault.ErrMissingRequiredSignature, "payer must sign")
	if nil != err {
		return err
	}

	return p.initializeGated(gatedBuffer{
		program:       program,
		buffer:        vendBuffer,
		payer:         payer,
		systemProgram: systemProgram,
		seeds:         derive.VendingSeeds(mint.Key, derive.NumericSeed(price)),
		value:         price,
		size:          size,
	})
}

// accounts:
//   0. buffer (writable)
//   1. user (signer)
//   2. user token account (writable)
//   3. mint (writable)
//   4. token program
//
// the burn happens before the write, a failed burn leaves the buffer untouched
func (p *Processor) vendingMachineEcho(program account.PublicKey, accounts *accountIterator, data []byte) error {

	list, err := accounts.take(5)
	if nil != err {
		return err
	}
	vendBuffer, user, userTokenAccount, mint, tokenProgram := list[0], list[1], list[2], list[3], list[4]

	err = p.require(user.IsSigner, fault.ErrMissingRequiredSignature, "user must sign")
	if nil != err {
		return err
	}

	err = p.require(tokenProgram.Key == p.token, fault.ErrInvalidTokenProgram, "invalid token program passed")
	if nil != err {
		return err
	}

	header, err := p.verifyGated(program, vendBuffer, func(price []byte) [][]byte {
		return derive.VendingSeeds(mint.Key, price)
	})
	if nil != err {
		return err
	}

	err = p.host.Burn(&Burn{
		Holding:   userTokenAccount,
		Mint:      mint,
		Authority: user,
		Amount:    header.Value,
	})
	if nil != err {
		p.log.Warnf("burn: %d from: %s  error: %s", header.Value, userTokenAccount.Key, err)
		return fault.External(tokenService, err)
	}

	return p.writeGated(vendBuffer, data)
}
