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
//   1. authority (signer)
//   2. system program
func (p *Processor) initializeAuthorizedEcho(program account.PublicKey, accounts *accountIterator, nonce uint64, size uint64) error {

	list, err := accounts.take(3)
	if nil != err {
		return err
	}
	authBuffer, authority, systemProgram := list[0], list[1], list[2]

	err = p.require(authority.IsSigner, fault.ErrMissingRequiredSignature, "authority must sign")
	if nil != err {
		return err
	}

	return p.initializeGated(gatedBuffer{
		program:       program,
		buffer:        authBuffer,
		payer:         authority,
		systemProgram: systemProgram,
		seeds:         derive.AuthoritySeeds(authority.Key, derive.NumericSeed(nonce)),
		value:         nonce,
		size:          size,
	})
}

// accounts:
//   0. buffer (writable)
//   1. authority (signer)
func (p *Processor) authorizedEcho(program account.PublicKey, accounts *accountIterator, data []byte) error {

	list, err := accounts.take(2)
	if nil != err {
		return err
	}
	authBuffer, authority := list[0], list[1]

	err = p.require(authority.IsSigner, fault.ErrMissingRequiredSignature, "authority must sign")
	if nil != err {
		return err
	}

	_, err = p.verifyGated(program, authBuffer, func(nonce []byte) [][]byte {
		return derive.AuthoritySeeds(authority.Key, nonce)
	})
	if nil != err {
		return err
	}

	return p.writeGated(authBuffer, data)
}
