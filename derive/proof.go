// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive

import (
	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
)

// Proof - authorises an external call on behalf of a derived address
//
// the receiver recomputes the address from the seeds and bump under
// the program that issued the call
type Proof struct {
	Program account.PublicKey
	Seeds   [][]byte
	Bump    uint8
}

// Derivation - result of a successful Find
type Derivation struct {
	Address account.PublicKey
	Bump    uint8
}

// Derive - find the address and bump for a seed list
func Derive(d Deriver, seeds [][]byte, program account.PublicKey) (Derivation, error) {
	address, bump, err := d.Find(seeds, program)
	if nil != err {
		return Derivation{}, err
	}
	return Derivation{Address: address, Bump: bump}, nil
}

// Verify - recompute the canonical address and compare with a candidate
func Verify(d Deriver, candidate account.PublicKey, seeds [][]byte, program account.PublicKey) (Derivation, error) {
	derivation, err := Derive(d, seeds, program)
	if nil != err {
		return Derivation{}, err
	}
	if derivation.Address != candidate {
		return Derivation{}, fault.ErrIncorrectSeeds
	}
	return derivation, nil
}

// Proof - package the seeds that produced this derivation
func (derivation Derivation) Proof(program account.PublicKey, seeds [][]byte) *Proof {
	return &Proof{
		Program: program,
		Seeds:   seeds,
		Bump:    derivation.Bump,
	}
}

// Address - recompute the address a proof stands for
func (proof *Proof) Address(d Deriver) (account.PublicKey, error) {
	seeds := make([][]byte, 0, len(proof.Seeds)+1)
	seeds = append(seeds, proof.Seeds...)
	seeds = append(seeds, []byte{proof.Bump})
	return d.Create(seeds, proof.Program)
}

// VerifyBump - recompute an address from a stored bump, no search
func VerifyBump(d Deriver, candidate account.PublicKey, seeds [][]byte, bump uint8, program account.PublicKey) error {
	proof := Proof{
		Program: program,
		Seeds:   seeds,
		Bump:    bump,
	}
	address, err := proof.Address(d)
	if nil != err {
		return err
	}
	if address != candidate {
		return fault.ErrIncorrectSeeds
	}
	return nil
}
