// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
)

// AccountMeta - how an instruction refers to an account
type AccountMeta struct {
	Key        account.PublicKey `cbor:"1,keyasint"`
	IsSigner   bool              `cbor:"2,keyasint"`
	IsWritable bool              `cbor:"3,keyasint"`
}

// Instruction - one call to a program
type Instruction struct {
	Program  account.PublicKey `cbor:"1,keyasint"`
	Accounts []AccountMeta     `cbor:"2,keyasint"`
	Data     []byte            `cbor:"3,keyasint"`
}

// SignaturePair - a signer and its signature over the message
type SignaturePair struct {
	Signer    account.PublicKey `cbor:"1,keyasint"`
	Signature account.Signature `cbor:"2,keyasint"`
}

// Transaction - instructions executed atomically
type Transaction struct {
	Instructions []Instruction   `cbor:"1,keyasint"`
	Signatures   []SignaturePair `cbor:"2,keyasint"`
}

// NewTransaction - an unsigned transaction
func NewTransaction(instructions ...Instruction) *Transaction {
	return &Transaction{
		Instructions: instructions,
	}
}

// Message - the bytes covered by the signatures
func (tx *Transaction) Message() []byte {
	return pack(tx.Instructions)
}

// RequiredSigners - every key some instruction marks as a signer, in
// first appearance order
func (tx *Transaction) RequiredSigners() []account.PublicKey {
	seen := make(map[account.PublicKey]struct{})
	signers := make([]account.PublicKey, 0, 2)
	for _, ix := range tx.Instructions {
		for _, meta := range ix.Accounts {
			if !meta.IsSigner {
				continue
			}
			if _, ok := seen[meta.Key]; ok {
				continue
			}
			seen[meta.Key] = struct{}{}
			signers = append(signers, meta.Key)
		}
	}
	return signers
}

// Sign - add signatures, replacing any earlier one by the same key
func (tx *Transaction) Sign(keys ...*account.PrivateKey) {
	message := tx.Message()

next_key:
	for _, key := range keys {
		pair := SignaturePair{
			Signer:    key.Account(),
			Signature: key.Sign(message),
		}
		for i := range tx.Signatures {
			if tx.Signatures[i].Signer == pair.Signer {
				tx.Signatures[i] = pair
				continue next_key
			}
		}
		tx.Signatures = append(tx.Signatures, pair)
	}
}

// Verify - check every signature and that all required signers signed
//
// returns the set of keys with a valid signature
func (tx *Transaction) Verify() (map[account.PublicKey]bool, error) {
	if 0 == len(tx.Instructions) {
		return nil, fault.ErrEmptyTransaction
	}

	message := tx.Message()
	signed := make(map[account.PublicKey]bool, len(tx.Signatures))
	for _, pair := range tx.Signatures {
		if err := pair.Signature.Verify(pair.Signer, message); nil != err {
			return nil, fault.ErrInvalidSignature
		}
		signed[pair.Signer] = true
	}

	for _, key := range tx.RequiredSigners() {
		if !signed[key] {
			return nil, fault.ErrMissingRequiredSignature
		}
	}
	return signed, nil
}
