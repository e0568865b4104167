// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
)

// RecordKind - distinguishes the token program's account types
type RecordKind uint8

// token account kinds
const (
	UnknownKind RecordKind = iota
	MintKind
	HoldingKind
)

// AccountRecord - a plain account stored in the Accounts pool
type AccountRecord struct {
	Lamports uint64            `cbor:"1,keyasint"`
	Owner    account.PublicKey `cbor:"2,keyasint"`
	Data     []byte            `cbor:"3,keyasint"`
}

// MintRecord - a token mint stored in the Mints pool
type MintRecord struct {
	Kind      RecordKind        `cbor:"0,keyasint"`
	Authority account.PublicKey `cbor:"1,keyasint"`
	Supply    uint64            `cbor:"2,keyasint"`
	Decimals  uint8             `cbor:"3,keyasint"`
}

// HoldingRecord - a token account stored in the Holdings pool
type HoldingRecord struct {
	Kind   RecordKind        `cbor:"0,keyasint"`
	Mint   account.PublicKey `cbor:"1,keyasint"`
	Owner  account.PublicKey `cbor:"2,keyasint"`
	Amount uint64            `cbor:"3,keyasint"`
}

// canonical encoding so equal records give equal bytes
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	fault.PanicIfError("cbor encoding mode", err)
	encMode = em
}

func pack(record interface{}) []byte {
	b, err := encMode.Marshal(record)
	fault.PanicIfError("cbor marshal", err)
	return b
}

func unpackAccount(b []byte) (*AccountRecord, error) {
	record := &AccountRecord{}
	if err := cbor.Unmarshal(b, record); nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return record, nil
}

// token accounts are identified by their kind field
func tokenKind(b []byte) RecordKind {
	var k struct {
		Kind RecordKind `cbor:"0,keyasint"`
	}
	if err := cbor.Unmarshal(b, &k); nil != err {
		return UnknownKind
	}
	return k.Kind
}

func unpackMint(b []byte) (*MintRecord, error) {
	if MintKind != tokenKind(b) {
		return nil, fault.ErrCannotDecodeAccount
	}
	record := &MintRecord{}
	if err := cbor.Unmarshal(b, record); nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return record, nil
}

func unpackHolding(b []byte) (*HoldingRecord, error) {
	if HoldingKind != tokenKind(b) {
		return nil, fault.ErrCannotDecodeAccount
	}
	record := &HoldingRecord{}
	if err := cbor.Unmarshal(b, record); nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return record, nil
}
