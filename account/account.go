// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/echobuffer/fault"
)

// PublicKeySize - bytes in an address
const PublicKeySize = 32

// PublicKey - the identity of an account, a program, a mint or a
// derived buffer address
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes - copy an address from a byte slice
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var key PublicKey
	if PublicKeySize != len(b) {
		return key, fault.ErrInvalidKeyLength
	}
	copy(key[:], b)
	return key, nil
}

// PublicKeyFromBase58 - decode the text form of an address
func PublicKeyFromBase58(s string) (PublicKey, error) {
	var key PublicKey
	b, err := base58.Decode(s)
	if nil != err || 0 == len(b) {
		return key, fault.ErrCannotDecodeAccount
	}
	return PublicKeyFromBytes(b)
}

// MustPublicKeyFromBase58 - for well-known constants only
func MustPublicKeyFromBase58(s string) PublicKey {
	key, err := PublicKeyFromBase58(s)
	fault.PanicIfError("account.MustPublicKeyFromBase58", err)
	return key
}

// Bytes - the raw address
func (key PublicKey) Bytes() []byte {
	return key[:]
}

// IsZero - true for the all zero address
func (key PublicKey) IsZero() bool {
	return key == PublicKey{}
}

// Equal - compare two addresses
func (key PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(key[:], other[:])
}

// String - base58 encoding for use by the fmt package (for %s)
func (key PublicKey) String() string {
	return base58.Encode(key[:])
}

// GoString - for use by the fmt package (for %#v)
func (key PublicKey) GoString() string {
	return "<account:" + hex.EncodeToString(key[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (key *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}
