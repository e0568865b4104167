// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/echobuffer/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - create a new key from secure random data
func NewPrivateKey() (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - accepts either a 32 byte seed or a 64 byte
// seed+public key pair
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	switch len(b) {
	case ed25519.SeedSize:
		return &PrivateKey{key: ed25519.NewKeyFromSeed(b)}, nil
	case ed25519.PrivateKeySize:
		key := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
		if string(key[ed25519.SeedSize:]) != string(b[ed25519.SeedSize:]) {
			return nil, fault.ErrInvalidKeyLength
		}
		return &PrivateKey{key: key}, nil
	default:
		return nil, fault.ErrInvalidKeyLength
	}
}

// PrivateKeyFromBase58 - decode the text form of a private key
func PrivateKeyFromBase58(s string) (*PrivateKey, error) {
	b, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeAccount
	}
	return PrivateKeyFromBytes(b)
}

// Account - the public key that corresponds to this private key
func (privateKey *PrivateKey) Account() PublicKey {
	var key PublicKey
	copy(key[:], privateKey.key[ed25519.SeedSize:])
	return key
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	var signature Signature
	copy(signature[:], ed25519.Sign(privateKey.key, message))
	return signature
}

// Bytes - the 64 byte seed+public key form
func (privateKey *PrivateKey) Bytes() []byte {
	return append([]byte{}, privateKey.key...)
}

// String - base58 of the 64 byte form
func (privateKey *PrivateKey) String() string {
	return base58.Encode(privateKey.key)
}

// MarshalText - convert to base58 text
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert base58 text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.key = p.key
	return nil
}
