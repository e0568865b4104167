// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/echobuffer/fault"
)

// Signature - an ed25519 signature
type Signature [ed25519.SignatureSize]byte

// Verify - check the signature of a message against a public key
func (signature Signature) Verify(key PublicKey, message []byte) error {
	if !ed25519.Verify(key[:], message, signature[:]) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base58 for use by the fmt package (for %s)
func (signature Signature) String() string {
	return base58.Encode(signature[:])
}

// GoString - for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature[:]) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	b, err := base58.Decode(string(s))
	if nil != err || len(b) != len(signature) {
		return fault.ErrInvalidSignature
	}
	copy(signature[:], b)
	return nil
}
