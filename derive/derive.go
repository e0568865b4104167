// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive

import (
	"crypto/sha256"
	"encoding/binary"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
)

// limits on seeds
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// seed labels for the two gated buffer kinds
var (
	AuthorityLabel = []byte("authority")
	VendingLabel   = []byte("vending machine")
)

// appended to every derivation hash input
const programAddressMarker = "ProgramDerivedAddress"

// Deriver - derivation rule, the host defines the concrete hash
type Deriver interface {
	Create(seeds [][]byte, program account.PublicKey) (account.PublicKey, error)
	Find(seeds [][]byte, program account.PublicKey) (account.PublicKey, uint8, error)
}

// ProgramAddress - the sha256 / ed25519 rule
type ProgramAddress struct{}

// Default - the rule used unless a host injects another one
var Default Deriver = ProgramAddress{}

// Create - compute the address for a seed list that already carries its bump
func (ProgramAddress) Create(seeds [][]byte, program account.PublicKey) (account.PublicKey, error) {
	if len(seeds) > MaxSeeds {
		return account.PublicKey{}, fault.ErrMaxSeedLengthExceeded
	}

	digest := sha256.New()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return account.PublicKey{}, fault.ErrMaxSeedLengthExceeded
		}
		digest.Write(seed)
	}
	digest.Write(program[:])
	digest.Write([]byte(programAddressMarker))

	var address account.PublicKey
	copy(address[:], digest.Sum(nil))

	if IsOnCurve(address[:]) {
		return account.PublicKey{}, fault.ErrInvalidProgramAddress
	}
	return address, nil
}

// Find - search bumps from 255 down and return the first off-curve address
func (p ProgramAddress) Find(seeds [][]byte, program account.PublicKey) (account.PublicKey, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump > 0; bump -= 1 {
		withBump[len(seeds)] = []byte{byte(bump)}
		address, err := p.Create(withBump, program)
		if nil == err {
			return address, byte(bump), nil
		}
		if err != fault.ErrInvalidProgramAddress {
			return account.PublicKey{}, 0, err
		}
	}
	return account.PublicKey{}, 0, fault.ErrNoProgramAddress
}

// IsOnCurve - true if the bytes decode to an ed25519 point
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// NumericSeed - the 8 byte little-endian form used for nonces and prices
func NumericSeed(value uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, value)
	return b
}

// AuthoritySeeds - seeds for a buffer owned by authority
func AuthoritySeeds(authority account.PublicKey, nonce []byte) [][]byte {
	return [][]byte{AuthorityLabel, authority.Bytes(), nonce}
}

// VendingSeeds - seeds for a buffer sold for price units of mint
func VendingSeeds(mint account.PublicKey, price []byte) [][]byte {
	return [][]byte{VendingLabel, mint.Bytes(), price}
}
