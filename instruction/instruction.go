// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// TagType - type code for instructions
type TagType uint8

// enumerate the possible instructions
// this is encoded as a single byte at start of "Packed"
// the order is part of the wire format
const (
	EchoTag                     = TagType(iota) // write to a blank buffer
	InitializeAuthorizedEchoTag = TagType(iota) // create an authority bound buffer
	AuthorizedEchoTag           = TagType(iota) // write by the authority
	InitializeVendingMachineTag = TagType(iota) // create a price bound buffer
	VendingMachineEchoTag       = TagType(iota) // write after burning the price

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	tagSize    = 1
	lengthSize = 4
	uint64Size = 8
)

// Echo - write data to a buffer whose bytes sum to zero
type Echo struct {
	Data []byte `json:"data"`
}

// InitializeAuthorizedEcho - create a buffer at the address derived
// from the authority and nonce
type InitializeAuthorizedEcho struct {
	BufferSeed uint64 `json:"bufferSeed"` // nonce chosen by the authority
	BufferSize uint64 `json:"bufferSize"` // total bytes, envelope included
}

// AuthorizedEcho - write data to an authority bound buffer
type AuthorizedEcho struct {
	Data []byte `json:"data"`
}

// InitializeVendingMachine - create a buffer at the address derived
// from the mint and price
type InitializeVendingMachine struct {
	Price      uint64 `json:"price"`      // units of mint burned per write
	BufferSize uint64 `json:"bufferSize"` // total bytes, envelope included
}

// VendingMachineEcho - write data to a price bound buffer
type VendingMachineEcho struct {
	Data []byte `json:"data"`
}

// Type - returns the instruction type code
func (packed Packed) Type() TagType {
	if 0 == len(packed) || packed[0] >= byte(InvalidTag) {
		return InvalidTag
	}
	return TagType(packed[0])
}

// Name - returns the name of an instruction as a string
func Name(instruction interface{}) (string, bool) {
	switch instruction.(type) {
	case *Echo, Echo:
		return "Echo", true

	case *InitializeAuthorizedEcho, InitializeAuthorizedEcho:
		return "InitializeAuthorizedEcho", true

	case *AuthorizedEcho, AuthorizedEcho:
		return "AuthorizedEcho", true

	case *InitializeVendingMachine, InitializeVendingMachine:
		return "InitializeVendingMachine", true

	case *VendingMachineEcho, VendingMachineEcho:
		return "VendingMachineEcho", true

	default:
		return "*unknown*", false
	}
}
