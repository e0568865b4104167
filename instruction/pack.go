// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/echobuffer/fault"
)

// Pack - Echo
func (ix *Echo) Pack() (Packed, error) {
	return packData(EchoTag, ix.Data)
}

// Pack - InitializeAuthorizedEcho
func (ix *InitializeAuthorizedEcho) Pack() (Packed, error) {
	return packTwo(InitializeAuthorizedEchoTag, ix.BufferSeed, ix.BufferSize), nil
}

// Pack - AuthorizedEcho
func (ix *AuthorizedEcho) Pack() (Packed, error) {
	return packData(AuthorizedEchoTag, ix.Data)
}

// Pack - InitializeVendingMachine
func (ix *InitializeVendingMachine) Pack() (Packed, error) {
	return packTwo(InitializeVendingMachineTag, ix.Price, ix.BufferSize), nil
}

// Pack - VendingMachineEcho
func (ix *VendingMachineEcho) Pack() (Packed, error) {
	return packData(VendingMachineEchoTag, ix.Data)
}

// tag followed by a length prefixed byte array
func packData(tag TagType, data []byte) (Packed, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fault.ErrInvalidInstructionData
	}
	packed := make(Packed, tagSize+lengthSize, tagSize+lengthSize+len(data))
	packed[0] = byte(tag)
	binary.LittleEndian.PutUint32(packed[tagSize:], uint32(len(data)))
	return append(packed, data...), nil
}

// tag followed by two little-endian 64 bit values
func packTwo(tag TagType, first uint64, second uint64) Packed {
	packed := make(Packed, tagSize+2*uint64Size)
	packed[0] = byte(tag)
	binary.LittleEndian.PutUint64(packed[tagSize:], first)
	binary.LittleEndian.PutUint64(packed[tagSize+uint64Size:], second)
	return packed
}
