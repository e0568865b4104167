// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/echobuffer/fault"
)

// Unpack - turn a byte slice into an instruction
//
// the whole slice must be consumed, trailing bytes are an error
//
// must cast result to correct type
//
// e.g.
//   switch ix := result.(type) {
//   case *instruction.Echo:
func (packed Packed) Unpack() (Instruction, error) {

	if 0 == len(packed) {
		return nil, fault.ErrInvalidInstructionData
	}

	n := tagSize
	var result Instruction

unpack_switch:
	switch TagType(packed[0]) {

	case EchoTag:
		data, length, ok := unpackData(packed[n:])
		if !ok {
			break unpack_switch
		}
		n += length
		result = &Echo{Data: data}

	case InitializeAuthorizedEchoTag:
		seed, size, length, ok := unpackTwo(packed[n:])
		if !ok {
			break unpack_switch
		}
		n += length
		result = &InitializeAuthorizedEcho{
			BufferSeed: seed,
			BufferSize: size,
		}

	case AuthorizedEchoTag:
		data, length, ok := unpackData(packed[n:])
		if !ok {
			break unpack_switch
		}
		n += length
		result = &AuthorizedEcho{Data: data}

	case InitializeVendingMachineTag:
		price, size, length, ok := unpackTwo(packed[n:])
		if !ok {
			break unpack_switch
		}
		n += length
		result = &InitializeVendingMachine{
			Price:      price,
			BufferSize: size,
		}

	case VendingMachineEchoTag:
		data, length, ok := unpackData(packed[n:])
		if !ok {
			break unpack_switch
		}
		n += length
		result = &VendingMachineEcho{Data: data}

	default:
		return nil, fault.ErrInvalidInstructionData
	}

	if nil == result || n != len(packed) {
		return nil, fault.ErrInvalidInstructionData
	}
	return result, nil
}

// length prefixed byte array, the data is copied
func unpackData(b []byte) ([]byte, int, bool) {
	if len(b) < lengthSize {
		return nil, 0, false
	}
	length := uint64(binary.LittleEndian.Uint32(b))
	if length > uint64(len(b)-lengthSize) {
		return nil, 0, false
	}
	data := make([]byte, length)
	copy(data, b[lengthSize:])
	return data, lengthSize + int(length), true
}

// two little-endian 64 bit values
func unpackTwo(b []byte) (uint64, uint64, int, bool) {
	if len(b) < 2*uint64Size {
		return 0, 0, 0, false
	}
	first := binary.LittleEndian.Uint64(b)
	second := binary.LittleEndian.Uint64(b[uint64Size:])
	return first, second, 2 * uint64Size, true
}
