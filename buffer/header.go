// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package buffer

import (
	"encoding/binary"

	"github.com/bitmark-inc/echobuffer/fault"
)

// header sizes
const (
	ValueSize  = 8
	HeaderSize = 1 + ValueSize

	// smallest buffer that can hold an envelope and a header
	MinimumGatedSize = EnvelopeSize + HeaderSize
)

// Header - prefix of a gated buffer's content
type Header struct {
	Bump  uint8
	Value uint64 // nonce or price
}

// EncodeHeader - bump followed by all 8 bytes of the value
func EncodeHeader(bump uint8, value uint64) []byte {
	b := make([]byte, HeaderSize)
	b[0] = bump
	binary.LittleEndian.PutUint64(b[1:], value)
	return b
}

// Bytes - encoded form of a header
func (h Header) Bytes() []byte {
	return EncodeHeader(h.Bump, h.Value)
}

// DecodeHeader - read the header from a whole buffer (envelope included)
func DecodeHeader(slot []byte) (Header, error) {
	b, err := CarryForward(slot)
	if nil != err {
		return Header{}, err
	}
	h := Header{
		Bump:  b[0],
		Value: binary.LittleEndian.Uint64(b[1:]),
	}
	return h, nil
}

// ValueSeed - the stored value bytes exactly as they were written,
// for use as a derivation seed
func ValueSeed(slot []byte) ([]byte, error) {
	b, err := CarryForward(slot)
	if nil != err {
		return nil, err
	}
	return b[1:], nil
}

// CarryForward - copy of the header bytes so a write can re-emit them
func CarryForward(slot []byte) ([]byte, error) {
	if len(slot) < MinimumGatedSize {
		return nil, fault.ErrBufferTooSmall
	}
	b := make([]byte, HeaderSize)
	copy(b, slot[EnvelopeSize:MinimumGatedSize])
	return b, nil
}

// WriteGated - header followed by payload, the payload is truncated so
// the header always survives
func WriteGated(slot []byte, header []byte, payload []byte) (int, error) {
	if len(slot) < MinimumGatedSize || HeaderSize != len(header) {
		return 0, fault.ErrBufferTooSmall
	}
	content := make([]byte, 0, len(header)+len(payload))
	content = append(content, header...)
	content = append(content, payload...)
	return WriteEnvelope(slot, content)
}
