// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package buffer

import (
	"encoding/binary"

	"github.com/bitmark-inc/echobuffer/fault"
)

// EnvelopeSize - bytes taken by the length prefix
const EnvelopeSize = 4

// Available - content bytes that fit in a buffer of the given size
func Available(size int) int {
	if size < EnvelopeSize {
		return 0
	}
	return size - EnvelopeSize
}

// WriteEnvelope - store content as a length prefixed array
//
// content that does not fit is silently truncated; returns the number
// of content bytes written
func WriteEnvelope(slot []byte, content []byte) (int, error) {
	if len(slot) < EnvelopeSize {
		return 0, fault.ErrBufferTooSmall
	}
	n := len(content)
	if available := Available(len(slot)); n > available {
		n = available
	}
	binary.LittleEndian.PutUint32(slot[:EnvelopeSize], uint32(n))
	copy(slot[EnvelopeSize:], content[:n])
	return n, nil
}

// ReadEnvelope - the content of a buffer, bounded by its capacity
func ReadEnvelope(slot []byte) ([]byte, error) {
	if len(slot) < EnvelopeSize {
		return nil, fault.ErrBufferTooSmall
	}
	n := int(binary.LittleEndian.Uint32(slot[:EnvelopeSize]))
	if n > Available(len(slot)) {
		n = Available(len(slot))
	}
	return slot[EnvelopeSize : EnvelopeSize+n], nil
}

// IsBlank - the anti-overwrite guard for unrestricted buffers
//
// bytes are summed with 8 bit wrap-around, so crafted data summing to
// zero modulo 256 also passes
func IsBlank(slot []byte) bool {
	sum := byte(0)
	for _, b := range slot {
		sum += b
	}
	return 0 == sum
}
