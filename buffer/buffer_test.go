// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/echobuffer/buffer"
	"github.com/bitmark-inc/echobuffer/fault"
)

func TestWriteEnvelope(t *testing.T) {
	slot := make([]byte, 20)
	n, err := buffer.WriteEnvelope(slot, []byte{1, 2, 3})
	require.Nil(t, err, "write")
	assert.Equal(t, 3, n, "written")
	assert.Equal(t, []byte{3, 0, 0, 0, 1, 2, 3, 0}, slot[:8], "slot bytes")

	content, err := buffer.ReadEnvelope(slot)
	require.Nil(t, err, "read")
	assert.Equal(t, []byte{1, 2, 3}, content, "content")
}

// payloads around the capacity boundary
func TestEnvelopeTruncation(t *testing.T) {
	const size = 16
	capacity := size - buffer.EnvelopeSize

	tests := []struct {
		length   int
		expected int
	}{
		{0, 0},
		{capacity - 1, capacity - 1},
		{capacity, capacity},
		{capacity + 1, capacity},
		{3 * capacity, capacity},
	}

	for i, item := range tests {
		payload := make([]byte, item.length)
		for j := range payload {
			payload[j] = byte(j + 1)
		}
		slot := make([]byte, size)
		n, err := buffer.WriteEnvelope(slot, payload)
		if nil != err {
			t.Fatalf("%d: error: %s", i, err)
		}
		if item.expected != n {
			t.Errorf("%d: written: %d  expected: %d", i, n, item.expected)
		}
		content, _ := buffer.ReadEnvelope(slot)
		assert.Equal(t, payload[:item.expected], content, "%d: content", i)
	}
}

func TestEnvelopeTooSmall(t *testing.T) {
	_, err := buffer.WriteEnvelope(make([]byte, 3), nil)
	assert.Equal(t, fault.ErrBufferTooSmall, err, "write")

	_, err = buffer.ReadEnvelope(nil)
	assert.Equal(t, fault.ErrBufferTooSmall, err, "read")

	n, err := buffer.WriteEnvelope(make([]byte, 4), []byte{9})
	assert.Nil(t, err, "envelope only")
	assert.Equal(t, 0, n, "nothing fits")
}

func TestIsBlank(t *testing.T) {
	assert.True(t, buffer.IsBlank(make([]byte, 8)), "zero")
	assert.True(t, buffer.IsBlank(nil), "empty")
	assert.False(t, buffer.IsBlank([]byte{0, 0, 1}), "non zero")

	// documented limitation: the sum wraps
	assert.True(t, buffer.IsBlank([]byte{0x80, 0x80}), "wrapped sum")
}

func TestHeaderRoundTrip(t *testing.T) {
	values := []uint64{0, 42, 100, 2187, 0x0102030405060708, 0xff00000000000000}

	for i, value := range values {
		slot := make([]byte, 32)
		header := buffer.EncodeHeader(0xfe, value)
		require.Equal(t, buffer.HeaderSize, len(header), "%d: header size", i)

		_, err := buffer.WriteEnvelope(slot, header)
		require.Nil(t, err, "%d: write", i)

		h, err := buffer.DecodeHeader(slot)
		require.Nil(t, err, "%d: decode", i)
		assert.Equal(t, uint8(0xfe), h.Bump, "%d: bump", i)
		assert.Equal(t, value, h.Value, "%d: value", i)

		// the high byte is persisted too
		assert.Equal(t, byte(value>>56), slot[12], "%d: eighth value byte", i)
	}
}

func TestHeaderLayout(t *testing.T) {
	slot := make([]byte, 24)
	_, err := buffer.WriteEnvelope(slot, buffer.Header{Bump: 254, Value: 42}.Bytes())
	require.Nil(t, err, "write")

	expected := []byte{
		// envelope
		9, 0, 0, 0,
		// bump
		254,
		// nonce
		42, 0, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(t, expected, slot[:13], "layout")

	seed, err := buffer.ValueSeed(slot)
	require.Nil(t, err, "value seed")
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, seed, "seed bytes")
}

func TestWriteGatedKeepsHeader(t *testing.T) {
	const size = 20
	slot := make([]byte, size)
	header := buffer.EncodeHeader(7, 100)
	_, err := buffer.WriteEnvelope(slot, header)
	require.Nil(t, err, "init")

	payloadRoom := size - buffer.MinimumGatedSize
	for i, length := range []int{payloadRoom - 1, payloadRoom, payloadRoom + 1, 50} {
		carried, err := buffer.CarryForward(slot)
		require.Nil(t, err, "%d: carry", i)
		assert.Equal(t, header, carried, "%d: carried header", i)

		payload := make([]byte, length)
		for j := range payload {
			payload[j] = 0xaa
		}
		n, err := buffer.WriteGated(slot, carried, payload)
		require.Nil(t, err, "%d: write", i)

		expected := length
		if expected > payloadRoom {
			expected = payloadRoom
		}
		assert.Equal(t, buffer.HeaderSize+expected, n, "%d: written", i)
		assert.Equal(t, header, slot[4:13], "%d: header unchanged", i)
	}
}

func TestCarryForwardTooSmall(t *testing.T) {
	_, err := buffer.CarryForward(make([]byte, buffer.MinimumGatedSize-1))
	assert.Equal(t, fault.ErrBufferTooSmall, err, "short buffer")

	_, err = buffer.DecodeHeader(make([]byte, 5))
	assert.Equal(t, fault.ErrBufferTooSmall, err, "decode short buffer")
}
