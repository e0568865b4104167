// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/instruction"
	"github.com/bitmark-inc/echobuffer/processor"
)

func echoBuffer(size int) *processor.AccountInfo {
	return &processor.AccountInfo{
		Key:        account.PublicKey{0xee},
		IsWritable: true,
		Owner:      programID,
		Data:       make([]byte, size),
	}
}

func TestEchoBlankBuffer(t *testing.T) {
	p, _ := setupProcessor(t)

	b := echoBuffer(20)
	err := p.Process(programID, []*processor.AccountInfo{b}, pack(t, &instruction.Echo{Data: []byte{1, 2, 3}}))
	assert.Nil(t, err, "echo")
	assert.Equal(t, []byte{3, 0, 0, 0, 1, 2, 3}, b.Data[:7], "content")
	assert.Equal(t, make([]byte, 13), b.Data[7:], "rest untouched")
}

func TestEchoNonZeroBuffer(t *testing.T) {
	p, _ := setupProcessor(t)

	payloads := [][]byte{nil, {}, {0}, {1, 2, 3}, make([]byte, 100)}
	for i, payload := range payloads {
		b := echoBuffer(20)
		b.Data[19] = 1
		before := append([]byte{}, b.Data...)

		err := p.Process(programID, []*processor.AccountInfo{b}, pack(t, &instruction.Echo{Data: payload}))
		assert.Equal(t, fault.ErrBufferNonZero, err, "%d: error", i)
		assert.True(t, fault.IsErrBuffer(err), "%d: class", i)
		assert.Equal(t, before, b.Data, "%d: buffer changed", i)
	}
}

// a second echo into the same buffer is refused
func TestEchoTwice(t *testing.T) {
	p, _ := setupProcessor(t)

	b := echoBuffer(16)
	accounts := []*processor.AccountInfo{b}
	assert.Nil(t, p.Process(programID, accounts, pack(t, &instruction.Echo{Data: []byte("one")})), "first")
	assert.Equal(t, fault.ErrBufferNonZero, p.Process(programID, accounts, pack(t, &instruction.Echo{Data: []byte("two")})), "second")
}

func TestEchoTruncation(t *testing.T) {
	p, _ := setupProcessor(t)

	const size = 12
	capacity := size - 4
	for i, length := range []int{capacity - 1, capacity, capacity + 1, 4 * capacity} {
		payload := make([]byte, length)
		for j := range payload {
			payload[j] = byte(j + 1)
		}
		b := echoBuffer(size)
		err := p.Process(programID, []*processor.AccountInfo{b}, pack(t, &instruction.Echo{Data: payload}))
		if nil != err {
			t.Fatalf("%d: error: %s", i, err)
		}

		expected := length
		if expected > capacity {
			expected = capacity
		}
		assert.Equal(t, byte(expected), b.Data[0], "%d: length prefix", i)
		assert.Equal(t, payload[:expected], b.Data[4:4+expected], "%d: content", i)
	}
}

func TestEchoBufferTooSmall(t *testing.T) {
	p, _ := setupProcessor(t)

	err := p.Process(programID, []*processor.AccountInfo{echoBuffer(3)}, pack(t, &instruction.Echo{Data: []byte{1}}))
	assert.Equal(t, fault.ErrBufferTooSmall, err, "short buffer")
}
