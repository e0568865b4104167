// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/buffer"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/instruction"
	"github.com/bitmark-inc/echobuffer/processor"
)

type authorizedAccounts struct {
	buffer    *processor.AccountInfo
	authority *processor.AccountInfo
	system    *processor.AccountInfo
}

func newAuthorizedAccounts(t *testing.T, authority account.PublicKey, nonce uint64) authorizedAccounts {
	derivation, err := derive.Derive(derive.Default, derive.AuthoritySeeds(authority, derive.NumericSeed(nonce)), programID)
	require.Nil(t, err, "derive")

	return authorizedAccounts{
		buffer:    &processor.AccountInfo{Key: derivation.Address, IsWritable: true},
		authority: &processor.AccountInfo{Key: authority, IsSigner: true, Lamports: 1000000000},
		system:    &processor.AccountInfo{Key: systemProgram},
	}
}

func (a authorizedAccounts) initList() []*processor.AccountInfo {
	return []*processor.AccountInfo{a.buffer, a.authority, a.system}
}

func (a authorizedAccounts) echoList() []*processor.AccountInfo {
	return []*processor.AccountInfo{a.buffer, a.authority}
}

func TestInitializeAuthorizedEcho(t *testing.T) {
	p, host := setupProcessor(t)

	const nonce = 42
	const size = 32
	a := newAuthorizedAccounts(t, authorityKey, nonce)

	host.EXPECT().MinimumBalance(uint64(size)).Return(uint64(1113600)).Times(1)
	host.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(request *processor.CreateAccount, proof *derive.Proof) error {
			assert.Equal(t, a.authority, request.Payer, "payer")
			assert.Equal(t, a.buffer, request.Account, "new account")
			assert.Equal(t, uint64(1113600), request.Lamports, "lamports")
			assert.Equal(t, uint64(size), request.Space, "space")
			assert.Equal(t, programID, request.Owner, "owner")

			require.NotNil(t, proof, "proof")
			address, err := proof.Address(derive.Default)
			assert.Nil(t, err, "proof address")
			assert.Equal(t, a.buffer.Key, address, "proof must resolve to the buffer")
			return allocate(request, proof)
		}).Times(1)

	err := p.Process(programID, a.initList(), pack(t, &instruction.InitializeAuthorizedEcho{BufferSeed: nonce, BufferSize: size}))
	require.Nil(t, err, "initialise")

	h, err := buffer.DecodeHeader(a.buffer.Data)
	require.Nil(t, err, "decode header")
	assert.Equal(t, uint64(nonce), h.Value, "nonce")
	_, bump, _ := derive.Default.Find(derive.AuthoritySeeds(authorityKey, derive.NumericSeed(nonce)), programID)
	assert.Equal(t, bump, h.Bump, "bump")
	assert.Equal(t, []byte{9, 0, 0, 0}, a.buffer.Data[:4], "envelope")
	assert.Equal(t, make([]byte, size-13), a.buffer.Data[13:], "payload area is blank")
}

func TestInitializeAuthorizedEchoPreconditions(t *testing.T) {
	const nonce = 42
	const size = 32
	data := instruction.InitializeAuthorizedEcho{BufferSeed: nonce, BufferSize: size}

	tests := []struct {
		name   string
		modify func(a *authorizedAccounts, ix *instruction.InitializeAuthorizedEcho)
		err    error
	}{
		{
			name:   "missing signer",
			modify: func(a *authorizedAccounts, ix *instruction.InitializeAuthorizedEcho) { a.authority.IsSigner = false },
			err:    fault.ErrMissingRequiredSignature,
		},
		{
			name:   "wrong system program",
			modify: func(a *authorizedAccounts, ix *instruction.InitializeAuthorizedEcho) { a.system.Key = tokenProgram },
			err:    fault.ErrInvalidSystemProgram,
		},
		{
			name:   "buffer derived from another nonce",
			modify: func(a *authorizedAccounts, ix *instruction.InitializeAuthorizedEcho) { ix.BufferSeed = nonce + 1 },
			err:    fault.ErrIncorrectSeeds,
		},
		{
			name:   "buffer derived for another authority",
			modify: func(a *authorizedAccounts, ix *instruction.InitializeAuthorizedEcho) { a.authority.Key = otherKey },
			err:    fault.ErrIncorrectSeeds,
		},
		{
			name:   "buffer too small for header",
			modify: func(a *authorizedAccounts, ix *instruction.InitializeAuthorizedEcho) { ix.BufferSize = buffer.MinimumGatedSize - 1 },
			err:    fault.ErrBufferTooSmall,
		},
	}

	for _, item := range tests {
		p, _ := setupProcessor(t)
		a := newAuthorizedAccounts(t, authorityKey, nonce)
		ix := data
		item.modify(&a, &ix)

		// no host call is expected: any would fail the mock
		err := p.Process(programID, a.initList(), pack(t, &ix))
		assert.Equal(t, item.err, err, "%s: error", item.name)
		assert.Nil(t, a.buffer.Data, "%s: buffer created", item.name)
	}
}

func TestInitializeAuthorizedEchoCreateFails(t *testing.T) {
	p, host := setupProcessor(t)
	a := newAuthorizedAccounts(t, authorityKey, 1)

	createError := fault.ErrAccountAlreadyInUse
	host.EXPECT().MinimumBalance(gomock.Any()).Return(uint64(1)).Times(1)
	host.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(createError).Times(1)

	err := p.Process(programID, a.initList(), pack(t, &instruction.InitializeAuthorizedEcho{BufferSeed: 1, BufferSize: 32}))
	assert.True(t, fault.IsErrExternal(err), "external: %v", err)
	assert.True(t, errors.Is(err, createError), "cause kept: %v", err)
}

func initializedAuthorized(t *testing.T, nonce uint64, size uint64) (*processor.Processor, authorizedAccounts) {
	p, host := setupProcessor(t)
	a := newAuthorizedAccounts(t, authorityKey, nonce)

	host.EXPECT().MinimumBalance(gomock.Any()).Return(uint64(1)).Times(1)
	host.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(allocate).Times(1)

	err := p.Process(programID, a.initList(), pack(t, &instruction.InitializeAuthorizedEcho{BufferSeed: nonce, BufferSize: size}))
	require.Nil(t, err, "initialise")
	return p, a
}

func TestAuthorizedEcho(t *testing.T) {
	p, a := initializedAuthorized(t, 2187, 32)
	header := append([]byte{}, a.buffer.Data[4:13]...)

	for i, message := range []string{"hello", "a longer message", "x"} {
		err := p.Process(programID, a.echoList(), pack(t, &instruction.AuthorizedEcho{Data: []byte(message)}))
		require.Nil(t, err, "%d: echo", i)

		content, err := buffer.ReadEnvelope(a.buffer.Data)
		require.Nil(t, err, "%d: read", i)
		assert.Equal(t, header, content[:buffer.HeaderSize], "%d: header changed", i)
		assert.Equal(t, message, string(content[buffer.HeaderSize:]), "%d: payload", i)
	}
}

func TestAuthorizedEchoTruncatesPayloadOnly(t *testing.T) {
	const size = 24
	room := size - buffer.MinimumGatedSize

	for i, length := range []int{room - 1, room, room + 1, 3 * room} {
		p, a := initializedAuthorized(t, 5, size)
		header := append([]byte{}, a.buffer.Data[4:13]...)

		payload := make([]byte, length)
		for j := range payload {
			payload[j] = byte(0x10 + j)
		}
		err := p.Process(programID, a.echoList(), pack(t, &instruction.AuthorizedEcho{Data: payload}))
		require.Nil(t, err, "%d: echo", i)

		expected := length
		if expected > room {
			expected = room
		}
		assert.Equal(t, byte(buffer.HeaderSize+expected), a.buffer.Data[0], "%d: length prefix", i)
		assert.Equal(t, header, a.buffer.Data[4:13], "%d: header", i)
		assert.Equal(t, payload[:expected], a.buffer.Data[13:13+expected], "%d: payload", i)
	}
}

func TestAuthorizedEchoWrongAuthority(t *testing.T) {
	p, a := initializedAuthorized(t, 42, 32)
	before := append([]byte{}, a.buffer.Data...)

	intruder := &processor.AccountInfo{Key: otherKey, IsSigner: true}
	err := p.Process(programID, []*processor.AccountInfo{a.buffer, intruder}, pack(t, &instruction.AuthorizedEcho{Data: []byte("nope")}))
	assert.Equal(t, fault.ErrIncorrectSeeds, err, "different signer")
	assert.True(t, fault.IsErrInvalid(err), "invalid argument class")
	assert.Equal(t, before, a.buffer.Data, "buffer changed")
}

func TestAuthorizedEchoMissingSignature(t *testing.T) {
	p, a := initializedAuthorized(t, 42, 32)
	before := append([]byte{}, a.buffer.Data...)

	a.authority.IsSigner = false
	err := p.Process(programID, a.echoList(), pack(t, &instruction.AuthorizedEcho{Data: []byte("nope")}))
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "not signed")
	assert.True(t, fault.IsErrAuthorization(err), "authorization class")
	assert.Equal(t, before, a.buffer.Data, "buffer changed")
}

// an ordinary buffer whose header happens to parse is still rejected
func TestAuthorizedEchoForeignBuffer(t *testing.T) {
	p, _ := setupProcessor(t)

	foreign := echoBuffer(32)
	copy(foreign.Data, []byte{9, 0, 0, 0, 255, 42})
	authority := &processor.AccountInfo{Key: authorityKey, IsSigner: true}

	err := p.Process(programID, []*processor.AccountInfo{foreign, authority}, pack(t, &instruction.AuthorizedEcho{Data: []byte("x")}))
	assert.True(t, fault.IsErrInvalid(err), "foreign buffer: %v", err)

	short := echoBuffer(8)
	err = p.Process(programID, []*processor.AccountInfo{short, authority}, pack(t, &instruction.AuthorizedEcho{Data: []byte("x")}))
	assert.Equal(t, fault.ErrBufferTooSmall, err, "short buffer")
}
