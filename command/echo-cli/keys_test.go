// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/echobuffer/account"
)

func TestKeyFiles(t *testing.T) {
	directory := t.TempDir()

	privateKey, err := account.NewPrivateKey()
	require.Nil(t, err, "new key")

	_, err = saveKey(directory, "alice", privateKey)
	require.Nil(t, err, "save")

	_, err = saveKey(directory, "alice", privateKey)
	assert.Equal(t, ErrKeyExists, err, "second save")

	loaded, err := loadKey(directory, "alice")
	require.Nil(t, err, "load")
	assert.Equal(t, privateKey.Account(), loaded.Account(), "account")

	_, err = loadKey(directory, "bob")
	assert.Equal(t, ErrKeyNotFound, err, "missing key")

	_, err = loadKey(directory, "../alice")
	assert.Equal(t, ErrInvalidKeyName, err, "path as name")
}

func TestResolveAddress(t *testing.T) {
	directory := t.TempDir()

	privateKey, err := account.NewPrivateKey()
	require.Nil(t, err, "new key")
	_, err = saveKey(directory, "mint", privateKey)
	require.Nil(t, err, "save")

	address, err := resolveAddress(directory, "mint")
	require.Nil(t, err, "by name")
	assert.Equal(t, privateKey.Account(), address, "named address")

	other, err := account.NewPrivateKey()
	require.Nil(t, err, "new key")
	address, err = resolveAddress(directory, other.Account().String())
	require.Nil(t, err, "by base58")
	assert.Equal(t, other.Account(), address, "base58 address")

	_, err = resolveAddress(directory, "")
	assert.Equal(t, ErrRequiredAccount, err, "blank")

	_, err = resolveAddress(directory, "nosuchkey")
	assert.NotNil(t, err, "neither name nor address")
}

func TestChecks(t *testing.T) {
	n, err := checkSize("64")
	assert.Nil(t, err, "size")
	assert.Equal(t, uint64(64), n, "size value")

	_, err = checkSize("0")
	assert.Equal(t, ErrZeroSize, err, "zero size")

	_, err = checkSize("")
	assert.Equal(t, ErrRequiredSize, err, "blank size")

	_, err = checkNonce("-1")
	assert.NotNil(t, err, "negative nonce")

	n, err = checkPrice("0")
	assert.Nil(t, err, "zero price")
	assert.Equal(t, uint64(0), n, "free")

	_, err = checkData("")
	assert.Equal(t, ErrRequiredData, err, "blank data")

	for _, name := range []string{"alice", "Key_2", "a-b"} {
		_, err := checkKeyName(name)
		assert.Nil(t, err, name)
	}
	for _, name := range []string{"a b", "a/b", "a.key"} {
		_, err := checkKeyName(name)
		assert.Equal(t, ErrInvalidKeyName, err, name)
	}
}
