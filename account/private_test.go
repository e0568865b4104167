// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/echobuffer/account"
)

func TestSignAndVerify(t *testing.T) {
	privateKey, err := account.NewPrivateKey()
	require.Nil(t, err, "new private key")

	message := []byte("echo")
	signature := privateKey.Sign(message)

	assert.Nil(t, signature.Verify(privateKey.Account(), message), "valid signature")
	assert.NotNil(t, signature.Verify(privateKey.Account(), []byte("other")), "wrong message")

	other, err := account.NewPrivateKey()
	require.Nil(t, err, "second private key")
	assert.NotNil(t, signature.Verify(other.Account(), message), "wrong key")
}

func TestPrivateKeyText(t *testing.T) {
	privateKey, err := account.NewPrivateKey()
	require.Nil(t, err, "new private key")

	text, err := privateKey.MarshalText()
	require.Nil(t, err, "marshal")

	restored, err := account.PrivateKeyFromBase58(string(text))
	require.Nil(t, err, "decode")
	assert.Equal(t, privateKey.Account(), restored.Account(), "same account")

	seedOnly, err := account.PrivateKeyFromBytes(privateKey.Bytes()[:32])
	require.Nil(t, err, "seed only")
	assert.Equal(t, privateKey.Account(), seedOnly.Account(), "same account from seed")

	_, err = account.PrivateKeyFromBytes([]byte{1, 2, 3})
	assert.NotNil(t, err, "short key")
}
