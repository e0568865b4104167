// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/ledger"
)

func TestTransactionSignatures(t *testing.T) {
	payer := newKey(t)
	other := newKey(t)

	ix := ledger.Instruction{
		Program: programID,
		Accounts: []ledger.AccountMeta{
			{Key: payer.Account(), IsSigner: true, IsWritable: true},
			{Key: other.Account(), IsSigner: true},
			{Key: payer.Account(), IsSigner: true},
		},
		Data: []byte{0, 1, 0, 0, 0, 7},
	}
	tx := ledger.NewTransaction(ix)
	assert.Equal(t, []account.PublicKey{payer.Account(), other.Account()}, tx.RequiredSigners(), "signers")

	_, err := tx.Verify()
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "unsigned")

	tx.Sign(payer)
	_, err = tx.Verify()
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "half signed")

	tx.Sign(other, payer)
	assert.Equal(t, 2, len(tx.Signatures), "re-signing replaces")
	signed, err := tx.Verify()
	require.Nil(t, err, "verify")
	assert.True(t, signed[payer.Account()], "payer")
	assert.True(t, signed[other.Account()], "other")

	// any change to the message breaks the signatures
	tx.Instructions[0].Data[5] = 8
	_, err = tx.Verify()
	assert.Equal(t, fault.ErrInvalidSignature, err, "tampered")
}

func TestEmptyTransaction(t *testing.T) {
	_, err := ledger.NewTransaction().Verify()
	assert.Equal(t, fault.ErrEmptyTransaction, err, "empty")
}
