// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/ledger"
)

// ToSolana - the same instruction as a solana-go instruction
func ToSolana(ix ledger.Instruction) *solana.GenericInstruction {
	accounts := make(solana.AccountMetaSlice, 0, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		accounts = append(accounts, solana.NewAccountMeta(solana.PublicKey(meta.Key), meta.IsWritable, meta.IsSigner))
	}
	return solana.NewInstruction(solana.PublicKey(ix.Program), accounts, ix.Data)
}

// FromSolana - convert any solana-go instruction for local execution
func FromSolana(ix solana.Instruction) (ledger.Instruction, error) {
	data, err := ix.Data()
	if nil != err {
		return ledger.Instruction{}, err
	}

	metas := ix.Accounts()
	accounts := make([]ledger.AccountMeta, 0, len(metas))
	for _, meta := range metas {
		accounts = append(accounts, ledger.AccountMeta{
			Key:        account.PublicKey(meta.PublicKey),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}
	return ledger.Instruction{
		Program:  account.PublicKey(ix.ProgramID()),
		Accounts: accounts,
		Data:     data,
	}, nil
}
