// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/processor"
)

// the collaborators seen by one instruction
type invocation struct {
	ledger  *Ledger
	program account.PublicKey

	// accounts modified by the system or token program on behalf of
	// the invoking program
	touched map[*processor.AccountInfo]struct{}
}

// MinimumBalance - lamports for an account of size bytes to be rent exempt
func (l *Ledger) MinimumBalance(size uint64) uint64 {
	c := l.configuration
	return (AccountStorageOverhead + size) * c.LamportsPerByteYear * c.ExemptionThreshold
}

func (inv *invocation) MinimumBalance(size uint64) uint64 {
	return inv.ledger.MinimumBalance(size)
}

// CreateAccount - the system program's create account
//
// the new address must either sign or be a derived address of the
// invoking program proven by the seeds
func (inv *invocation) CreateAccount(request *processor.CreateAccount, proof *derive.Proof) error {
	l := inv.ledger
	payer := request.Payer
	newAccount := request.Account

	if !payer.IsSigner {
		return fault.ErrMissingRequiredSignature
	}

	if !newAccount.IsSigner {
		if nil == proof || proof.Program != inv.program {
			return fault.ErrMissingRequiredSignature
		}
		address, err := proof.Address(l.deriver)
		if nil != err || address != newAccount.Key {
			return fault.ErrMissingRequiredSignature
		}
	}

	if !payer.IsWritable || !newAccount.IsWritable {
		return fault.ErrReadonlyDataModified
	}

	if 0 != newAccount.Lamports || 0 != len(newAccount.Data) || newAccount.Owner != l.configuration.SystemProgram {
		l.log.Warnf("create: %s  already in use", newAccount.Key)
		return fault.ErrAccountAlreadyInUse
	}

	if request.Space > MaxAccountSize {
		return fault.ErrAccountDataTooLarge
	}

	if payer.Lamports < request.Lamports {
		l.log.Warnf("create: %s  payer: %s  has: %d  needs: %d", newAccount.Key, payer.Key, payer.Lamports, request.Lamports)
		return fault.ErrInsufficientFunds
	}

	payer.Lamports -= request.Lamports
	newAccount.Lamports = request.Lamports
	newAccount.Data = make([]byte, request.Space)
	newAccount.Owner = request.Owner

	inv.touched[payer] = struct{}{}
	inv.touched[newAccount] = struct{}{}

	l.log.Infof("created: %s  owner: %s  space: %d  lamports: %d", newAccount.Key, request.Owner, request.Space, request.Lamports)
	return nil
}

// a system program instruction submitted directly in a transaction
func (inv *invocation) system(infos []*processor.AccountInfo, data []byte) error {
	metas := make([]*solana.AccountMeta, len(infos))
	for i, info := range infos {
		metas[i] = solana.NewAccountMeta(solana.PublicKey(info.Key), info.IsWritable, info.IsSigner)
	}

	decoded, err := system.DecodeInstruction(metas, data)
	if nil != err {
		inv.ledger.log.Warnf("system instruction: %s", err)
		return fault.ErrInvalidInstructionData
	}

	switch ix := decoded.Impl.(type) {
	case *system.CreateAccount:
		if len(infos) < 2 {
			return fault.ErrNotEnoughAccountKeys
		}
		request := &processor.CreateAccount{
			Payer:    infos[0],
			Account:  infos[1],
			Lamports: *ix.Lamports,
			Space:    *ix.Space,
			Owner:    account.PublicKey(*ix.Owner),
		}
		return inv.CreateAccount(request, nil)

	default:
		return fault.ErrUnsupportedProgramInstruct
	}
}
