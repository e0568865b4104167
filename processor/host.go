// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/derive"
)

// AccountInfo - one entry of the accounts list passed to an instruction
//
// IsSigner has already been verified by the host
type AccountInfo struct {
	Key        account.PublicKey
	IsSigner   bool
	IsWritable bool
	Lamports   uint64
	Owner      account.PublicKey
	Data       []byte
}

// CreateAccount - request to the system program
type CreateAccount struct {
	Payer    *AccountInfo
	Account  *AccountInfo
	Lamports uint64
	Space    uint64
	Owner    account.PublicKey
}

// Burn - request to the token program
type Burn struct {
	Holding   *AccountInfo
	Mint      *AccountInfo
	Authority *AccountInfo
	Amount    uint64
}

//go:generate mockgen -destination=mocks/host.go -package=mocks github.com/bitmark-inc/echobuffer/processor Host

// Host - the collaborators provided by the ledger
//
// CreateAccount must leave request.Account with Space zero bytes of
// Data owned by request.Owner; proof is non-nil when the new address
// is a derived address that cannot sign for itself.
type Host interface {
	CreateAccount(request *CreateAccount, proof *derive.Proof) error
	Burn(request *Burn) error
	MinimumBalance(size uint64) uint64
}

// Configuration - identities of the well-known programs
type Configuration struct {
	SystemProgram account.PublicKey
	TokenProgram  account.PublicKey
	Deriver       derive.Deriver // nil selects derive.Default
}
