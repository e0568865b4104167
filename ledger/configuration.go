// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/echobuffer/account"
)

// defaults for the rent calculation
const (
	DefaultLamportsPerByteYear = 3480
	DefaultExemptionThreshold  = 2

	// bytes of account metadata charged in addition to the data
	AccountStorageOverhead = 128

	// largest data area the system program will allocate
	MaxAccountSize = 10 * 1024 * 1024
)

// well-known program ids
var (
	DefaultSystemProgram = account.PublicKey(solana.SystemProgramID)
	DefaultTokenProgram  = account.PublicKey(solana.TokenProgramID)
)

// Configuration - ledger parameters
type Configuration struct {
	EchoProgram         account.PublicKey
	SystemProgram       account.PublicKey
	TokenProgram        account.PublicKey
	LamportsPerByteYear uint64
	ExemptionThreshold  uint64
}

// fill in zero fields with their defaults
func (c Configuration) withDefaults() Configuration {
	if c.SystemProgram.IsZero() {
		c.SystemProgram = DefaultSystemProgram
	}
	if c.TokenProgram.IsZero() {
		c.TokenProgram = DefaultTokenProgram
	}
	if 0 == c.LamportsPerByteYear {
		c.LamportsPerByteYear = DefaultLamportsPerByteYear
	}
	if 0 == c.ExemptionThreshold {
		c.ExemptionThreshold = DefaultExemptionThreshold
	}
	return c
}
