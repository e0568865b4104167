// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/processor"
	"github.com/bitmark-inc/echobuffer/storage"
)

// Burn - the token program's burn, all or nothing
func (inv *invocation) Burn(request *processor.Burn) error {
	l := inv.ledger
	token := l.configuration.TokenProgram

	if request.Holding.Owner != token || request.Mint.Owner != token {
		return fault.ErrInvalidAccountOwner
	}

	holding, err := unpackHolding(request.Holding.Data)
	if nil != err {
		return err
	}
	mint, err := unpackMint(request.Mint.Data)
	if nil != err {
		return err
	}

	if holding.Mint != request.Mint.Key {
		return fault.ErrMintMismatch
	}
	if holding.Owner != request.Authority.Key {
		return fault.ErrOwnerMismatch
	}
	if !request.Authority.IsSigner {
		return fault.ErrMissingRequiredSignature
	}
	if !request.Holding.IsWritable || !request.Mint.IsWritable {
		return fault.ErrReadonlyDataModified
	}

	if holding.Amount < request.Amount {
		l.log.Warnf("burn: %s  balance: %d  amount: %d", request.Holding.Key, holding.Amount, request.Amount)
		return fault.ErrInsufficientTokens
	}

	holding.Amount -= request.Amount
	mint.Supply -= request.Amount

	request.Holding.Data = pack(holding)
	request.Mint.Data = pack(mint)
	inv.touched[request.Holding] = struct{}{}
	inv.touched[request.Mint] = struct{}{}

	l.log.Infof("burnt: %d  from: %s  remaining: %d", request.Amount, request.Holding.Key, holding.Amount)
	return nil
}

// true if the address is used by any pool
func exists(trx storage.Transaction, key account.PublicKey) bool {
	return trx.Has(storage.Pool.Accounts, key[:]) ||
		trx.Has(storage.Pool.Mints, key[:]) ||
		trx.Has(storage.Pool.Holdings, key[:])
}

// CreateMint - a new token with zero supply
func (l *Ledger) CreateMint(mint account.PublicKey, authority account.PublicKey, decimals uint8) error {
	return l.update(func(trx storage.Transaction) error {
		if exists(trx, mint) {
			return fault.ErrAccountAlreadyInUse
		}
		record := MintRecord{
			Kind:      MintKind,
			Authority: authority,
			Decimals:  decimals,
		}
		trx.Put(storage.Pool.Mints, mint[:], pack(record))
		l.log.Infof("mint: %s  authority: %s  decimals: %d", mint, authority, decimals)
		return nil
	})
}

// CreateHolding - an empty token account of mint owned by owner
func (l *Ledger) CreateHolding(holding account.PublicKey, mint account.PublicKey, owner account.PublicKey) error {
	return l.update(func(trx storage.Transaction) error {
		if exists(trx, holding) {
			return fault.ErrAccountAlreadyInUse
		}
		if !trx.Has(storage.Pool.Mints, mint[:]) {
			return fault.ErrAccountNotFound
		}
		record := HoldingRecord{
			Kind:  HoldingKind,
			Mint:  mint,
			Owner: owner,
		}
		trx.Put(storage.Pool.Holdings, holding[:], pack(record))
		l.log.Infof("holding: %s  mint: %s  owner: %s", holding, mint, owner)
		return nil
	})
}

// MintTo - increase supply and credit a holding
func (l *Ledger) MintTo(mint account.PublicKey, holding account.PublicKey, authority account.PublicKey, amount uint64) error {
	return l.update(func(trx storage.Transaction) error {
		m, err := getMint(trx, mint)
		if nil != err {
			return err
		}
		h, err := getHolding(trx, holding)
		if nil != err {
			return err
		}
		if m.Authority != authority {
			return fault.ErrMintAuthorityMismatch
		}
		if h.Mint != mint {
			return fault.ErrMintMismatch
		}
		if m.Supply+amount < m.Supply {
			return fault.ErrInsufficientTokens
		}

		m.Supply += amount
		h.Amount += amount
		trx.Put(storage.Pool.Mints, mint[:], pack(m))
		trx.Put(storage.Pool.Holdings, holding[:], pack(h))
		l.log.Infof("minted: %d  to: %s  supply: %d", amount, holding, m.Supply)
		return nil
	})
}

func getMint(trx storage.Transaction, key account.PublicKey) (*MintRecord, error) {
	b := trx.Get(storage.Pool.Mints, key[:])
	if nil == b {
		return nil, fault.ErrAccountNotFound
	}
	return unpackMint(b)
}

func getHolding(trx storage.Transaction, key account.PublicKey) (*HoldingRecord, error) {
	b := trx.Get(storage.Pool.Holdings, key[:])
	if nil == b {
		return nil, fault.ErrAccountNotFound
	}
	return unpackHolding(b)
}
