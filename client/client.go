// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/derive"
	"github.com/bitmark-inc/echobuffer/instruction"
	"github.com/bitmark-inc/echobuffer/ledger"
)

// Client - instruction builder for one deployment of the program
type Client struct {
	program account.PublicKey
	system  account.PublicKey
	token   account.PublicKey
	deriver derive.Deriver
}

// New - builder for a program using the ledger's well-known programs
//
// zero program ids select the ledger defaults
func New(configuration ledger.Configuration) *Client {
	c := &Client{
		program: configuration.EchoProgram,
		system:  configuration.SystemProgram,
		token:   configuration.TokenProgram,
		deriver: derive.Default,
	}
	if c.system.IsZero() {
		c.system = ledger.DefaultSystemProgram
	}
	if c.token.IsZero() {
		c.token = ledger.DefaultTokenProgram
	}
	return c
}

// Program - the echo program id
func (c *Client) Program() account.PublicKey {
	return c.program
}

func (c *Client) build(ix instruction.Instruction, accounts ...ledger.AccountMeta) (ledger.Instruction, error) {
	packed, err := ix.Pack()
	if nil != err {
		return ledger.Instruction{}, err
	}
	return ledger.Instruction{
		Program:  c.program,
		Accounts: accounts,
		Data:     packed,
	}, nil
}

// CreateBuffer - system instruction allocating a zeroed buffer owned
// by the program; both payer and buffer must sign
func (c *Client) CreateBuffer(payer account.PublicKey, buffer account.PublicKey, lamports uint64, size uint64) (ledger.Instruction, error) {
	built, err := system.NewCreateAccountInstruction(
		lamports,
		size,
		solana.PublicKey(c.program),
		solana.PublicKey(payer),
		solana.PublicKey(buffer),
	).ValidateAndBuild()
	if nil != err {
		return ledger.Instruction{}, err
	}
	ix, err := FromSolana(built)
	if nil != err {
		return ledger.Instruction{}, err
	}
	ix.Program = c.system
	return ix, nil
}

// Echo - write data into a blank buffer
func (c *Client) Echo(buffer account.PublicKey, data []byte) (ledger.Instruction, error) {
	return c.build(&instruction.Echo{Data: data},
		ledger.AccountMeta{Key: buffer, IsWritable: true},
	)
}

// AuthorizedBufferAddress - the buffer an authority owns for a nonce
func (c *Client) AuthorizedBufferAddress(authority account.PublicKey, nonce uint64) (account.PublicKey, uint8, error) {
	return c.deriver.Find(derive.AuthoritySeeds(authority, derive.NumericSeed(nonce)), c.program)
}

// InitializeAuthorizedEcho - create the authority's buffer, the
// authority signs and pays the rent
func (c *Client) InitializeAuthorizedEcho(authority account.PublicKey, nonce uint64, size uint64) (ledger.Instruction, account.PublicKey, error) {
	address, _, err := c.AuthorizedBufferAddress(authority, nonce)
	if nil != err {
		return ledger.Instruction{}, account.PublicKey{}, err
	}
	ix, err := c.build(&instruction.InitializeAuthorizedEcho{BufferSeed: nonce, BufferSize: size},
		ledger.AccountMeta{Key: address, IsWritable: true},
		ledger.AccountMeta{Key: authority, IsSigner: true, IsWritable: true},
		ledger.AccountMeta{Key: c.system},
	)
	return ix, address, err
}

// AuthorizedEcho - replace the payload of the authority's buffer
func (c *Client) AuthorizedEcho(authority account.PublicKey, nonce uint64, data []byte) (ledger.Instruction, error) {
	address, _, err := c.AuthorizedBufferAddress(authority, nonce)
	if nil != err {
		return ledger.Instruction{}, err
	}
	return c.build(&instruction.AuthorizedEcho{Data: data},
		ledger.AccountMeta{Key: address, IsWritable: true},
		ledger.AccountMeta{Key: authority, IsSigner: true},
	)
}

// VendingMachineAddress - the buffer selling writes for price tokens of mint
func (c *Client) VendingMachineAddress(mint account.PublicKey, price uint64) (account.PublicKey, uint8, error) {
	return c.deriver.Find(derive.VendingSeeds(mint, derive.NumericSeed(price)), c.program)
}

// InitializeVendingMachine - create a vending machine buffer, payer
// signs and pays the rent
func (c *Client) InitializeVendingMachine(payer account.PublicKey, mint account.PublicKey, price uint64, size uint64) (ledger.Instruction, account.PublicKey, error) {
	address, _, err := c.VendingMachineAddress(mint, price)
	if nil != err {
		return ledger.Instruction{}, account.PublicKey{}, err
	}
	ix, err := c.build(&instruction.InitializeVendingMachine{Price: price, BufferSize: size},
		ledger.AccountMeta{Key: address, IsWritable: true},
		ledger.AccountMeta{Key: mint},
		ledger.AccountMeta{Key: payer, IsSigner: true, IsWritable: true},
		ledger.AccountMeta{Key: c.system},
	)
	return ix, address, err
}

// VendingMachineEcho - pay price tokens from holding and write
func (c *Client) VendingMachineEcho(user account.PublicKey, holding account.PublicKey, mint account.PublicKey, price uint64, data []byte) (ledger.Instruction, error) {
	address, _, err := c.VendingMachineAddress(mint, price)
	if nil != err {
		return ledger.Instruction{}, err
	}
	return c.build(&instruction.VendingMachineEcho{Data: data},
		ledger.AccountMeta{Key: address, IsWritable: true},
		ledger.AccountMeta{Key: user, IsSigner: true},
		ledger.AccountMeta{Key: holding, IsWritable: true},
		ledger.AccountMeta{Key: mint, IsWritable: true},
		ledger.AccountMeta{Key: c.token},
	)
}
