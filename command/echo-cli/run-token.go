// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/ledger"
)

type mintInfo struct {
	Mint      account.PublicKey `json:"mint"`
	Authority account.PublicKey `json:"authority"`
	Supply    uint64            `json:"supply"`
	Decimals  uint8             `json:"decimals"`
}

type holdingInfo struct {
	Holding account.PublicKey `json:"holding"`
	Mint    account.PublicKey `json:"mint"`
	Owner   account.PublicKey `json:"owner"`
	Amount  uint64            `json:"amount"`
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := m.address(c.String("to"))
	if nil != err {
		return err
	}
	lamports, err := checkAmount(c.String("lamports"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "airdrop: %d  to: %s\n", lamports, to)
	}

	if err := m.ledger.Airdrop(to, lamports); nil != err {
		return err
	}
	return m.showAccount(to, false)
}

func runCreateMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := m.address(c.String("mint"))
	if nil != err {
		return err
	}
	authority, err := m.address(c.String("authority"))
	if nil != err {
		return err
	}
	decimals := c.Uint("decimals")
	if decimals > 255 {
		return fmt.Errorf("decimals: %d out of range", decimals)
	}

	if err := m.ledger.CreateMint(mint, authority, uint8(decimals)); nil != err {
		return err
	}
	return m.showMint(mint)
}

func runCreateHolding(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	holding, err := m.address(c.String("holding"))
	if nil != err {
		return err
	}
	mint, err := m.address(c.String("mint"))
	if nil != err {
		return err
	}
	owner, err := m.address(c.String("owner"))
	if nil != err {
		return err
	}

	if err := m.ledger.CreateHolding(holding, mint, owner); nil != err {
		return err
	}
	return m.showHolding(holding)
}

func runMintTo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := m.address(c.String("mint"))
	if nil != err {
		return err
	}
	holding, err := m.address(c.String("holding"))
	if nil != err {
		return err
	}

	// only the holder of the authority key may issue
	if "" == c.String("authority") {
		return ErrRequiredAuthority
	}
	authority, err := m.key(c.String("authority"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	if err := m.ledger.MintTo(mint, holding, authority.Account(), amount); nil != err {
		return err
	}
	return m.showHolding(holding)
}

func (m *metadata) showMint(key account.PublicKey) error {
	record, err := m.ledger.Mint(key)
	if nil != err {
		return err
	}
	return printJson(m.w, mintInfo{
		Mint:      key,
		Authority: record.Authority,
		Supply:    record.Supply,
		Decimals:  record.Decimals,
	})
}

func (m *metadata) showHolding(key account.PublicKey) error {
	record, err := m.ledger.Holding(key)
	if nil != err {
		return err
	}
	return printJson(m.w, holdingInfo{
		Holding: key,
		Mint:    record.Mint,
		Owner:   record.Owner,
		Amount:  record.Amount,
	})
}

// sign and run a single instruction
func (m *metadata) execute(ix ledger.Instruction, signers ...*account.PrivateKey) error {
	tx := ledger.NewTransaction(ix)
	tx.Sign(signers...)

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s  accounts: %d  data: %x\n", ix.Program, len(ix.Accounts), ix.Data)
	}
	return m.ledger.Execute(tx)
}
