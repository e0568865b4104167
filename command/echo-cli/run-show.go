// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/buffer"
	"github.com/bitmark-inc/echobuffer/fault"
)

type headerInfo struct {
	Bump  uint8  `json:"bump"`
	Value uint64 `json:"value"`
}

type accountInfo struct {
	Address  account.PublicKey `json:"address"`
	Lamports uint64            `json:"lamports"`
	Owner    account.PublicKey `json:"owner"`
	Size     int               `json:"size"`
	Digest   string            `json:"digest"`
	Header   *headerInfo       `json:"header,omitempty"`
	Length   int               `json:"length"`
	Text     string            `json:"text,omitempty"`
	Hex      string            `json:"hex,omitempty"`
}

type addressInfo struct {
	Address account.PublicKey `json:"address"`
	Bump    uint8             `json:"bump"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.address(c.String("address"))
	if nil != err {
		return err
	}

	// token records are not plain accounts
	if _, err := m.ledger.Mint(key); nil == err {
		return m.showMint(key)
	}
	if _, err := m.ledger.Holding(key); nil == err {
		return m.showHolding(key)
	}
	return m.showAccount(key, c.Bool("gated"))
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	authority := c.String("authority")
	mint := c.String("mint")

	var address account.PublicKey
	var bump uint8

	switch {
	case "" != authority && "" == mint:
		key, err := m.address(authority)
		if nil != err {
			return err
		}
		nonce, err := checkNonce(c.String("nonce"))
		if nil != err {
			return err
		}
		address, bump, err = m.client.AuthorizedBufferAddress(key, nonce)
		if nil != err {
			return err
		}

	case "" == authority && "" != mint:
		key, err := m.address(mint)
		if nil != err {
			return err
		}
		price, err := checkPrice(c.String("price"))
		if nil != err {
			return err
		}
		address, bump, err = m.client.VendingMachineAddress(key, price)
		if nil != err {
			return err
		}

	default:
		return ErrAddressSelection
	}

	return printJson(m.w, addressInfo{
		Address: address,
		Bump:    bump,
	})
}

// display an account, decoding the envelope of program owned buffers
func (m *metadata) showAccount(key account.PublicKey, gated bool) error {
	record, err := m.ledger.Account(key)
	if nil != err {
		return err
	}
	digest, err := m.ledger.Digest(key)
	if nil != err {
		return err
	}

	info := accountInfo{
		Address:  key,
		Lamports: record.Lamports,
		Owner:    record.Owner,
		Size:     len(record.Data),
		Digest:   digest.String(),
	}

	if record.Owner != m.client.Program() || len(record.Data) < buffer.EnvelopeSize {
		return printJson(m.w, info)
	}

	content, err := buffer.ReadEnvelope(record.Data)
	if nil != err {
		return err
	}
	if gated {
		header, err := buffer.DecodeHeader(record.Data)
		if nil != err {
			return err
		}
		info.Header = &headerInfo{
			Bump:  header.Bump,
			Value: header.Value,
		}
		if len(content) < buffer.HeaderSize {
			return fault.ErrBufferTooSmall
		}
		content = content[buffer.HeaderSize:]
	}

	info.Length = len(content)
	if utf8.Valid(content) {
		info.Text = string(content)
	} else {
		info.Hex = hex.EncodeToString(content)
	}
	return printJson(m.w, info)
}
