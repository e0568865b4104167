// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreateBuffer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := m.key(c.String("payer"))
	if nil != err {
		return err
	}
	buffer, err := m.key(c.String("buffer"))
	if nil != err {
		return err
	}
	size, err := checkSize(c.String("size"))
	if nil != err {
		return err
	}

	lamports := m.ledger.MinimumBalance(size)
	if m.verbose {
		fmt.Fprintf(m.e, "rent exempt balance: %d\n", lamports)
	}

	ix, err := m.client.CreateBuffer(payer.Account(), buffer.Account(), lamports, size)
	if nil != err {
		return err
	}
	if err := m.execute(ix, payer, buffer); nil != err {
		return err
	}
	return m.showAccount(buffer.Account(), false)
}

func runEcho(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buffer, err := m.address(c.String("buffer"))
	if nil != err {
		return err
	}
	data, err := checkData(c.String("data"))
	if nil != err {
		return err
	}

	ix, err := m.client.Echo(buffer, data)
	if nil != err {
		return err
	}
	if err := m.execute(ix); nil != err {
		return err
	}
	return m.showAccount(buffer, false)
}

func runInitAuthorized(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	authority, err := m.key(c.String("authority"))
	if nil != err {
		return err
	}
	nonce, err := checkNonce(c.String("nonce"))
	if nil != err {
		return err
	}
	size, err := checkSize(c.String("size"))
	if nil != err {
		return err
	}

	ix, address, err := m.client.InitializeAuthorizedEcho(authority.Account(), nonce, size)
	if nil != err {
		return err
	}
	if err := m.execute(ix, authority); nil != err {
		return err
	}
	return m.showAccount(address, true)
}

func runAuthorizedEcho(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	authority, err := m.key(c.String("authority"))
	if nil != err {
		return err
	}
	nonce, err := checkNonce(c.String("nonce"))
	if nil != err {
		return err
	}
	data, err := checkData(c.String("data"))
	if nil != err {
		return err
	}

	ix, err := m.client.AuthorizedEcho(authority.Account(), nonce, data)
	if nil != err {
		return err
	}
	if err := m.execute(ix, authority); nil != err {
		return err
	}

	address, _, err := m.client.AuthorizedBufferAddress(authority.Account(), nonce)
	if nil != err {
		return err
	}
	return m.showAccount(address, true)
}

func runInitVending(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := m.key(c.String("payer"))
	if nil != err {
		return err
	}
	mint, err := m.address(c.String("mint"))
	if nil != err {
		return err
	}
	price, err := checkPrice(c.String("price"))
	if nil != err {
		return err
	}
	size, err := checkSize(c.String("size"))
	if nil != err {
		return err
	}

	ix, address, err := m.client.InitializeVendingMachine(payer.Account(), mint, price, size)
	if nil != err {
		return err
	}
	if err := m.execute(ix, payer); nil != err {
		return err
	}
	return m.showAccount(address, true)
}

func runVendingEcho(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	user, err := m.key(c.String("user"))
	if nil != err {
		return err
	}
	holding, err := m.address(c.String("holding"))
	if nil != err {
		return err
	}
	mint, err := m.address(c.String("mint"))
	if nil != err {
		return err
	}
	price, err := checkPrice(c.String("price"))
	if nil != err {
		return err
	}
	data, err := checkData(c.String("data"))
	if nil != err {
		return err
	}

	ix, err := m.client.VendingMachineEcho(user.Account(), holding, mint, price, data)
	if nil != err {
		return err
	}
	if err := m.execute(ix, user); nil != err {
		return err
	}

	address, _, err := m.client.VendingMachineAddress(mint, price)
	if nil != err {
		return err
	}
	return m.showAccount(address, true)
}
