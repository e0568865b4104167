// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"text/template"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/ledger"
	"github.com/bitmark-inc/echobuffer/templates"
)

type setupInfo struct {
	File        string            `json:"file"`
	EchoProgram account.PublicKey `json:"echo_program"`
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program := account.PublicKey{}
	if s := c.String("program"); "" != s {
		var err error
		program, err = account.PublicKeyFromBase58(s)
		if nil != err {
			return err
		}
	} else {
		privateKey, err := account.NewPrivateKey()
		if nil != err {
			return err
		}
		program = privateKey.Account()
	}

	// do not run setup if there is an existing configuration
	f, err := os.OpenFile(m.file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if os.IsExist(err) {
		return fmt.Errorf("not overwriting existing configuration: %q", m.file)
	} else if nil != err {
		return err
	}
	defer f.Close()

	confTemp := template.Must(template.New("config").Parse(templates.ConfigurationTemplate))

	data := struct {
		EchoProgram         account.PublicKey
		LamportsPerByteYear uint64
		ExemptionThreshold  uint64
		LogLevel            string
	}{
		EchoProgram:         program,
		LamportsPerByteYear: ledger.DefaultLamportsPerByteYear,
		ExemptionThreshold:  ledger.DefaultExemptionThreshold,
		LogLevel:            c.String("log-level"),
	}

	if err := confTemp.Execute(f, data); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wrote config file: %q\n", m.file)
	}

	return printJson(m.w, setupInfo{
		File:        m.file,
		EchoProgram: program,
	})
}
