// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/echobuffer/client"
	"github.com/bitmark-inc/echobuffer/configuration"
	"github.com/bitmark-inc/echobuffer/ledger"
	"github.com/bitmark-inc/echobuffer/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	ledger  *ledger.Ledger
	client  *client.Client
	opened  bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "echo-cli"
	app.Usage = "echo buffer program on a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "config, c",
			Value:  "echo-cli.conf",
			EnvVar: "ECHO_CLI_CONFIG",
			Usage:  " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "create a new configuration file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "program, p",
					Value: "",
					Usage: " echo program id `ADDRESS` [generated]",
				},
				cli.StringFlag{
					Name:  "log-level, l",
					Value: "error",
					Usage: " default log `LEVEL`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "keygen",
			Usage:     "generate a named key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*key `NAME`",
				},
			},
			Action: runKeygen,
		},
		{
			Name:      "airdrop",
			Usage:     "credit lamports to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "lamports, l",
					Value: "",
					Usage: "*`AMOUNT` to credit",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "create-mint",
			Usage:     "create a token mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*mint authority `ACCOUNT`",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " decimal places `COUNT`",
				},
			},
			Action: runCreateMint,
		},
		{
			Name:      "create-holding",
			Usage:     "create a token account for a mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*token `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*token owner `ACCOUNT`",
				},
			},
			Action: runCreateHolding,
		},
		{
			Name:      "mint-to",
			Usage:     "issue tokens to a token account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*token `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*mint authority key `NAME`",
				},
				cli.StringFlag{
					Name:  "amount, n",
					Value: "",
					Usage: "*tokens to issue `AMOUNT`",
				},
			},
			Action: runMintTo,
		},
		{
			Name:      "create-buffer",
			Usage:     "create a rent exempt buffer owned by the echo program",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*paying key `NAME`",
				},
				cli.StringFlag{
					Name:  "buffer, b",
					Value: "",
					Usage: "*buffer key `NAME`",
				},
				cli.StringFlag{
					Name:  "size, s",
					Value: "",
					Usage: "*buffer size in `BYTES`",
				},
			},
			Action: runCreateBuffer,
		},
		{
			Name:      "echo",
			Usage:     "write to a blank unrestricted buffer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buffer, b",
					Value: "",
					Usage: "*buffer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*data `STRING`",
				},
			},
			Action: runEcho,
		},
		{
			Name:      "init-authorized",
			Usage:     "create an authority gated buffer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*authority key `NAME`",
				},
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "*buffer `NONCE`",
				},
				cli.StringFlag{
					Name:  "size, s",
					Value: "",
					Usage: "*buffer size in `BYTES`",
				},
			},
			Action: runInitAuthorized,
		},
		{
			Name:      "authorized-echo",
			Usage:     "overwrite an authority gated buffer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*authority key `NAME`",
				},
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "*buffer `NONCE`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*data `STRING`",
				},
			},
			Action: runAuthorizedEcho,
		},
		{
			Name:      "init-vending",
			Usage:     "create a vending machine buffer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*paying key `NAME`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "price, P",
					Value: "",
					Usage: "*tokens burned per write `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "size, s",
					Value: "",
					Usage: "*buffer size in `BYTES`",
				},
			},
			Action: runInitVending,
		},
		{
			Name:      "vending-echo",
			Usage:     "burn tokens to overwrite a vending machine buffer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user, u",
					Value: "",
					Usage: "*token owner key `NAME`",
				},
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: "*token `ACCOUNT` to burn from",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "price, P",
					Value: "",
					Usage: "*vending machine price `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*data `STRING`",
				},
			},
			Action: runVendingEcho,
		},
		{
			Name:      "address",
			Usage:     "derive a gated buffer address",
			ArgsUsage: "\n   (+ = select one group)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "+authority `ACCOUNT` (with --nonce)",
				},
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "+buffer `NONCE`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "+mint `ACCOUNT` (with --price)",
				},
				cli.StringFlag{
					Name:  "price, P",
					Value: "",
					Usage: "+vending machine price `AMOUNT`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "show",
			Usage:     "display an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*`ACCOUNT` to display",
				},
				cli.BoolFlag{
					Name:  "gated, g",
					Usage: " decode a bump/value header before the payload",
				},
			},
			Action: runShow,
		},
		{
			Name:  "version",
			Usage: "display echo-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the ledger
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")
		file := c.GlobalString("config")

		m := &metadata{
			file:    file,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "setup":
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		m.config = config

		return m.open()
	}

	// close everything opened by Before
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok {
			m.close()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// start logging, storage and the ledger
func (m *metadata) open() error {
	ledgerConfiguration, err := m.config.Ledger()
	if nil != err {
		return err
	}

	if err := logger.Initialise(m.config.Logging); nil != err {
		return err
	}
	m.opened = true

	if err := storage.Initialise(m.config.Database.Name, storage.ReadWrite); nil != err {
		return err
	}

	l, err := ledger.New(logger.New("ledger"), ledgerConfiguration)
	if nil != err {
		return err
	}
	m.ledger = l
	m.client = client.New(l.Configuration())

	if m.verbose {
		fmt.Fprintf(m.e, "database: %s\n", m.config.Database.Name)
		fmt.Fprintf(m.e, "program: %s\n", m.client.Program())
	}
	return nil
}

func (m *metadata) close() {
	if !m.opened {
		return
	}
	storage.Finalise()
	logger.Finalise()
	m.opened = false
}
