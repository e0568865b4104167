// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/echobuffer/account"
)

const keyFileExtension = ".key"

// generated key as displayed
type keyInfo struct {
	Name    string            `json:"name"`
	Account account.PublicKey `json:"account"`
	File    string            `json:"file"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkKeyName(c.String("name"))
	if nil != err {
		return err
	}

	privateKey, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	fileName, err := saveKey(m.config.KeyDirectory, name, privateKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "saved key: %q\n", fileName)
	}

	return printJson(m.w, keyInfo{
		Name:    name,
		Account: privateKey.Account(),
		File:    fileName,
	})
}

// write a new key file, never replacing an existing one
func saveKey(directory string, name string, privateKey *account.PrivateKey) (string, error) {
	fileName := filepath.Join(directory, name+keyFileExtension)

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if os.IsExist(err) {
		return "", ErrKeyExists
	} else if nil != err {
		return "", err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\n", privateKey)
	if nil != err {
		return "", err
	}
	return fileName, nil
}

// read a named key file
func loadKey(directory string, name string) (*account.PrivateKey, error) {
	name, err := checkKeyName(name)
	if nil != err {
		return nil, err
	}

	b, err := os.ReadFile(filepath.Join(directory, name+keyFileExtension))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	} else if nil != err {
		return nil, err
	}

	return account.PrivateKeyFromBase58(strings.TrimSpace(string(b)))
}

// a key name if a key file exists, otherwise a base58 address
func resolveAddress(directory string, s string) (account.PublicKey, error) {
	if "" == s {
		return account.PublicKey{}, ErrRequiredAccount
	}
	if _, err := checkKeyName(s); nil == err {
		privateKey, err := loadKey(directory, s)
		if nil == err {
			return privateKey.Account(), nil
		}
		if ErrKeyNotFound != err {
			return account.PublicKey{}, err
		}
	}
	return account.PublicKeyFromBase58(s)
}

// shorthands using the configured key directory
func (m *metadata) key(name string) (*account.PrivateKey, error) {
	return loadKey(m.config.KeyDirectory, name)
}

func (m *metadata) address(s string) (account.PublicKey, error) {
	return resolveAddress(m.config.KeyDirectory, s)
}
