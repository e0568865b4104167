// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/echobuffer/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrAddressSelection  = fault.InvalidError("select either authority and nonce or mint and price")
	ErrInvalidKeyName    = fault.InvalidError("key name may only contain letters, digits, '-' and '_'")
	ErrKeyExists         = fault.ExistsError("key name already exists")
	ErrKeyNotFound       = fault.NotFoundError("key name not found")
	ErrRequiredAccount   = fault.InvalidError("account is required")
	ErrRequiredAmount    = fault.InvalidError("amount is required")
	ErrRequiredAuthority = fault.InvalidError("authority is required")
	ErrRequiredData      = fault.InvalidError("data is required")
	ErrRequiredKeyName   = fault.InvalidError("key name is required")
	ErrRequiredNonce     = fault.InvalidError("nonce is required")
	ErrRequiredPrice     = fault.InvalidError("price is required")
	ErrRequiredSize      = fault.InvalidError("size is required")
	ErrZeroSize          = fault.InvalidError("size must be greater than zero")
)

// a key name becomes a file name, so keep it simple
func checkKeyName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredKeyName
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case '-' == c, '_' == c:
		default:
			return "", ErrInvalidKeyName
		}
	}
	return name, nil
}

// generic unsigned number, the error says which field was missing
func checkUint64(s string, required error) (uint64, error) {
	if "" == s {
		return 0, required
	}
	return strconv.ParseUint(s, 10, 64)
}

func checkAmount(amount string) (uint64, error) {
	return checkUint64(amount, ErrRequiredAmount)
}

func checkNonce(nonce string) (uint64, error) {
	return checkUint64(nonce, ErrRequiredNonce)
}

func checkPrice(price string) (uint64, error) {
	return checkUint64(price, ErrRequiredPrice)
}

// sizes must leave room for at least an empty envelope
func checkSize(size string) (uint64, error) {
	n, err := checkUint64(size, ErrRequiredSize)
	if nil != err {
		return 0, err
	}
	if 0 == n {
		return 0, ErrZeroSize
	}
	return n, nil
}

// data is taken literally, an explicit empty string is not allowed
func checkData(data string) ([]byte, error) {
	if "" == data {
		return nil, ErrRequiredData
	}
	return []byte(data), nil
}
