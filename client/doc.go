// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - build the echo buffer program's instructions
//
// Each builder fills in the account list in the order the program
// expects and computes derived buffer addresses, so callers only deal
// with the keys they own.  Instructions convert to and from solana-go
// form for submission to a real cluster.
package client
