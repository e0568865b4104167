// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the echo program instruction wire format
//
// one tag byte selects the instruction, fields follow in order:
// byte arrays as a 4 byte little-endian length then the bytes,
// integers as 8 byte little-endian values
package instruction
