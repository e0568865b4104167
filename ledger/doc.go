// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - a local single node ledger that runs the echo
// buffer program
//
// The ledger provides the collaborators the program needs: a system
// program that creates accounts and charges rent, and a token program
// that keeps mints and holdings and can burn tokens.  A signed
// Transaction is executed atomically: every account mutation is staged
// in one storage batch that is only committed when all of its
// instructions succeed.
package ledger
