// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes go through a Transaction: they are staged in one
// leveldb batch and only reach the disk on Commit.  Reads made while
// a transaction is open see the staged values.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte public key
// 4. *records*    = CBOR encoded structures owned by the ledger package
//
// Accounts:
//
//   A ++ address               - lamports, owner, data
//
// Mints:
//
//   M ++ address               - mint authority, supply, decimals
//
// Holdings:
//
//   H ++ address               - mint, owner, amount
package storage
