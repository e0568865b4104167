// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derive - deterministic program addresses
//
// A program address is computed from a list of seeds and the program
// identity and is required to fall off the ed25519 curve, so no
// private key can exist for it.  The bump byte appended to the seeds
// is searched once at creation time and stored in the buffer header so
// later calls can recompute the address without searching.
package derive
