// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the echo program
//
// Process decodes one instruction and runs its handler against the
// accounts supplied by the host.  Handlers check every precondition
// before any external call, and make external calls before writing
// to a buffer, so a failure at any point leaves nothing for the host
// to undo except what it already rolls back.
package processor
