// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package buffer - layout of the bytes stored in an echo buffer
//
// Every write into a buffer is a length prefixed byte array:
//
//   bytes 0..3   little-endian content length (the envelope)
//   bytes 4..    content
//
// Gated buffers start their content with a header:
//
//   byte  4      bump
//   bytes 5..12  little-endian nonce or price
//   bytes 13..   payload
package buffer
