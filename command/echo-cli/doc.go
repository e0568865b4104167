// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// echo-cli - drive the echo buffer program against a local ledger
//
// a configuration is created by:
//
//   echo-cli --config=echo-cli.conf setup
//
// after which keys are generated by name and used as signers:
//
//   echo-cli keygen --name=alice
//   echo-cli airdrop --to=alice --lamports=10000000
//   echo-cli init-authorized --authority=alice --nonce=7 --size=64
//   echo-cli authorized-echo --authority=alice --nonce=7 --data="hello"
//   echo-cli show --address=$(echo-cli address --authority=alice --nonce=7) --gated
//
// wherever an address is expected, either a key name or a base58
// address may be given
package main
