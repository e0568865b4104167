// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - text written out by the setup commands
package templates

const (
	/**** Configuration template ****/
	ConfigurationTemplate = `-- echo-cli.conf  -*- mode: lua -*-

local M = {}

-- "." selects the directory containing this file
M.data_directory = "."

-- private keys created by keygen, one base58 file per name
M.key_directory = "keys"

M.database = {
    directory = "data",
    name = "ledger",
}

-- base58 program ids; system and token default to the well-known ids
M.programs = {
    echo = "{{.EchoProgram}}",
    -- system = "",
    -- token = "",
}

M.rent = {
    lamports_per_byte_year = {{.LamportsPerByteYear}},
    exemption_threshold = {{.ExemptionThreshold}},
}

M.logging = {
    directory = "log",
    file = "echo-cli.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "{{.LogLevel}}",
    },
}

return M
`
)
