// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/ledger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultLedgerDatabase   = "ledger"
	defaultKeyDirectory     = "keys"

	defaultLogDirectory = "log"
	defaultLogFile      = "echo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"ledger":          "info",
		"processor":       "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the ledger is kept
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ProgramType - base58 program ids, blank selects the default
type ProgramType struct {
	Echo   string `gluamapper:"echo" json:"echo"`
	System string `gluamapper:"system" json:"system"`
	Token  string `gluamapper:"token" json:"token"`
}

// RentType - rent exemption parameters
type RentType struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyDirectory  string               `gluamapper:"key_directory" json:"key_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Programs      ProgramType          `gluamapper:"programs" json:"programs"`
	Rent          RentType             `gluamapper:"rent" json:"rent"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		KeyDirectory:  defaultKeyDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLedgerDatabase,
		},

		Rent: RentType{
			LamportsPerByteYear: ledger.DefaultLamportsPerByteYear,
			ExemptionThreshold:  ledger.DefaultExemptionThreshold,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the database name is a plain name inside its directory
	switch filepath.Dir(options.Database.Name) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Database.Name)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.KeyDirectory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}
	options.Database.Name = filepath.Join(options.Database.Directory, options.Database.Name)

	// check the program ids early
	if _, err := options.Ledger(); nil != err {
		return nil, err
	}

	return options, nil
}

// Ledger - the ledger parameters described by the configuration
func (options *Configuration) Ledger() (ledger.Configuration, error) {
	c := ledger.Configuration{
		LamportsPerByteYear: options.Rent.LamportsPerByteYear,
		ExemptionThreshold:  options.Rent.ExemptionThreshold,
	}

	for _, item := range []struct {
		name  string
		text  string
		value *account.PublicKey
	}{
		{"echo", options.Programs.Echo, &c.EchoProgram},
		{"system", options.Programs.System, &c.SystemProgram},
		{"token", options.Programs.Token, &c.TokenProgram},
	} {
		if "" == item.text {
			continue
		}
		key, err := account.PublicKeyFromBase58(item.text)
		if nil != err {
			return ledger.Configuration{}, fmt.Errorf("programs.%s: %q: %s", item.name, item.text, err)
		}
		*item.value = key
	}

	if c.EchoProgram.IsZero() {
		return ledger.Configuration{}, fmt.Errorf("programs.echo: must be set")
	}
	return c, nil
}

// ensure the path is absolute, relative paths are under directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
