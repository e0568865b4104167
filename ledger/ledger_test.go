// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/echobuffer/account"
	"github.com/bitmark-inc/echobuffer/fault"
	"github.com/bitmark-inc/echobuffer/instruction"
	"github.com/bitmark-inc/echobuffer/ledger"
	"github.com/bitmark-inc/echobuffer/storage"
)

const (
	testingDirName = "testing"
	logCategory    = "ledger"
)

var (
	databaseFileName = filepath.Join(testingDirName, "ledger")
	programID        = account.PublicKey{0xec, 0x40, 0x01}
)

func TestMain(m *testing.M) {
	setupTestLogger()
	goleak.VerifyTestMain(m,
		goleak.IgnoreCurrent(),
		goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
		goleak.Cleanup(func(exitCode int) {
			teardownTestLogger()
			os.Exit(exitCode)
		}),
	)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// a fresh ledger over an empty database
func setupLedger(t *testing.T) *ledger.Ledger {
	_ = os.RemoveAll(databaseFileName + ".leveldb")
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.Nil(t, err, "storage initialise")
	t.Cleanup(func() {
		storage.Finalise()
		_ = os.RemoveAll(databaseFileName + ".leveldb")
	})

	l, err := ledger.New(logger.New(logCategory), ledger.Configuration{
		EchoProgram: programID,
	})
	require.Nil(t, err, "ledger")
	return l
}

func newKey(t *testing.T) *account.PrivateKey {
	key, err := account.NewPrivateKey()
	require.Nil(t, err, "new key")
	return key
}

// a funded key
func funded(t *testing.T, l *ledger.Ledger, lamports uint64) *account.PrivateKey {
	key := newKey(t)
	require.Nil(t, l.Airdrop(key.Account(), lamports), "airdrop")
	return key
}

func echoIx(t *testing.T, ix instruction.Instruction, metas ...ledger.AccountMeta) ledger.Instruction {
	packed, err := ix.Pack()
	require.Nil(t, err, "pack")
	return ledger.Instruction{
		Program:  programID,
		Accounts: metas,
		Data:     packed,
	}
}

func createAccountIx(t *testing.T, lamports uint64, space uint64, owner account.PublicKey, payer account.PublicKey, newAccount account.PublicKey) ledger.Instruction {
	built := system.NewCreateAccountInstruction(lamports, space, solana.PublicKey(owner), solana.PublicKey(payer), solana.PublicKey(newAccount)).Build()
	data, err := built.Data()
	require.Nil(t, err, "system data")
	return ledger.Instruction{
		Program: ledger.DefaultSystemProgram,
		Accounts: []ledger.AccountMeta{
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: newAccount, IsSigner: true, IsWritable: true},
		},
		Data: data,
	}
}

func execute(l *ledger.Ledger, signers []*account.PrivateKey, instructions ...ledger.Instruction) error {
	tx := ledger.NewTransaction(instructions...)
	tx.Sign(signers...)
	return l.Execute(tx)
}

func TestNew(t *testing.T) {
	_, err := ledger.New(nil, ledger.Configuration{EchoProgram: programID})
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "no logger")

	_, err = ledger.New(logger.New(logCategory), ledger.Configuration{})
	assert.Equal(t, fault.ErrUnknownProgram, err, "no program")

	l, err := ledger.New(logger.New(logCategory), ledger.Configuration{EchoProgram: programID})
	require.Nil(t, err, "new")
	c := l.Configuration()
	assert.Equal(t, ledger.DefaultSystemProgram, c.SystemProgram, "system")
	assert.Equal(t, ledger.DefaultTokenProgram, c.TokenProgram, "token")
	assert.Equal(t, uint64(ledger.DefaultLamportsPerByteYear), c.LamportsPerByteYear, "rent")
}

func TestMinimumBalance(t *testing.T) {
	l := setupLedger(t)

	assert.Equal(t, uint64(890880), l.MinimumBalance(0), "empty account")
	assert.Equal(t, uint64(1113600), l.MinimumBalance(32), "32 bytes")
	assert.Equal(t, uint64((128+13)*3480*2), l.MinimumBalance(13), "header only")
}

func TestAirdrop(t *testing.T) {
	l := setupLedger(t)
	key := newKey(t).Account()

	_, err := l.Account(key)
	assert.Equal(t, fault.ErrAccountNotFound, err, "before airdrop")

	require.Nil(t, l.Airdrop(key, 100), "first")
	require.Nil(t, l.Airdrop(key, 50), "second")

	record, err := l.Account(key)
	require.Nil(t, err, "account")
	assert.Equal(t, uint64(150), record.Lamports, "lamports")
	assert.Equal(t, ledger.DefaultSystemProgram, record.Owner, "owner")
}

func TestCreateAccountInstruction(t *testing.T) {
	l := setupLedger(t)
	payer := funded(t, l, 10000000)
	buffer := newKey(t)

	lamports := l.MinimumBalance(64)
	err := execute(l, []*account.PrivateKey{payer, buffer},
		createAccountIx(t, lamports, 64, programID, payer.Account(), buffer.Account()))
	require.Nil(t, err, "create")

	record, err := l.Account(buffer.Account())
	require.Nil(t, err, "account")
	assert.Equal(t, programID, record.Owner, "owner")
	assert.Equal(t, make([]byte, 64), record.Data, "zeroed data")
	assert.Equal(t, lamports, record.Lamports, "lamports")

	p, err := l.Account(payer.Account())
	require.Nil(t, err, "payer")
	assert.Equal(t, 10000000-lamports, p.Lamports, "payer debited")

	// the address is now taken
	err = execute(l, []*account.PrivateKey{payer, buffer},
		createAccountIx(t, lamports, 64, programID, payer.Account(), buffer.Account()))
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "second create")
}

func TestCreateAccountInstructionFailures(t *testing.T) {
	l := setupLedger(t)
	payer := funded(t, l, 1000)
	buffer := newKey(t)

	err := execute(l, []*account.PrivateKey{payer, buffer},
		createAccountIx(t, 1001, 8, programID, payer.Account(), buffer.Account()))
	assert.Equal(t, fault.ErrInsufficientFunds, err, "funds")

	err = execute(l, []*account.PrivateKey{payer, buffer},
		createAccountIx(t, 1, ledger.MaxAccountSize+1, programID, payer.Account(), buffer.Account()))
	assert.Equal(t, fault.ErrAccountDataTooLarge, err, "size")

	err = execute(l, []*account.PrivateKey{payer},
		createAccountIx(t, 1, 8, programID, payer.Account(), buffer.Account()))
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "new account not signed")

	_, err = l.Account(buffer.Account())
	assert.Equal(t, fault.ErrAccountNotFound, err, "nothing created")
	p, err := l.Account(payer.Account())
	require.Nil(t, err, "payer")
	assert.Equal(t, uint64(1000), p.Lamports, "payer untouched")
}

func TestExecuteUnknownProgram(t *testing.T) {
	l := setupLedger(t)
	payer := funded(t, l, 1000)

	err := execute(l, []*account.PrivateKey{payer}, ledger.Instruction{
		Program:  account.PublicKey{0x99},
		Accounts: []ledger.AccountMeta{{Key: payer.Account(), IsSigner: true, IsWritable: true}},
	})
	assert.Equal(t, fault.ErrUnknownProgram, err, "unknown program")
}

// an echo into an account owned by another program is refused
func TestExecuteForeignOwner(t *testing.T) {
	l := setupLedger(t)
	payer := funded(t, l, 10000000)
	buffer := newKey(t)

	err := execute(l, []*account.PrivateKey{payer, buffer},
		createAccountIx(t, l.MinimumBalance(16), 16, account.PublicKey{0x77}, payer.Account(), buffer.Account()))
	require.Nil(t, err, "create")

	err = execute(l, nil, echoIx(t, &instruction.Echo{Data: []byte("hi")},
		ledger.AccountMeta{Key: buffer.Account(), IsWritable: true}))
	assert.Equal(t, fault.ErrExternalAccountDataModified, err, "foreign owner")

	err = execute(l, nil, echoIx(t, &instruction.Echo{Data: []byte("hi")},
		ledger.AccountMeta{Key: buffer.Account()}))
	assert.Equal(t, fault.ErrReadonlyDataModified, err, "read only")

	digest, err := l.Digest(buffer.Account())
	require.Nil(t, err, "digest")
	assert.Equal(t, ledger.Digest(sha3.Sum256(make([]byte, 16))), digest, "data unchanged")
}
