// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type BufferError GenericError
type ExistsError GenericError
type InstructionError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse         = ExistsError("account already in use")
	ErrAccountDataTooLarge         = InvalidError("account data too large")
	ErrAccountNotFound             = NotFoundError("account not found")
	ErrAlreadyInitialised          = InvalidError("already initialised")
	ErrBufferNonZero               = BufferError("buffer consists of non-zero data")
	ErrBufferTooSmall              = InvalidError("buffer too small for header")
	ErrCannotDecodeAccount         = InvalidError("cannot decode account")
	ErrEmptyTransaction            = InvalidError("transaction has no instructions")
	ErrExternalAccountDataModified = ProcessError("instruction modified data of an account it does not own")
	ErrIncompatibleDatabaseVersion = InvalidError("incompatible database version")
	ErrIncorrectSeeds              = InvalidError("provided address has incorrect seeds")
	ErrInsufficientFunds           = ProcessError("insufficient funds")
	ErrInsufficientTokens          = ProcessError("insufficient token balance")
	ErrInvalidAccountOwner         = InvalidError("invalid account owner")
	ErrInvalidCount                = InvalidError("invalid count")
	ErrInvalidCursor               = InvalidError("invalid cursor")
	ErrInvalidInstructionData      = InstructionError("invalid instruction data")
	ErrInvalidKeyLength            = InvalidError("invalid key length")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidProgramAddress       = InvalidError("address must fall off the curve")
	ErrInvalidSignature            = InvalidError("invalid signature")
	ErrInvalidSystemProgram        = InvalidError("invalid system program passed")
	ErrInvalidTokenProgram         = InvalidError("invalid token program passed")
	ErrMaxSeedLengthExceeded       = InvalidError("seed length exceeded")
	ErrMintAuthorityMismatch       = InvalidError("mint authority does not match")
	ErrMintMismatch                = InvalidError("holding account does not belong to mint")
	ErrMissingRequiredSignature    = AuthorizationError("missing required signature")
	ErrNoProgramAddress            = InvalidError("unable to find a viable program address bump")
	ErrNotEnoughAccountKeys        = InvalidError("not enough account keys")
	ErrNotInitialised              = NotFoundError("not initialised")
	ErrOwnerMismatch               = InvalidError("holding account owner does not match authority")
	ErrReadonlyDataModified        = ProcessError("instruction modified data of a read-only account")
	ErrTransactionInUse            = ProcessError("transaction already in use")
	ErrTransactionNotStarted       = ProcessError("transaction not started")
	ErrUnknownProgram              = NotFoundError("unknown program")
	ErrUnsupportedProgramInstruct  = InstructionError("unsupported program instruction")
)

// ExternalError - failure reported by a collaborator service
//
// the original error is kept intact and can be reached with errors.Is/As
type ExternalError struct {
	Service string
	Err     error
}

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e BufferError) Error() string        { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InstructionError) Error() string   { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

func (e *ExternalError) Error() string {
	return e.Service + ": " + e.Err.Error()
}

func (e *ExternalError) Unwrap() error { return e.Err }

// External - wrap a collaborator error, nil stays nil
func External(service string, err error) error {
	if nil == err {
		return nil
	}
	return &ExternalError{
		Service: service,
		Err:     err,
	}
}

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrBuffer(e error) bool        { _, ok := e.(BufferError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInstruction(e error) bool   { _, ok := e.(InstructionError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// IsErrExternal - true if any error in the chain came from a collaborator
func IsErrExternal(e error) bool {
	var x *ExternalError
	return errors.As(e, &x)
}
