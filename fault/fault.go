// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrInvalidChainType      = InvalidError("invalid chain type")
	ErrInvalidFragments      = InvalidError("invalid fragments value")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingHandler        = InvalidError("missing handler")
	ErrNotADirectory         = InvalidError("not a directory")
	ErrNotAssetIdentifier    = InvalidError("not an asset identifier")
	ErrNotDigest             = InvalidError("not a digest")
	ErrNotTransactionPack    = InvalidError("not a transaction pack")
	ErrRequiredFileName      = InvalidError("file name is required")
	ErrRequiredPacked        = InvalidError("packed transaction is required")
	ErrNotFoundConfigFile    = NotFoundError("configuration file not found")
	ErrUnknownInputFormat    = ProcessError("unknown transaction input format")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
