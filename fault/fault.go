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
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyExists                = ExistsError("artwork already exists")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = InvalidError("checksum mismatch")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrIdentityRetired              = ExistsError("identity has been retired")
	ErrInsufficientBalance          = RecordError("insufficient balance")
	ErrInsufficientFunds            = RecordError("insufficient funds")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidCapability            = InvalidError("invalid capability")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidConfiguration         = InvalidError("invalid configuration")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDirectory             = InvalidError("invalid directory")
	ErrInvalidFileName              = InvalidError("invalid file name")
	ErrInvalidIdentity              = InvalidError("invalid identity")
	ErrInvalidImageReference        = InvalidError("invalid image reference")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidLocation              = InvalidError("invalid location")
	ErrInvalidMethod                = InvalidError("invalid method")
	ErrInvalidOwner                 = InvalidError("invalid owner")
	ErrInvalidPrivateKey            = InvalidError("invalid private key")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKey             = InvalidError("invalid public key")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidValue                 = InvalidError("invalid value")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAvailableDuringTesting    = ProcessError("not available on this chain")
	ErrNotConnected                 = ProcessError("not connected")
	ErrNotForSale                   = RecordError("artwork is not for sale")
	ErrNotFound                     = NotFoundError("not found")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotOwner                     = PermissionError("not owner")
	ErrNotPublicKey                 = InvalidError("not public key")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordTruncated              = InvalidError("record truncated")
	ErrRegistryNotFound             = NotFoundError("registry not found")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrTransactionNotStarted        = ProcessError("transaction not started")
	ErrUnknownRecord                = InvalidError("unknown record type")
	ErrValueOverflow                = InvalidError("value overflow")
	ErrWrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }

// Lookup - find the instance matching an error message
//
// errors cross the RPC boundary as plain strings, this restores the
// original instance so clients can still compare with ==
func Lookup(message string) (error, bool) {
	e, ok := byMessage[message]
	return e, ok
}

var byMessage = map[string]error{}

func init() {
	for _, e := range []error{
		ErrAlreadyExists, ErrAlreadyInitialised, ErrCannotDecodeAccount,
		ErrCertificateFileAlreadyExists, ErrChecksumMismatch, ErrDatabaseIsNotSet,
		ErrIdentityRetired, ErrInsufficientBalance, ErrInsufficientFunds,
		ErrInvalidCapability, ErrInvalidCount, ErrInvalidCursor, ErrInvalidIdentity,
		ErrInvalidImageReference, ErrInvalidKeyLength, ErrInvalidKeyType,
		ErrInvalidLocation, ErrInvalidOwner, ErrInvalidPrivateKey,
		ErrInvalidPrivateKeyFile, ErrInvalidPublicKey, ErrInvalidPublicKeyFile,
		ErrInvalidStructPointer, ErrInvalidValue, ErrKeyFileAlreadyExists,
		ErrMissingParameters, ErrNotAvailableDuringTesting, ErrNotForSale,
		ErrNotFound, ErrNotInitialised, ErrNotOwner, ErrNotPublicKey,
		ErrRateLimiting, ErrRecordTruncated, ErrRegistryNotFound,
		ErrTransactionInUse, ErrTransactionNotStarted, ErrUnknownRecord,
		ErrValueOverflow, ErrInvalidAddress, ErrInvalidChain, ErrNotConnected,
		ErrInvalidMethod, ErrInvalidSignature, ErrWrongNetworkForPublicKey,
		ErrInvalidConfiguration, ErrInvalidDirectory, ErrInvalidFileName,
	} {
		byMessage[e.Error()] = e
	}
}
