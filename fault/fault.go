// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	BalanceOverflow              = OverflowError("balance overflow")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CannotDecodePrivateKey       = RecordError("cannot decode private key")
	CannotDecodeSignature        = RecordError("cannot decode signature")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ClockNotAdjustable           = InvalidError("clock not adjustable on this network")
	CryptoFailed                 = ProcessError("crypto failed")
	DeadlineNotReached           = InvalidError("deadline not reached")
	DeadlineTooSoon              = InvalidError("deadline too soon")
	DepositNotAvailable          = InvalidError("deposit not available on this network")
	GlobalLedgerOverflow         = OverflowError("global ledger overflow")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleOptions          = InvalidError("incompatible options")
	InsufficientFreeBalance      = InvalidError("insufficient free balance")
	InvalidAccountCode           = InvalidError("invalid account code")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidBufferLength          = LengthError("invalid buffer length")
	InvalidChecksum              = InvalidError("invalid checksum")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidNetwork               = InvalidError("invalid network")
	InvalidPasswordLength        = LengthError("invalid password length")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidReversalList          = InvalidError("invalid reversal list")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructure             = InvalidError("invalid structure")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	LockNotFound                 = NotFoundError("lock not found")
	MissingParameters            = InvalidError("missing parameters")
	NilPointer                   = InvalidError("nil pointer")
	NotApprovedForRelease        = InvalidError("not approved for release")
	NotAvailableDuringStartup    = InvalidError("not available during startup")
	NotInitialised               = ProcessError("not initialised")
	NotPrivateKey                = RecordError("not private key")
	NotPublicKey                 = RecordError("not public key")
	NotRecordBeneficiary         = InvalidError("not record beneficiary")
	NotRecordOwner               = InvalidError("not record owner")
	NotRecordParty               = InvalidError("not a party to the reference")
	PartiesMustDiffer            = InvalidError("parties must differ")
	PasswordMismatch             = InvalidError("password mismatch")
	PostingSystemFailure         = ProcessError("system failure in account posting")
	RateLimiting                 = ProcessError("rate limiting")
	ReferenceAlreadyExists       = ExistsError("reference already exists")
	ReferenceBlocked             = ProcessError("reference blocked pending reconciliation")
	ReferenceNotFound            = NotFoundError("reference not found")
	StatusNotInvoiced            = InvalidError("status not invoiced")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransitionNotAllowed         = InvalidError("transition not allowed")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
	WrongPassword                = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e OverflowError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
