// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chart - chart of accounts codes
//
// An account code is a 64 bit number whose decimal digits encode the
// position in the chart of accounts: statement type, category,
// category group, group and subgroup.  The posting engine treats the
// code as an opaque key and never interprets the digits.
package chart

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/countinghouse/ledgerd/fault"
)

// Code - account code enumeration
type Code uint64

// CodeSize - number of bytes in the packed form
const CodeSize = 8

// account codes posted to by the escrow recipes
const (
	FundingBalance       Code = 110100040000000
	EscrowDeposits       Code = 110100050000000
	TradeReceivables     Code = 110100090000000
	AccountsPayable      Code = 120200030000000
	SalesOfServices      Code = 240400010000000
	LabourExpense        Code = 250500120000013
	PurchaseControl      Code = 360600010000000
	SalesControl         Code = 360600020000000
	EscrowedFundsControl Code = 360600040000000
)

// maximum of 15 decimal digits in a code
const maximumCode = 999999999999999

// IsValid - check the code is in representable range
//
// zero is not a valid account code
func (code Code) IsValid() bool {
	return code > 0 && code <= maximumCode
}

// String - convert a code to its decimal string
func (code Code) String() string {
	return strconv.FormatUint(uint64(code), 10)
}

// GoString - enum value for debugging
func (code Code) GoString() string {
	return fmt.Sprintf("<chart.Code:%d>", uint64(code))
}

// Bytes - pack a code as 8 byte big endian for database keys
func (code Code) Bytes() []byte {
	buffer := make([]byte, CodeSize)
	binary.BigEndian.PutUint64(buffer, uint64(code))
	return buffer
}

// CodeFromBytes - unpack an 8 byte big endian code
func CodeFromBytes(buffer []byte) (Code, error) {
	if CodeSize != len(buffer) {
		return 0, fault.InvalidBufferLength
	}
	code := Code(binary.BigEndian.Uint64(buffer))
	if !code.IsValid() {
		return 0, fault.InvalidAccountCode
	}
	return code, nil
}

// MarshalText - convert a code into JSON
func (code Code) MarshalText() ([]byte, error) {
	if !code.IsValid() {
		return nil, fault.InvalidAccountCode
	}
	return []byte(code.String()), nil
}

// UnmarshalText - convert a JSON decimal string to a code
func (code *Code) UnmarshalText(s []byte) error {
	value, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return fault.InvalidAccountCode
	}
	c := Code(value)
	if !c.IsValid() {
		return fault.InvalidAccountCode
	}
	*code = c
	return nil
}
