// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package int128 - fixed width signed 128 bit integers
//
// The ledger holds balances as signed 128 bit values.  All arithmetic
// here is checked: operations return an overflow flag and never wrap
// silently.  The value is stored as two's complement in two 64 bit
// limbs.
package int128

import (
	"math/big"
	"math/bits"

	"github.com/countinghouse/ledgerd/fault"
)

// Int128 - two's complement signed 128 bit integer
type Int128 struct {
	hi uint64 // high limb, includes the sign bit
	lo uint64 // low limb
}

// Size - number of bytes in the packed representation
const Size = 16

// FromInt64 - widen a signed 64 bit value
func FromInt64(n int64) Int128 {
	return Int128{
		hi: uint64(n >> 63), // sign extension
		lo: uint64(n),
	}
}

// FromUint64 - widen an unsigned 64 bit value
func FromUint64(n uint64) Int128 {
	return Int128{
		hi: 0,
		lo: n,
	}
}

// Max - largest representable value (2^127 - 1)
func Max() Int128 {
	return Int128{
		hi: 0x7fffffffffffffff,
		lo: 0xffffffffffffffff,
	}
}

// Min - smallest representable value (-2^127)
func Min() Int128 {
	return Int128{
		hi: 0x8000000000000000,
		lo: 0,
	}
}

// Add - checked addition
//
// overflow is true if the mathematical sum is not representable; in
// that case the returned value must not be used
func (x Int128) Add(y Int128) (Int128, bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	// overflow iff both operands share a sign and the result differs
	overflow := x.hi>>63 == y.hi>>63 && hi>>63 != x.hi>>63
	return Int128{hi: hi, lo: lo}, overflow
}

// Sub - checked subtraction
func (x Int128) Sub(y Int128) (Int128, bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	overflow := x.hi>>63 != y.hi>>63 && hi>>63 != x.hi>>63
	return Int128{hi: hi, lo: lo}, overflow
}

// Neg - checked negation
//
// the only overflowing input is Min, whose magnitude is not
// representable as a positive value
func (x Int128) Neg() (Int128, bool) {
	lo, carry := bits.Add64(^x.lo, 1, 0)
	hi, _ := bits.Add64(^x.hi, 0, carry)
	return Int128{hi: hi, lo: lo}, x == Min()
}

// Sign - -1, 0 or +1
func (x Int128) Sign() int {
	if x.hi == 0 && x.lo == 0 {
		return 0
	}
	if x.hi>>63 == 1 {
		return -1
	}
	return 1
}

// IsZero - true for the zero value
func (x Int128) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// IsNegative - true for values below zero
func (x Int128) IsNegative() bool {
	return x.hi>>63 == 1
}

// Cmp - signed comparison: -1 if x < y, 0 if equal, +1 if x > y
func (x Int128) Cmp(y Int128) int {
	if int64(x.hi) < int64(y.hi) {
		return -1
	}
	if int64(x.hi) > int64(y.hi) {
		return 1
	}
	if x.lo < y.lo {
		return -1
	}
	if x.lo > y.lo {
		return 1
	}
	return 0
}

// Pack - 16 byte big endian two's complement
func (x Int128) Pack() [Size]byte {
	var buffer [Size]byte
	putUint64(buffer[0:8], x.hi)
	putUint64(buffer[8:16], x.lo)
	return buffer
}

// Unpack - rebuild a value from its 16 byte packed form
func Unpack(buffer []byte) (Int128, error) {
	if len(buffer) != Size {
		return Int128{}, fault.InvalidBufferLength
	}
	return Int128{
		hi: getUint64(buffer[0:8]),
		lo: getUint64(buffer[8:16]),
	}, nil
}

// AbsBytes - 16 byte big endian magnitude
//
// handles Min correctly: its magnitude 2^127 still fits the unsigned
// 16 byte space
func (x Int128) AbsBytes() [Size]byte {
	if x.IsNegative() {
		lo, carry := bits.Add64(^x.lo, 1, 0)
		hi, _ := bits.Add64(^x.hi, 0, carry)
		x = Int128{hi: hi, lo: lo}
	}
	return x.Pack()
}

// String - decimal representation
func (x Int128) String() string {
	negative := x.IsNegative()
	magnitude := x.AbsBytes()
	b := new(big.Int).SetBytes(magnitude[:])
	if negative {
		b.Neg(b)
	}
	return b.String()
}

// GoString - decimal, same as String
func (x Int128) GoString() string {
	return x.String()
}

// MarshalText - decimal representation for JSON replies
func (x Int128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText - parse a decimal representation
func (x *Int128) UnmarshalText(s []byte) error {
	b, ok := new(big.Int).SetString(string(s), 10)
	if !ok {
		return fault.InvalidItem
	}
	v, err := FromBig(b)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// FromBig - convert a big integer, checking the 128 bit range
func FromBig(b *big.Int) (Int128, error) {
	magnitude := new(big.Int).Abs(b)
	if magnitude.BitLen() > 127 {
		// -2^127 itself is representable
		if !(b.Sign() < 0 && magnitude.BitLen() == 128 && magnitude.TrailingZeroBits() == 127) {
			return Int128{}, fault.BalanceOverflow
		}
	}
	raw := magnitude.Bytes()
	var buffer [Size]byte
	copy(buffer[Size-len(raw):], raw)
	x := Int128{
		hi: getUint64(buffer[0:8]),
		lo: getUint64(buffer[8:16]),
	}
	if b.Sign() < 0 {
		lo, carry := bits.Add64(^x.lo, 1, 0)
		hi, _ := bits.Add64(^x.hi, 0, carry)
		x = Int128{hi: hi, lo: lo}
	}
	return x, nil
}

func putUint64(buffer []byte, n uint64) {
	for i := 7; i >= 0; i -= 1 {
		buffer[i] = byte(n)
		n >>= 8
	}
}

func getUint64(buffer []byte) uint64 {
	n := uint64(0)
	for i := 0; i < 8; i += 1 {
		n = n<<8 | uint64(buffer[i])
	}
	return n
}
