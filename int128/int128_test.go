// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package int128_test

import (
	"math/big"
	"testing"

	"github.com/countinghouse/ledgerd/int128"
)

// helper to build arbitrary values through the decimal parser
func number(t *testing.T, s string) int128.Int128 {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad test number: %q", s)
	}
	n, err := int128.FromBig(b)
	if nil != err {
		t.Fatalf("FromBig(%s) error: %s", s, err)
	}
	return n
}

func TestAdd(t *testing.T) {
	testList := []struct {
		a        string
		b        string
		sum      string
		overflow bool
	}{
		{"0", "0", "0", false},
		{"1", "-1", "0", false},
		{"-5", "3", "-2", false},
		{"9223372036854775807", "1", "9223372036854775808", false}, // past int64
		{"-9223372036854775808", "-1", "-9223372036854775809", false},
		{"170141183460469231731687303715884105727", "0", "170141183460469231731687303715884105727", false}, // max
		{"170141183460469231731687303715884105727", "1", "", true},
		{"170141183460469231731687303715884105726", "1", "170141183460469231731687303715884105727", false},
		{"-170141183460469231731687303715884105728", "-1", "", true},
		{"-170141183460469231731687303715884105728", "1", "-170141183460469231731687303715884105727", false},
		{"85070591730234615865843651857942052864", "85070591730234615865843651857942052864", "", true}, // 2^126 + 2^126
		{"-85070591730234615865843651857942052864", "-85070591730234615865843651857942052864", "-170141183460469231731687303715884105728", false},
	}

	for i, test := range testList {
		a := number(t, test.a)
		b := number(t, test.b)
		sum, overflow := a.Add(b)
		if overflow != test.overflow {
			t.Errorf("%d: %s + %s overflow: %v expected: %v", i, test.a, test.b, overflow, test.overflow)
			continue
		}
		if !overflow && sum.String() != test.sum {
			t.Errorf("%d: %s + %s = %s expected: %s", i, test.a, test.b, sum.String(), test.sum)
		}
	}
}

func TestSub(t *testing.T) {
	testList := []struct {
		a        string
		b        string
		diff     string
		overflow bool
	}{
		{"0", "0", "0", false},
		{"1", "1", "0", false},
		{"-2", "-3", "1", false},
		{"-170141183460469231731687303715884105728", "1", "", true},
		{"170141183460469231731687303715884105727", "-1", "", true},
		{"0", "-170141183460469231731687303715884105728", "", true},
		{"-1", "-170141183460469231731687303715884105728", "170141183460469231731687303715884105727", false},
	}

	for i, test := range testList {
		a := number(t, test.a)
		b := number(t, test.b)
		diff, overflow := a.Sub(b)
		if overflow != test.overflow {
			t.Errorf("%d: %s - %s overflow: %v expected: %v", i, test.a, test.b, overflow, test.overflow)
			continue
		}
		if !overflow && diff.String() != test.diff {
			t.Errorf("%d: %s - %s = %s expected: %s", i, test.a, test.b, diff.String(), test.diff)
		}
	}
}

func TestNeg(t *testing.T) {
	n := int128.FromInt64(42)
	m, overflow := n.Neg()
	if overflow {
		t.Fatalf("unexpected overflow negating 42")
	}
	if m.String() != "-42" {
		t.Errorf("negate: %s expected: -42", m.String())
	}

	z, overflow := int128.Int128{}.Neg()
	if overflow || !z.IsZero() {
		t.Errorf("negate zero: %s overflow: %v", z.String(), overflow)
	}

	_, overflow = int128.Min().Neg()
	if !overflow {
		t.Errorf("negating the minimum must overflow")
	}

	m, overflow = int128.Max().Neg()
	if overflow {
		t.Fatalf("unexpected overflow negating the maximum")
	}
	if m.String() != "-170141183460469231731687303715884105727" {
		t.Errorf("negated maximum: %s", m.String())
	}
}

func TestCmpAndSign(t *testing.T) {
	testList := []struct {
		a    string
		b    string
		sign int // of a
		cmp  int // a vs b
	}{
		{"0", "0", 0, 0},
		{"1", "0", 1, 1},
		{"-1", "0", -1, -1},
		{"-1", "-2", -1, 1},
		{"-170141183460469231731687303715884105728", "170141183460469231731687303715884105727", -1, -1},
		{"18446744073709551616", "18446744073709551615", 1, 1}, // 2^64 vs 2^64 - 1
	}

	for i, test := range testList {
		a := number(t, test.a)
		b := number(t, test.b)
		if sign := a.Sign(); sign != test.sign {
			t.Errorf("%d: sign(%s) = %d expected: %d", i, test.a, sign, test.sign)
		}
		if cmp := a.Cmp(b); cmp != test.cmp {
			t.Errorf("%d: cmp(%s, %s) = %d expected: %d", i, test.a, test.b, cmp, test.cmp)
		}
		if cmp := b.Cmp(a); cmp != -test.cmp {
			t.Errorf("%d: cmp(%s, %s) = %d expected: %d", i, test.b, test.a, cmp, -test.cmp)
		}
	}
}

func TestPack(t *testing.T) {
	for i, s := range []string{
		"0",
		"1",
		"-1",
		"36893488147419103232", // 2^65
		"-170141183460469231731687303715884105728",
		"170141183460469231731687303715884105727",
	} {
		n := number(t, s)
		packed := n.Pack()
		back, err := int128.Unpack(packed[:])
		if nil != err {
			t.Fatalf("%d: unpack error: %s", i, err)
		}
		if back != n {
			t.Errorf("%d: unpack: %s expected: %s", i, back.String(), s)
		}
	}

	_, err := int128.Unpack([]byte{1, 2, 3})
	if nil == err {
		t.Errorf("unpack accepted a short buffer")
	}
}

func TestAbsBytes(t *testing.T) {
	n := number(t, "-255")
	abs := n.AbsBytes()
	for i := 0; i < 15; i += 1 {
		if abs[i] != 0 {
			t.Fatalf("byte %d: %02x expected: 00", i, abs[i])
		}
	}
	if abs[15] != 0xff {
		t.Errorf("low byte: %02x expected: ff", abs[15])
	}

	// the minimum's magnitude is 2^127: high byte 0x80, rest zero
	abs = int128.Min().AbsBytes()
	if abs[0] != 0x80 {
		t.Errorf("minimum magnitude high byte: %02x expected: 80", abs[0])
	}
	for i := 1; i < 16; i += 1 {
		if abs[i] != 0 {
			t.Fatalf("minimum magnitude byte %d: %02x expected: 00", i, abs[i])
		}
	}
}

func TestText(t *testing.T) {
	n := number(t, "-340282366920938463463374607431")
	text, err := n.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var back int128.Int128
	err = back.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if back != n {
		t.Errorf("round trip: %s expected: %s", back.String(), n.String())
	}

	err = back.UnmarshalText([]byte("not-a-number"))
	if nil == err {
		t.Errorf("unmarshal accepted garbage")
	}

	err = back.UnmarshalText([]byte("170141183460469231731687303715884105728")) // 2^127
	if nil == err {
		t.Errorf("unmarshal accepted an out of range value")
	}
}
