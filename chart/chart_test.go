// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chart_test

import (
	"testing"

	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/fault"
)

func TestCodeValidity(t *testing.T) {

	valid := []chart.Code{
		1,
		chart.FundingBalance,
		chart.EscrowDeposits,
		chart.TradeReceivables,
		chart.AccountsPayable,
		chart.SalesOfServices,
		chart.LabourExpense,
		chart.PurchaseControl,
		chart.SalesControl,
		chart.EscrowedFundsControl,
		999999999999999,
	}
	for i, code := range valid {
		if !code.IsValid() {
			t.Errorf("%d: IsValid(%d) -> false  expected: true", i, code)
		}
	}

	invalid := []chart.Code{
		0,
		1000000000000000,
		18446744073709551615,
	}
	for i, code := range invalid {
		if code.IsValid() {
			t.Errorf("%d: IsValid(%d) -> true  expected: false", i, code)
		}
	}
}

func TestCodeBytes(t *testing.T) {

	code := chart.EscrowDeposits
	buffer := code.Bytes()
	if chart.CodeSize != len(buffer) {
		t.Fatalf("Bytes length: %d  expected: %d", len(buffer), chart.CodeSize)
	}

	back, err := chart.CodeFromBytes(buffer)
	if nil != err {
		t.Fatalf("CodeFromBytes error: %v", err)
	}
	if back != code {
		t.Errorf("round trip -> %d  expected: %d", back, code)
	}

	_, err = chart.CodeFromBytes(buffer[:4])
	if fault.InvalidBufferLength != err {
		t.Errorf("short buffer err = %v  expected: %v", err, fault.InvalidBufferLength)
	}

	_, err = chart.CodeFromBytes(make([]byte, chart.CodeSize))
	if fault.InvalidAccountCode != err {
		t.Errorf("zero code err = %v  expected: %v", err, fault.InvalidAccountCode)
	}
}

func TestCodeText(t *testing.T) {

	code := chart.SalesControl
	text, err := code.MarshalText()
	if nil != err {
		t.Fatalf("MarshalText error: %v", err)
	}
	if "360600020000000" != string(text) {
		t.Errorf("MarshalText -> %q  expected: %q", text, "360600020000000")
	}

	var back chart.Code
	err = back.UnmarshalText(text)
	if nil != err {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if back != code {
		t.Errorf("text round trip -> %d  expected: %d", back, code)
	}

	for i, s := range []string{"", "x", "-5", "1000000000000000"} {
		var c chart.Code
		err := c.UnmarshalText([]byte(s))
		if fault.InvalidAccountCode != err {
			t.Errorf("%d: UnmarshalText(%q) err = %v  expected: %v", i, s, err, fault.InvalidAccountCode)
		}
	}
}
