// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/fixtures"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
)

// leg constructor for tests
func makeLeg(party *account.Account, counterparty *account.Account, code chart.Code, amount int128.Int128, indicator ledger.Indicator, ref ledger.Reference) ledger.Leg {
	return ledger.Leg{
		Party:        party,
		Counterparty: counterparty,
		Account:      code,
		Amount:       amount,
		Indicator:    indicator,
		Reference:    ref,
		AppliesAt:    0,
	}
}

// apply a batch deriving its reversal list from the forward legs
func apply(t *testing.T, forward []ledger.Leg) error {
	reversal, err := ledger.ReversalList(forward)
	if nil != err {
		t.Fatalf("reversal list error: %s", err)
	}
	accumulator := make([]ledger.Leg, 0, len(reversal))
	return ledger.ApplyBatch(forward, reversal, &accumulator)
}

// the aggregate must equal the sum of all holder balances
func checkGlobalInvariant(t *testing.T, code chart.Code, holders ...*account.Account) {
	sum := int128.Int128{}
	for _, holder := range holders {
		balance, err := ledger.BalanceFor(holder, code)
		assert.NoError(t, err, "balance query error")
		var overflow bool
		sum, overflow = sum.Add(balance)
		assert.False(t, overflow, "invariant sum overflow")
	}
	global, err := ledger.GlobalFor(code)
	assert.NoError(t, err, "global query error")
	assert.Equal(t, sum, global, "global aggregate does not match balance sum")
}

func TestApplyBatch(t *testing.T) {
	setup(t)
	defer teardown(t)

	ref, err := ledger.NewReference(fixtures.Alice, fixtures.Bob)
	assert.NoError(t, err, "reference error")

	amount := int128.FromInt64(12345)
	negated, _ := amount.Neg()

	forward := []ledger.Leg{
		makeLeg(fixtures.Alice, fixtures.Bob, chart.TradeReceivables, amount, ledger.Debit, ref),
		makeLeg(fixtures.Bob, fixtures.Alice, chart.AccountsPayable, negated, ledger.Credit, ref),
	}

	before := ledger.PostingIndex()
	err = apply(t, forward)
	assert.NoError(t, err, "batch error")

	balance, err := ledger.BalanceFor(fixtures.Alice, chart.TradeReceivables)
	assert.NoError(t, err, "balance error")
	assert.Equal(t, amount, balance, "wrong alice balance")

	balance, err = ledger.BalanceFor(fixtures.Bob, chart.AccountsPayable)
	assert.NoError(t, err, "balance error")
	assert.Equal(t, negated, balance, "wrong bob balance")

	checkGlobalInvariant(t, chart.TradeReceivables, fixtures.Alice, fixtures.Bob)
	checkGlobalInvariant(t, chart.AccountsPayable, fixtures.Alice, fixtures.Bob)

	assert.Equal(t, before+2, ledger.PostingIndex(), "wrong posting index")

	// audit rows carry absolute amount, indicator and reference
	postings, err := ledger.PostingsFor(fixtures.Bob, chart.AccountsPayable, 0, 10)
	assert.NoError(t, err, "postings error")
	assert.Equal(t, 1, len(postings), "wrong posting count")
	assert.Equal(t, before+2, postings[0].Index, "wrong audit index")
	assert.Equal(t, amount, postings[0].Detail.Amount, "audit amount not absolute")
	assert.Equal(t, ledger.Credit, postings[0].Detail.Indicator, "wrong audit indicator")
	assert.Equal(t, ref, postings[0].Detail.Reference, "wrong audit reference")
	assert.Equal(t, fixtures.Alice.String(), postings[0].Detail.Counterparty.String(), "wrong counterparty")
}

func TestBatchRollback(t *testing.T) {
	setup(t)
	defer teardown(t)

	ref, _ := ledger.NewReference(fixtures.Alice, fixtures.Bob)

	// seed alice with the maximum so a further credit must overflow
	err := apply(t, []ledger.Leg{
		makeLeg(fixtures.Alice, fixtures.Bob, chart.SalesControl, int128.Max(), ledger.Debit, ref),
	})
	assert.NoError(t, err, "seed error")

	preAlice, _ := ledger.BalanceFor(fixtures.Alice, chart.SalesControl)
	preBob, _ := ledger.BalanceFor(fixtures.Bob, chart.TradeReceivables)
	preIndex := ledger.PostingIndex()

	amount := int128.FromInt64(777)

	// leg 3 overflows alice's seeded balance, legs 1 and 2 must be
	// fully backed out
	forward := []ledger.Leg{
		makeLeg(fixtures.Bob, fixtures.Alice, chart.TradeReceivables, amount, ledger.Debit, ref),
		makeLeg(fixtures.Bob, fixtures.Alice, chart.SalesOfServices, amount, ledger.Credit, ref),
		makeLeg(fixtures.Alice, fixtures.Bob, chart.SalesControl, int128.FromInt64(1), ledger.Debit, ref),
	}

	err = apply(t, forward)
	assert.Error(t, err, "batch must fail")
	assert.True(t, fault.IsErrOverflow(err), "not an overflow error: %s", err)

	// no residue on any touched account
	balance, _ := ledger.BalanceFor(fixtures.Bob, chart.TradeReceivables)
	assert.Equal(t, preBob, balance, "rollback residue on trade receivables")

	balance, _ = ledger.BalanceFor(fixtures.Bob, chart.SalesOfServices)
	assert.True(t, balance.IsZero(), "rollback residue on sales of services")

	balance, _ = ledger.BalanceFor(fixtures.Alice, chart.SalesControl)
	assert.Equal(t, preAlice, balance, "alice balance changed")

	checkGlobalInvariant(t, chart.TradeReceivables, fixtures.Alice, fixtures.Bob)
	checkGlobalInvariant(t, chart.SalesOfServices, fixtures.Alice, fixtures.Bob)
	checkGlobalInvariant(t, chart.SalesControl, fixtures.Alice, fixtures.Bob)

	// two forward legs and two fresh reversal indices were consumed
	assert.Equal(t, preIndex+4, ledger.PostingIndex(), "wrong posting index after rollback")

	// the audit trail keeps both directions under distinct indices
	postings, err := ledger.PostingsFor(fixtures.Bob, chart.TradeReceivables, 0, 10)
	assert.NoError(t, err, "postings error")
	assert.Equal(t, 2, len(postings), "audit trail must keep forward and reversal")
	assert.True(t, postings[0].Index < postings[1].Index, "audit indices not increasing")
	assert.Equal(t, ledger.Debit, postings[0].Detail.Indicator, "wrong forward indicator")
	assert.Equal(t, ledger.Credit, postings[1].Detail.Indicator, "wrong reversal indicator")
}

func TestGlobalAggregateOverflow(t *testing.T) {
	setup(t)
	defer teardown(t)

	ref, _ := ledger.NewReference(fixtures.Alice, fixtures.Bob)

	err := apply(t, []ledger.Leg{
		makeLeg(fixtures.Alice, fixtures.Bob, chart.PurchaseControl, int128.Max(), ledger.Debit, ref),
	})
	assert.NoError(t, err, "seed error")

	// bob's own balance is zero so only the aggregate can overflow
	err = apply(t, []ledger.Leg{
		makeLeg(fixtures.Bob, fixtures.Alice, chart.PurchaseControl, int128.Max(), ledger.Debit, ref),
	})
	assert.Equal(t, fault.GlobalLedgerOverflow, err, "wrong error")

	balance, _ := ledger.BalanceFor(fixtures.Bob, chart.PurchaseControl)
	assert.True(t, balance.IsZero(), "failed leg must not change the balance")

	global, _ := ledger.GlobalFor(chart.PurchaseControl)
	assert.Equal(t, int128.Max(), global, "failed leg must not change the aggregate")

	// nothing was committed, no index consumed
	postings, _ := ledger.PostingsFor(fixtures.Bob, chart.PurchaseControl, 0, 10)
	assert.Equal(t, 0, len(postings), "failed leg must not write audit rows")
}

func TestInvalidReversalList(t *testing.T) {
	setup(t)
	defer teardown(t)

	ref, _ := ledger.NewReference(fixtures.Alice, fixtures.Bob)

	forward := []ledger.Leg{
		makeLeg(fixtures.Alice, fixtures.Bob, chart.FundingBalance, int128.FromInt64(5), ledger.Debit, ref),
		makeLeg(fixtures.Bob, fixtures.Alice, chart.FundingBalance, int128.FromInt64(5), ledger.Credit, ref),
	}

	accumulator := make([]ledger.Leg, 0, 2)
	err := ledger.ApplyBatch(forward, nil, &accumulator)
	assert.Equal(t, fault.InvalidReversalList, err, "wrong error")

	err = ledger.ApplyBatch(forward, nil, nil)
	assert.Equal(t, fault.NilPointer, err, "wrong error")
}

func TestReversalFailureIsFatal(t *testing.T) {
	setup(t)
	defer teardown(t)

	ref, _ := ledger.NewReference(fixtures.Alice, fixtures.Bob)

	// seed alice with the maximum so the final forward leg must fail
	err := apply(t, []ledger.Leg{
		makeLeg(fixtures.Alice, fixtures.Bob, chart.SalesControl, int128.Max(), ledger.Debit, ref),
	})
	assert.NoError(t, err, "seed error")

	amount := int128.FromInt64(100)

	forward := []ledger.Leg{
		makeLeg(fixtures.Bob, fixtures.Alice, chart.TradeReceivables, amount, ledger.Debit, ref),
		makeLeg(fixtures.Alice, fixtures.Bob, chart.SalesControl, int128.FromInt64(1), ledger.Debit, ref),
	}

	// a corrupt inverse for leg one: it overflows instead of backing
	// the leg out, so the rollback itself cannot commit
	reversal := []ledger.Leg{
		makeLeg(fixtures.Bob, fixtures.Alice, chart.TradeReceivables, int128.Max(), ledger.Debit, ref),
	}

	accumulator := make([]ledger.Leg, 0, len(reversal))
	err = ledger.ApplyBatch(forward, reversal, &accumulator)
	assert.Equal(t, fault.PostingSystemFailure, err, "failed rollback must be fatal")

	// leg one committed and could not be undone
	balance, err := ledger.BalanceFor(fixtures.Bob, chart.TradeReceivables)
	assert.NoError(t, err, "balance query error")
	assert.Equal(t, amount, balance, "committed leg was not left in place")
}

func TestTouchedBy(t *testing.T) {
	setup(t)
	defer teardown(t)

	ref, _ := ledger.NewReference(fixtures.Alice, fixtures.Bob)

	one := int128.FromInt64(1)

	codes := []chart.Code{
		chart.EscrowDeposits,
		chart.FundingBalance,
		chart.EscrowedFundsControl,
	}
	for _, code := range codes {
		err := apply(t, []ledger.Leg{
			makeLeg(fixtures.Alice, fixtures.Bob, code, one, ledger.Debit, ref),
		})
		assert.NoError(t, err, "posting error")
	}

	// re-touching the first account moves it to the end
	err := apply(t, []ledger.Leg{
		makeLeg(fixtures.Alice, fixtures.Bob, chart.EscrowDeposits, one, ledger.Credit, ref),
	})
	assert.NoError(t, err, "posting error")

	touched, err := ledger.TouchedBy(fixtures.Alice)
	assert.NoError(t, err, "touched error")
	expected := []chart.Code{
		chart.FundingBalance,
		chart.EscrowedFundsControl,
		chart.EscrowDeposits,
	}
	assert.Equal(t, expected, touched, "wrong touched order")
}

func TestReversedLeg(t *testing.T) {
	ref := ledger.Reference{}
	leg := makeLeg(fixtures.Alice, fixtures.Bob, chart.SalesControl, int128.FromInt64(99), ledger.Debit, ref)

	reversed, err := leg.Reversed()
	assert.NoError(t, err, "reverse error")
	assert.Equal(t, ledger.Credit, reversed.Indicator, "indicator not flipped")
	assert.Equal(t, int128.FromInt64(-99), reversed.Amount, "amount not negated")

	leg.Amount = int128.Min()
	_, err = leg.Reversed()
	assert.Error(t, err, "minimum amount must not be reversible")
}

func TestNewReference(t *testing.T) {
	setup(t)
	defer teardown(t)

	a, err := ledger.NewReference(fixtures.Alice, fixtures.Bob)
	assert.NoError(t, err, "reference error")
	b, err := ledger.NewReference(fixtures.Alice, fixtures.Bob)
	assert.NoError(t, err, "reference error")
	assert.NotEqual(t, a, b, "references must differ between operations")

	_, err = ledger.NewReference(nil, fixtures.Bob)
	assert.Error(t, err, "nil party must fail")
}
