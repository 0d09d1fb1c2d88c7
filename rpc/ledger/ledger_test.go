// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/int128"
	engine "github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/rpc/fixtures"
	"github.com/countinghouse/ledgerd/rpc/ledger"
	"github.com/countinghouse/ledgerd/rpc/mocks"
)

func testAccount() *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: fixtures.IssuerPublicKey,
		},
	}
}

func TestLedgerBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockLedger(ctl)

	l := ledger.New(logger.New(fixtures.LogCategory), e)

	acc := testAccount()
	arg := ledger.BalanceArguments{
		Holder: acc,
		Code:   chart.FundingBalance,
	}

	want := int128.FromInt64(12345)
	e.EXPECT().BalanceFor(acc, chart.FundingBalance).Return(want, nil).Times(1)

	var reply ledger.BalanceReply
	err := l.Balance(&arg, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, want, reply.Balance, "wrong balance")
}

func TestLedgerGlobals(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockLedger(ctl)

	l := ledger.New(logger.New(fixtures.LogCategory), e)

	arg := ledger.GlobalsArguments{
		Code: chart.EscrowDeposits,
	}

	want := int128.FromInt64(999)
	e.EXPECT().GlobalFor(chart.EscrowDeposits).Return(want, nil).Times(1)

	var reply ledger.GlobalsReply
	err := l.Globals(&arg, &reply)
	assert.Nil(t, err, "wrong Globals")
	assert.Equal(t, want, reply.Balance, "wrong balance")
}

func TestLedgerPostings(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockLedger(ctl)

	l := ledger.New(logger.New(fixtures.LogCategory), e)

	acc := testAccount()
	arg := ledger.PostingsArguments{
		Holder: acc,
		Code:   chart.FundingBalance,
		Start:  5,
		Count:  10,
	}

	data := []engine.Posting{
		{Index: 5},
		{Index: 7},
	}
	e.EXPECT().PostingsFor(acc, chart.FundingBalance, uint64(5), 10).Return(data, nil).Times(1)

	var reply ledger.PostingsReply
	err := l.Postings(&arg, &reply)
	assert.Nil(t, err, "wrong Postings")
	assert.Equal(t, data, reply.Data, "wrong data")
	assert.Equal(t, uint64(8), reply.Next, "wrong next")
}

func TestLedgerPostingsWhenZeroCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockLedger(ctl)

	l := ledger.New(logger.New(fixtures.LogCategory), e)

	arg := ledger.PostingsArguments{
		Holder: testAccount(),
		Code:   chart.FundingBalance,
		Start:  0,
		Count:  0,
	}

	var reply ledger.PostingsReply
	err := l.Postings(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}

func TestLedgerTouched(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockLedger(ctl)

	l := ledger.New(logger.New(fixtures.LogCategory), e)

	acc := testAccount()
	arg := ledger.TouchedArguments{
		Holder: acc,
	}

	codes := []chart.Code{chart.FundingBalance, chart.EscrowDeposits}
	e.EXPECT().TouchedBy(acc).Return(codes, nil).Times(1)

	var reply ledger.TouchedReply
	err := l.Touched(&arg, &reply)
	assert.Nil(t, err, "wrong Touched")
	assert.Equal(t, codes, reply.Codes, "wrong codes")
}
