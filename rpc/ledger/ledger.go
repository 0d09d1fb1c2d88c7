// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/rpc/ratelimit"
)

// Ledger - ledger query RPCs
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  ledger.Ledger
}

const (
	MaximumPostingsCount = 100
	rateLimitLedger      = 200
	rateBurstLedger      = 100
)

// New - create the ledger query service
func New(log *logger.L, engine ledger.Ledger) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Engine:  engine,
	}
}

// BalanceArguments - holder and account code to query
type BalanceArguments struct {
	Holder *account.Account `json:"holder"` // base58
	Code   chart.Code       `json:"code"`   // decimal string
}

// BalanceReply - signed 128 bit balance as a decimal string
type BalanceReply struct {
	Balance int128.Int128 `json:"balance"`
}

// Balance - posted balance of one holder on one ledger account
func (l *Ledger) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	log := l.Log
	log.Infof("Ledger.Balance: %+v", arguments)

	balance, err := l.Engine.BalanceFor(arguments.Holder, arguments.Code)
	if nil != err {
		return err
	}
	reply.Balance = balance

	return nil
}

// GlobalsArguments - account code to query
type GlobalsArguments struct {
	Code chart.Code `json:"code"`
}

// GlobalsReply - network wide aggregate for one account code
type GlobalsReply struct {
	Balance int128.Int128 `json:"balance"`
}

// Globals - aggregate balance across all holders of one account code
func (l *Ledger) Globals(arguments *GlobalsArguments, reply *GlobalsReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	log := l.Log
	log.Infof("Ledger.Globals: %+v", arguments)

	balance, err := l.Engine.GlobalFor(arguments.Code)
	if nil != err {
		return err
	}
	reply.Balance = balance

	return nil
}

// PostingsArguments - paged detail listing
type PostingsArguments struct {
	Holder *account.Account `json:"holder"`
	Code   chart.Code       `json:"code"`
	Start  uint64           `json:"Start,string"` // first record number
	Count  int              `json:"count"`        // number of records
}

// PostingsReply - a page of posting details
type PostingsReply struct {
	Next uint64           `json:"next,string"` // Start value for the next call
	Data []ledger.Posting `json:"data"`
}

// Postings - list posting details for one holder and account code
func (l *Ledger) Postings(arguments *PostingsArguments, reply *PostingsReply) error {
	if err := ratelimit.LimitN(l.Limiter, arguments.Count, MaximumPostingsCount); nil != err {
		return err
	}

	log := l.Log
	log.Infof("Ledger.Postings: %+v", arguments)

	postings, err := l.Engine.PostingsFor(arguments.Holder, arguments.Code, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Data = postings
	if n := len(postings); n > 0 {
		reply.Next = postings[n-1].Index + 1
	} else {
		reply.Next = arguments.Start
	}

	return nil
}

// TouchedArguments - holder to query
type TouchedArguments struct {
	Holder *account.Account `json:"holder"`
}

// TouchedReply - all account codes the holder has ever posted to
type TouchedReply struct {
	Codes []chart.Code `json:"codes"`
}

// Touched - list the account codes a holder has balances on
func (l *Ledger) Touched(arguments *TouchedArguments, reply *TouchedReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	log := l.Log
	log.Infof("Ledger.Touched: %+v", arguments)

	codes, err := l.Engine.TouchedBy(arguments.Holder)
	if nil != err {
		return err
	}
	reply.Codes = codes

	return nil
}
