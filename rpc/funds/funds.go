// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package funds

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/funds"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/rpc/ratelimit"
	"github.com/countinghouse/ledgerd/util"
)

// Funds - value store RPCs
type Funds struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
	Engine         funds.Funds
}

const (
	rateLimitFunds = 200
	rateBurstFunds = 100
)

const tagDeposit = "funds.deposit"

// New - create the funds service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, isTestingChain func() bool, engine funds.Funds) *Funds {
	return &Funds{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitFunds, rateBurstFunds),
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
		Engine:         engine,
	}
}

// BalanceArguments - holder to query
type BalanceArguments struct {
	Holder *account.Account `json:"holder"` // base58
}

// BalanceReply - spendable and locked value of a holder
type BalanceReply struct {
	Balance     uint64       `json:"balance,string"`
	FreeBalance uint64       `json:"freeBalance,string"`
	Locks       []funds.Lock `json:"locks"`
}

// Balance - total balance, free balance and the active locks
func (f *Funds) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	log := f.Log
	log.Infof("Funds.Balance: %+v", arguments)

	if nil == arguments.Holder {
		return fault.MissingParameters
	}

	balance, err := f.Engine.Balance(arguments.Holder)
	if nil != err {
		return err
	}
	free, err := f.Engine.FreeBalance(arguments.Holder)
	if nil != err {
		return err
	}
	locks, err := f.Engine.LocksFor(arguments.Holder)
	if nil != err {
		return err
	}

	reply.Balance = balance
	reply.FreeBalance = free
	reply.Locks = locks

	return nil
}

// DepositArguments - credit a holder, signed by that holder
//
// only honoured on a testing network
type DepositArguments struct {
	Holder    *account.Account  `json:"holder"`
	Amount    uint64            `json:"amount,string"`
	Signature account.Signature `json:"signature"` // hex
}

// Pack - deterministic byte packing covered by the holder's signature
func (arguments *DepositArguments) Pack() []byte {
	buffer := append([]byte(tagDeposit), arguments.Holder.Bytes()...)
	buffer = append(buffer, util.ToVarint64(arguments.Amount)...)
	return buffer
}

// DepositReply - balance after the credit
type DepositReply struct {
	Balance uint64 `json:"balance,string"`
}

// Deposit - credit value out of thin air for testing
func (f *Funds) Deposit(arguments *DepositArguments, reply *DepositReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}
	if !f.IsTestingChain() {
		return fault.DepositNotAvailable
	}
	if !f.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	log := f.Log
	log.Infof("Funds.Deposit: %+v", arguments)

	if nil == arguments.Holder {
		return fault.MissingParameters
	}
	err := arguments.Holder.CheckSignature(arguments.Pack(), arguments.Signature)
	if nil != err {
		return err
	}

	err = f.Engine.Deposit(arguments.Holder, arguments.Amount)
	if nil != err {
		return err
	}

	balance, err := f.Engine.Balance(arguments.Holder)
	if nil != err {
		return err
	}
	reply.Balance = balance

	return nil
}
