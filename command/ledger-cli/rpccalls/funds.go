// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/countinghouse/ledgerd/account"
	fundsRPC "github.com/countinghouse/ledgerd/rpc/funds"
)

// GetFunds - retrieve the spendable value and locks of a holder
func (client *Client) GetFunds(holder *account.Account) (*fundsRPC.BalanceReply, error) {

	balanceArgs := fundsRPC.BalanceArguments{
		Holder: holder,
	}

	client.printJson("Funds Request", balanceArgs)

	reply := &fundsRPC.BalanceReply{}
	err := client.client.Call("Funds.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Funds Reply", reply)

	return reply, nil
}

// DepositData - the parameters for a testing deposit
type DepositData struct {
	Holder *account.PrivateKey
	Amount uint64
}

// Deposit - credit value on a testing network
func (client *Client) Deposit(depositConfig *DepositData) (*fundsRPC.DepositReply, error) {

	depositArgs := fundsRPC.DepositArguments{
		Holder: depositConfig.Holder.Account(),
		Amount: depositConfig.Amount,
	}

	signature, err := client.sign(depositConfig.Holder, depositArgs.Pack())
	if nil != err {
		return nil, err
	}
	depositArgs.Signature = signature

	client.printJson("Deposit Request", depositArgs)

	reply := &fundsRPC.DepositReply{}
	err = client.client.Call("Funds.Deposit", depositArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Deposit Reply", reply)

	return reply, nil
}
