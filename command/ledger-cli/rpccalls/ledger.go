// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	ledgerRPC "github.com/countinghouse/ledgerd/rpc/ledger"
)

// BalanceData - the parameters for a ledger balance request
type BalanceData struct {
	Holder *account.Account
	Code   chart.Code
}

// GetBalance - retrieve one posted balance
func (client *Client) GetBalance(balanceConfig *BalanceData) (*ledgerRPC.BalanceReply, error) {

	balanceArgs := ledgerRPC.BalanceArguments{
		Holder: balanceConfig.Holder,
		Code:   balanceConfig.Code,
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &ledgerRPC.BalanceReply{}
	err := client.client.Call("Ledger.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetGlobalBalance - retrieve the network wide aggregate for a code
func (client *Client) GetGlobalBalance(code chart.Code) (*ledgerRPC.GlobalsReply, error) {

	globalsArgs := ledgerRPC.GlobalsArguments{
		Code: code,
	}

	client.printJson("Globals Request", globalsArgs)

	reply := &ledgerRPC.GlobalsReply{}
	err := client.client.Call("Ledger.Globals", globalsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Globals Reply", reply)

	return reply, nil
}

// PostingsData - the parameters for an audit trail page request
type PostingsData struct {
	Holder *account.Account
	Code   chart.Code
	Start  uint64
	Count  int
}

// GetPostings - retrieve a page of audit trail rows
func (client *Client) GetPostings(postingsConfig *PostingsData) (*ledgerRPC.PostingsReply, error) {

	postingsArgs := ledgerRPC.PostingsArguments{
		Holder: postingsConfig.Holder,
		Code:   postingsConfig.Code,
		Start:  postingsConfig.Start,
		Count:  postingsConfig.Count,
	}

	client.printJson("Postings Request", postingsArgs)

	reply := &ledgerRPC.PostingsReply{}
	err := client.client.Call("Ledger.Postings", postingsArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Postings Reply", reply)

	return reply, nil
}

// GetTouched - retrieve the account codes a holder has posted to
func (client *Client) GetTouched(holder *account.Account) (*ledgerRPC.TouchedReply, error) {

	touchedArgs := ledgerRPC.TouchedArguments{
		Holder: holder,
	}

	client.printJson("Touched Request", touchedArgs)

	reply := &ledgerRPC.TouchedReply{}
	err := client.client.Call("Ledger.Touched", touchedArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Touched Reply", reply)

	return reply, nil
}
