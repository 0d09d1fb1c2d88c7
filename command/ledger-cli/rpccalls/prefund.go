// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/rpc/prefunding"
)

// PrefundData - the parameters for opening a prefunded reference
//
// the nonce keeps repeat prefundings on identical terms distinct
type PrefundData struct {
	Owner       *account.PrivateKey
	Beneficiary *account.Account
	Amount      uint64
	Deadline    uint64
	Nonce       uint64
}

// CreatePrefund - lock funds against a beneficiary
func (client *Client) CreatePrefund(prefundConfig *PrefundData) (*prefunding.CreateReply, error) {

	createArgs := prefunding.CreateArguments{
		Owner:       prefundConfig.Owner.Account(),
		Beneficiary: prefundConfig.Beneficiary,
		Amount:      prefundConfig.Amount,
		Deadline:    prefundConfig.Deadline,
		Nonce:       prefundConfig.Nonce,
	}

	signature, err := client.sign(prefundConfig.Owner, createArgs.Pack())
	if nil != err {
		return nil, err
	}
	createArgs.Signature = signature

	client.printJson("Prefund Request", createArgs)

	reply := &prefunding.CreateReply{}
	err = client.client.Call("Prefunding.Create", createArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Prefund Reply", reply)

	return reply, nil
}

// InvoiceData - the parameters for invoicing a prefunded reference
type InvoiceData struct {
	Seller    *account.PrivateKey
	Payer     *account.Account
	Amount    int128.Int128
	Reference ledger.Reference
}

// Invoice - post the invoice legs against a reference
func (client *Client) Invoice(invoiceConfig *InvoiceData) (*prefunding.InvoiceReply, error) {

	invoiceArgs := prefunding.InvoiceArguments{
		Seller:    invoiceConfig.Seller.Account(),
		Payer:     invoiceConfig.Payer,
		Amount:    invoiceConfig.Amount,
		Reference: invoiceConfig.Reference,
	}

	signature, err := client.sign(invoiceConfig.Seller, invoiceArgs.Pack())
	if nil != err {
		return nil, err
	}
	invoiceArgs.Signature = signature

	client.printJson("Invoice Request", invoiceArgs)

	reply := &prefunding.InvoiceReply{}
	err = client.client.Call("Prefunding.Invoice", invoiceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Invoice Reply", reply)

	return reply, nil
}

// SettleData - the parameters for settling an invoiced reference
type SettleData struct {
	Payer     *account.PrivateKey
	Reference ledger.Reference
}

// Settle - move the escrowed funds to the beneficiary
func (client *Client) Settle(settleConfig *SettleData) (*prefunding.SettleReply, error) {

	settleArgs := prefunding.SettleArguments{
		Payer:     settleConfig.Payer.Account(),
		Reference: settleConfig.Reference,
	}

	signature, err := client.sign(settleConfig.Payer, settleArgs.Pack())
	if nil != err {
		return nil, err
	}
	settleArgs.Signature = signature

	client.printJson("Settle Request", settleArgs)

	reply := &prefunding.SettleReply{}
	err = client.client.Call("Prefunding.Settle", settleArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Settle Reply", reply)

	return reply, nil
}

// ReleaseData - the parameters for a release state change
type ReleaseData struct {
	Signer    *account.PrivateKey
	Hold      bool
	Reference ledger.Reference
}

// Release - advance or hold the two party release state
func (client *Client) Release(releaseConfig *ReleaseData) (*prefunding.ReleaseReply, error) {

	releaseArgs := prefunding.ReleaseArguments{
		Signer:    releaseConfig.Signer.Account(),
		Hold:      releaseConfig.Hold,
		Reference: releaseConfig.Reference,
	}

	signature, err := client.sign(releaseConfig.Signer, releaseArgs.Pack())
	if nil != err {
		return nil, err
	}
	releaseArgs.Signature = signature

	client.printJson("Release Request", releaseArgs)

	reply := &prefunding.ReleaseReply{}
	err = client.client.Call("Prefunding.Release", releaseArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Release Reply", reply)

	return reply, nil
}

// CancelData - the parameters for cancelling a reference
type CancelData struct {
	Owner     *account.PrivateKey
	Reference ledger.Reference
}

// Cancel - return the locked funds to the owner
func (client *Client) Cancel(cancelConfig *CancelData) (*prefunding.CancelReply, error) {

	cancelArgs := prefunding.CancelArguments{
		Owner:     cancelConfig.Owner.Account(),
		Reference: cancelConfig.Reference,
	}

	signature, err := client.sign(cancelConfig.Owner, cancelArgs.Pack())
	if nil != err {
		return nil, err
	}
	cancelArgs.Signature = signature

	client.printJson("Cancel Request", cancelArgs)

	reply := &prefunding.CancelReply{}
	err = client.client.Call("Prefunding.Cancel", cancelArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Cancel Reply", reply)

	return reply, nil
}

// GetStatus - retrieve the full view of one reference
func (client *Client) GetStatus(reference ledger.Reference) (*prefunding.StatusReply, error) {

	statusArgs := prefunding.StatusArguments{
		Reference: reference,
	}

	client.printJson("Status Request", statusArgs)

	reply := &prefunding.StatusReply{}
	err := client.client.Call("Prefunding.Status", statusArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return reply, nil
}

// GetList - retrieve the references an owner has in play
func (client *Client) GetList(owner *account.Account) (*prefunding.ListReply, error) {

	listArgs := prefunding.ListArguments{
		Owner: owner,
	}

	client.printJson("List Request", listArgs)

	reply := &prefunding.ListReply{}
	err := client.client.Call("Prefunding.List", listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}
