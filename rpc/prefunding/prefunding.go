// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prefunding

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/escrow"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/rpc/ratelimit"
	"github.com/countinghouse/ledgerd/util"
)

// Prefunding - escrow lifecycle RPCs
//
// every mutation carries the caller's signature over a deterministic
// packing of the arguments so the daemon never needs custody of any
// private key
type Prefunding struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Engine       escrow.Escrow
}

const (
	rateLimitPrefunding = 200
	rateBurstPrefunding = 100
)

// tags folded into each signed packing so a signature for one
// operation can never be replayed as another
const (
	tagCreate  = "prefunding.create"
	tagInvoice = "prefunding.invoice"
	tagSettle  = "prefunding.settle"
	tagRelease = "prefunding.release"
	tagCancel  = "prefunding.cancel"
)

// New - create the prefunding service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, engine escrow.Escrow) *Prefunding {
	return &Prefunding{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitPrefunding, rateBurstPrefunding),
		IsNormalMode: isNormalMode,
		Engine:       engine,
	}
}

// Prefunding create
// -----------------

// CreateArguments - open a prefunded reference, signed by the owner
//
// the nonce distinguishes otherwise identical records; the reference
// is derived from the whole signed packing, so resending a captured
// record reproduces the original reference and is refused as a reuse
type CreateArguments struct {
	Owner       *account.Account  `json:"owner"`       // base58
	Beneficiary *account.Account  `json:"beneficiary"` // base58
	Amount      uint64            `json:"amount,string"`
	Deadline    uint64            `json:"deadline,string"` // period number
	Nonce       uint64            `json:"nonce,string"`    // chosen by the owner
	Signature   account.Signature `json:"signature"`       // hex
}

// Pack - deterministic byte packing covered by the owner's signature
func (arguments *CreateArguments) Pack() []byte {
	buffer := append([]byte(tagCreate), arguments.Owner.Bytes()...)
	buffer = append(buffer, arguments.Beneficiary.Bytes()...)
	buffer = append(buffer, util.ToVarint64(arguments.Amount)...)
	buffer = append(buffer, util.ToVarint64(arguments.Deadline)...)
	buffer = append(buffer, util.ToVarint64(arguments.Nonce)...)
	return buffer
}

// CreateReply - the reference allocated to the new record
type CreateReply struct {
	Reference ledger.Reference `json:"reference"`
	Status    escrow.Status    `json:"status"`
}

// Create - lock funds and open a new prefunded reference
//
// the reference is derived here from the signed record itself so a
// client cannot choose a colliding value and a replayed record maps
// back onto the reference it already opened
func (prefunding *Prefunding) Create(arguments *CreateArguments, reply *CreateReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}
	if !prefunding.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	log := prefunding.Log
	log.Infof("Prefunding.Create: %+v", arguments)

	if nil == arguments.Owner || nil == arguments.Beneficiary {
		return fault.MissingParameters
	}
	err := arguments.Owner.CheckSignature(arguments.Pack(), arguments.Signature)
	if nil != err {
		return err
	}

	ref := ledger.DerivedReference(arguments.Pack())

	err = prefunding.Engine.Prefund(arguments.Owner, arguments.Beneficiary, arguments.Amount, arguments.Deadline, ref)
	if nil != err {
		return err
	}

	reply.Reference = ref
	reply.Status = escrow.Submitted
	return nil
}

// Prefunding invoice
// ------------------

// InvoiceArguments - raise an invoice against a reference, signed by
// the beneficiary
type InvoiceArguments struct {
	Seller    *account.Account  `json:"seller"`
	Payer     *account.Account  `json:"payer"`
	Amount    int128.Int128     `json:"amount"`
	Reference ledger.Reference  `json:"reference"`
	Signature account.Signature `json:"signature"`
}

// Pack - deterministic byte packing covered by the seller's signature
func (arguments *InvoiceArguments) Pack() []byte {
	amount := arguments.Amount.Pack()
	buffer := append([]byte(tagInvoice), arguments.Seller.Bytes()...)
	buffer = append(buffer, arguments.Payer.Bytes()...)
	buffer = append(buffer, amount[:]...)
	buffer = append(buffer, arguments.Reference.Bytes()...)
	return buffer
}

// InvoiceReply - status after the invoice posting
type InvoiceReply struct {
	Status escrow.Status `json:"status"`
}

// Invoice - post the invoice legs to both parties' books
func (prefunding *Prefunding) Invoice(arguments *InvoiceArguments, reply *InvoiceReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}
	if !prefunding.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	log := prefunding.Log
	log.Infof("Prefunding.Invoice: %+v", arguments)

	if nil == arguments.Seller || nil == arguments.Payer {
		return fault.MissingParameters
	}
	err := arguments.Seller.CheckSignature(arguments.Pack(), arguments.Signature)
	if nil != err {
		return err
	}

	err = prefunding.Engine.Invoice(arguments.Seller, arguments.Payer, arguments.Amount, arguments.Reference)
	if nil != err {
		return err
	}

	reply.Status = escrow.Invoiced
	return nil
}

// Prefunding settle
// -----------------

// SettleArguments - settle an invoiced reference, signed by the payer
type SettleArguments struct {
	Payer     *account.Account  `json:"payer"`
	Reference ledger.Reference  `json:"reference"`
	Signature account.Signature `json:"signature"`
}

// Pack - deterministic byte packing covered by the payer's signature
func (arguments *SettleArguments) Pack() []byte {
	buffer := append([]byte(tagSettle), arguments.Payer.Bytes()...)
	buffer = append(buffer, arguments.Reference.Bytes()...)
	return buffer
}

// SettleReply - status after settlement
type SettleReply struct {
	Status escrow.Status `json:"status"`
}

// Settle - move the escrowed funds to the beneficiary and close the books
func (prefunding *Prefunding) Settle(arguments *SettleArguments, reply *SettleReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}
	if !prefunding.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	log := prefunding.Log
	log.Infof("Prefunding.Settle: %+v", arguments)

	if nil == arguments.Payer {
		return fault.MissingParameters
	}
	err := arguments.Payer.CheckSignature(arguments.Pack(), arguments.Signature)
	if nil != err {
		return err
	}

	err = prefunding.Engine.Settle(arguments.Payer, arguments.Reference)
	if nil != err {
		return err
	}

	reply.Status = escrow.Settled
	return nil
}

// Prefunding release
// ------------------

// ReleaseArguments - flip one party's release lock, signed by that party
type ReleaseArguments struct {
	Signer    *account.Account  `json:"signer"`
	Hold      bool              `json:"hold"` // true keeps the funds held
	Reference ledger.Reference  `json:"reference"`
	Signature account.Signature `json:"signature"`
}

// Pack - deterministic byte packing covered by the signer's signature
func (arguments *ReleaseArguments) Pack() []byte {
	bit := uint64(0)
	if arguments.Hold {
		bit = 1
	}
	buffer := append([]byte(tagRelease), arguments.Signer.Bytes()...)
	buffer = append(buffer, util.ToVarint64(bit)...)
	buffer = append(buffer, arguments.Reference.Bytes()...)
	return buffer
}

// ReleaseReply - release state and status after the transition
type ReleaseReply struct {
	State  escrow.ReleaseState `json:"state"`
	Status escrow.Status       `json:"status"`
}

// Release - advance the two party release state machine
func (prefunding *Prefunding) Release(arguments *ReleaseArguments, reply *ReleaseReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}
	if !prefunding.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	log := prefunding.Log
	log.Infof("Prefunding.Release: %+v", arguments)

	if nil == arguments.Signer {
		return fault.MissingParameters
	}
	err := arguments.Signer.CheckSignature(arguments.Pack(), arguments.Signature)
	if nil != err {
		return err
	}

	err = prefunding.Engine.SetReleaseState(arguments.Signer, arguments.Hold, arguments.Reference)
	if nil != err {
		return err
	}

	row, err := prefunding.Engine.DetailsOf(arguments.Reference)
	if nil != err {
		return err
	}
	status, err := prefunding.Engine.StatusOf(arguments.Reference)
	if nil != err {
		return err
	}

	reply.State = row.State
	reply.Status = status
	return nil
}

// Prefunding cancel
// -----------------

// CancelArguments - unwind a reference, signed by the owner
type CancelArguments struct {
	Owner     *account.Account  `json:"owner"`
	Reference ledger.Reference  `json:"reference"`
	Signature account.Signature `json:"signature"`
}

// Pack - deterministic byte packing covered by the owner's signature
func (arguments *CancelArguments) Pack() []byte {
	buffer := append([]byte(tagCancel), arguments.Owner.Bytes()...)
	buffer = append(buffer, arguments.Reference.Bytes()...)
	return buffer
}

// CancelReply - status after the unwind
type CancelReply struct {
	Status escrow.Status `json:"status"`
}

// Cancel - return the locked funds to the owner and retire the reference
func (prefunding *Prefunding) Cancel(arguments *CancelArguments, reply *CancelReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}
	if !prefunding.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	log := prefunding.Log
	log.Infof("Prefunding.Cancel: %+v", arguments)

	if nil == arguments.Owner {
		return fault.MissingParameters
	}
	err := arguments.Owner.CheckSignature(arguments.Pack(), arguments.Signature)
	if nil != err {
		return err
	}

	err = prefunding.Engine.Cancel(arguments.Owner, arguments.Reference)
	if nil != err {
		return err
	}

	reply.Status = escrow.Cancelled
	return nil
}

// Prefunding queries
// ------------------

// StatusArguments - reference to inspect
type StatusArguments struct {
	Reference ledger.Reference `json:"reference"`
}

// StatusReply - full view of one reference
type StatusReply struct {
	Status      escrow.Status       `json:"status"`
	Owner       *account.Account    `json:"owner,omitempty"`
	Beneficiary *account.Account    `json:"beneficiary,omitempty"`
	State       escrow.ReleaseState `json:"state"`
	Amount      uint64              `json:"amount,string,omitempty"`
	Deadline    uint64              `json:"deadline,string,omitempty"`
}

// Status - current status, parties and amounts of a reference
//
// a terminal reference keeps its status row after the working rows
// are purged, so only the status field is certain to be present
func (prefunding *Prefunding) Status(arguments *StatusArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}

	log := prefunding.Log
	log.Infof("Prefunding.Status: %+v", arguments)

	status, err := prefunding.Engine.StatusOf(arguments.Reference)
	if nil != err {
		return err
	}
	reply.Status = status

	record, err := prefunding.Engine.RecordOf(arguments.Reference)
	if nil == err {
		reply.Amount = record.Amount
		reply.Deadline = record.Deadline
	}

	row, err := prefunding.Engine.DetailsOf(arguments.Reference)
	if nil == err {
		reply.Owner = row.Owner
		reply.Beneficiary = row.Beneficiary
		reply.State = row.State
	}

	return nil
}

// ListArguments - owner to list
type ListArguments struct {
	Owner *account.Account `json:"owner"`
}

// ListReply - all live references opened by the owner
type ListReply struct {
	References []ledger.Reference `json:"references"`
}

// List - references the owner currently has in play
func (prefunding *Prefunding) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(prefunding.Limiter); nil != err {
		return err
	}

	log := prefunding.Log
	log.Infof("Prefunding.List: %+v", arguments)

	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	references, err := prefunding.Engine.ReferencesFor(arguments.Owner)
	if nil != err {
		return err
	}
	reply.References = references

	return nil
}
