// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
)

// Escrow - the prefunding engine as seen by the RPC services
type Escrow interface {
	Prefund(owner *account.Account, beneficiary *account.Account, amount uint64, deadline uint64, ref ledger.Reference) error
	Invoice(seller *account.Account, payer *account.Account, amount int128.Int128, ref ledger.Reference) error
	Settle(payer *account.Account, ref ledger.Reference) error
	SetReleaseState(caller *account.Account, bit bool, ref ledger.Reference) error
	Cancel(owner *account.Account, ref ledger.Reference) error
	StatusOf(ref ledger.Reference) (Status, error)
	RecordOf(ref ledger.Reference) (Record, error)
	DetailsOf(ref ledger.Reference) (OwnerRow, error)
	ReferencesFor(owner *account.Account) ([]ledger.Reference, error)
}

// access to the global engine through the Escrow interface
type access struct{}

func (access) Prefund(owner *account.Account, beneficiary *account.Account, amount uint64, deadline uint64, ref ledger.Reference) error {
	return Prefund(owner, beneficiary, amount, deadline, ref)
}
func (access) Invoice(seller *account.Account, payer *account.Account, amount int128.Int128, ref ledger.Reference) error {
	return Invoice(seller, payer, amount, ref)
}
func (access) Settle(payer *account.Account, ref ledger.Reference) error {
	return Settle(payer, ref)
}
func (access) SetReleaseState(caller *account.Account, bit bool, ref ledger.Reference) error {
	return SetReleaseState(caller, bit, ref)
}
func (access) Cancel(owner *account.Account, ref ledger.Reference) error {
	return Cancel(owner, ref)
}
func (access) StatusOf(ref ledger.Reference) (Status, error) {
	return StatusOf(ref)
}
func (access) RecordOf(ref ledger.Reference) (Record, error) {
	return RecordOf(ref)
}
func (access) DetailsOf(ref ledger.Reference) (OwnerRow, error) {
	return DetailsOf(ref)
}
func (access) ReferencesFor(owner *account.Account) ([]ledger.Reference, error) {
	return ReferencesFor(owner)
}

// Get - the global prefunding engine
func Get() Escrow {
	return access{}
}
