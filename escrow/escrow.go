// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/constants"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/messagebus"
	"github.com/countinghouse/ledgerd/storage"
)

// reason recorded on the value lock
const lockReason = "prefunding"

// Prefund - lock a payer's funds for a beneficiary against a deadline
//
// rejects a reference that has ever had a status, a deadline closer
// than the minimum window and an owner whose free balance cannot cover
// the amount plus the minimum retained balance; on success the value
// lock is in force, the three escrow legs are posted and the working
// rows are created in state awaiting-beneficiary with status submitted
func Prefund(owner *account.Account, beneficiary *account.Account, amount uint64, deadline uint64, ref ledger.Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == owner || nil == beneficiary {
		return fault.NilPointer
	}
	if sameAccount(owner, beneficiary) {
		return fault.PartiesMustDiffer
	}
	if 0 == amount {
		return fault.InvalidAmount
	}

	// a reference is never reused, terminal statuses included
	if globalData.handles.ReferenceStatus.Has(ref[:]) {
		announceError("reference.exists", ref)
		return fault.ReferenceAlreadyExists
	}

	current := clock.Current()
	if deadline < current+constants.MinimumDeadlineBlocks {
		announceError("deadline.short", ref)
		return fault.DeadlineTooSoon
	}

	free, err := globalData.cash.FreeBalance(owner)
	if nil != err {
		return err
	}
	if amount > free || free-amount < constants.MinimumRetainedBalance {
		announceError("insufficient.funds", ref)
		return fault.InsufficientFreeBalance
	}

	err = globalData.cash.SetLock(ref.LockId(), owner, amount, deadline, lockReason)
	if nil != err {
		return err
	}

	amountPos := int128.FromUint64(amount)
	amountNeg, _ := amountPos.Neg()

	forward := []ledger.Leg{
		{Party: owner, Counterparty: beneficiary, Account: chart.EscrowDeposits, Amount: amountPos, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.FundingBalance, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.EscrowedFundsControl, Amount: amountPos, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
	}
	err = applyRecipe(forward, ref)
	if nil != err {
		if fault.PostingSystemFailure != err {
			// batch rolled back cleanly, undo the value lock too
			_ = globalData.cash.RemoveLock(ref.LockId(), owner)
		}
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	row := OwnerRow{Owner: owner, Beneficiary: beneficiary, State: AwaitingBeneficiary}
	record := Record{Amount: amount, Deadline: deadline}
	_ = trx.Put(globalData.handles.Prefunding, ref[:], record.pack())
	_ = trx.Put(globalData.handles.PrefundingOwners, ref[:], row.pack())
	list, _ := trx.Get(globalData.handles.OwnerRefs, owner.Bytes())
	_ = trx.Put(globalData.handles.OwnerRefs, owner.Bytes(), appendReference(list, ref))
	_ = trx.PutN(globalData.handles.ReferenceStatus, ref[:], uint64(Submitted))
	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Events.Send("prefund.created", ref.Bytes(), owner.Bytes(), beneficiary.Bytes())
	return nil
}

// Invoice - issue an invoice against a prefunded reference
//
// the caller must be the recorded beneficiary and the payer the
// recorded owner; a negative amount is a credit note using the same
// recipe; no real funds move until settlement
func Invoice(seller *account.Account, payer *account.Account, amount int128.Int128, ref ledger.Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == seller || nil == payer {
		return fault.NilPointer
	}
	if amount.IsZero() || int128.Min() == amount {
		return fault.InvalidAmount
	}

	row, err := ownerRow(ref)
	if nil != err {
		return err
	}
	if status, _ := currentStatus(ref); Blocked == status {
		announceError("reference.blocked", ref)
		return fault.ReferenceBlocked
	}
	if !sameAccount(seller, row.Beneficiary) {
		announceError("not.beneficiary", ref)
		return fault.NotRecordBeneficiary
	}
	if !sameAccount(payer, row.Owner) {
		announceError("not.owner", ref)
		return fault.NotRecordOwner
	}

	current := clock.Current()

	forward := []ledger.Leg{
		// seller
		{Party: seller, Counterparty: payer, Account: chart.TradeReceivables, Amount: amount, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		{Party: seller, Counterparty: payer, Account: chart.SalesOfServices, Amount: amount, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: seller, Counterparty: payer, Account: chart.SalesControl, Amount: amount, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		// buyer
		{Party: payer, Counterparty: seller, Account: chart.AccountsPayable, Amount: amount, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: payer, Counterparty: seller, Account: chart.LabourExpense, Amount: amount, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		{Party: payer, Counterparty: seller, Account: chart.PurchaseControl, Amount: amount, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
	}
	err = applyRecipe(forward, ref)
	if nil != err {
		return err
	}

	err = setStatus(ref, Invoiced)
	if nil != err {
		return err
	}

	messagebus.Bus.Events.Send("invoice.issued", ref.Bytes(), seller.Bytes(), payer.Bytes())
	return nil
}

// Settle - pay a prefunded invoice
//
// legal only once the owner has released control (owner bit false,
// beneficiary bit true) and the reference is invoiced: posts the seven
// leg unwind batch, removes the value lock, deletes the working rows
// and finally transfers the locked amount to the beneficiary; a value
// side failure after the committed batch marks the reference blocked
func Settle(payer *account.Account, ref ledger.Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == payer {
		return fault.NilPointer
	}

	row, err := ownerRow(ref)
	if nil != err {
		return err
	}
	status, _ := currentStatus(ref)
	if Blocked == status {
		announceError("reference.blocked", ref)
		return fault.ReferenceBlocked
	}
	if !sameAccount(payer, row.Owner) {
		announceError("not.owner", ref)
		return fault.NotRecordOwner
	}

	switch row.State {
	case AwaitingBeneficiary, BothHold:
		// the owner has not yet released control
		announceError("release.state", ref)
		return fault.NotApprovedForRelease
	case FullyReleased:
		announceError("release.state", ref)
		return fault.TransitionNotAllowed
	case OwnerReleased:
		// proceed
	}

	if Invoiced != status {
		announceError("status.not.invoiced", ref)
		return fault.StatusNotInvoiced
	}

	record, err := prefundingRecord(ref)
	if nil != err {
		return err
	}

	owner := row.Owner
	beneficiary := row.Beneficiary
	current := clock.Current()

	amountPos := int128.FromUint64(record.Amount)
	amountNeg, _ := amountPos.Neg()

	forward := []ledger.Leg{
		// buyer
		{Party: owner, Counterparty: beneficiary, Account: chart.AccountsPayable, Amount: amountNeg, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.EscrowDeposits, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.EscrowedFundsControl, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.PurchaseControl, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		// seller
		{Party: beneficiary, Counterparty: owner, Account: chart.FundingBalance, Amount: amountPos, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		{Party: beneficiary, Counterparty: owner, Account: chart.TradeReceivables, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: beneficiary, Counterparty: owner, Account: chart.SalesControl, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
	}
	err = applyRecipe(forward, ref)
	if nil != err {
		return err
	}

	// ledger effect committed, value side failures below are fatal
	err = globalData.cash.RemoveLock(ref.LockId(), owner)
	if nil != err {
		return blockReference(ref, err)
	}

	err = deleteWorkingRows(owner, ref, Settled)
	if nil != err {
		return blockReference(ref, err)
	}

	err = globalData.cash.Transfer(owner, beneficiary, record.Amount)
	if nil != err {
		return blockReference(ref, err)
	}

	messagebus.Bus.Events.Send("invoice.settled", ref.Bytes())
	messagebus.Bus.Events.Send("prefund.settled", ref.Bytes(), owner.Bytes(), beneficiary.Bytes())
	return nil
}

// SetReleaseState - one party sets its own lock bit
//
// only the transitions in the release table are legal; the owner's
// withdrawal flip from the initial state is gated on the deadline
func SetReleaseState(caller *account.Account, bit bool, ref ledger.Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == caller {
		return fault.NilPointer
	}

	row, err := ownerRow(ref)
	if nil != err {
		return err
	}
	status, _ := currentStatus(ref)
	if Blocked == status {
		announceError("reference.blocked", ref)
		return fault.ReferenceBlocked
	}

	var role Role
	switch {
	case sameAccount(caller, row.Owner):
		role = Owner
	case sameAccount(caller, row.Beneficiary):
		role = Beneficiary
	default:
		announceError("not.party", ref)
		return fault.NotRecordParty
	}

	record, err := prefundingRecord(ref)
	if nil != err {
		return err
	}
	deadlinePassed := record.Deadline <= clock.Current()

	next, err := row.State.Next(role, bit, deadlinePassed)
	if nil != err {
		switch err {
		case fault.DeadlineNotReached:
			announceError("deadline.in.play", ref)
		default:
			announceError("release.state", ref)
		}
		return err
	}

	previous := row.State
	row.State = next

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.Put(globalData.handles.PrefundingOwners, ref[:], row.pack())
	// first beneficiary acceptance moves the reference status forward;
	// a later re-acceptance must not regress an invoiced reference
	if AwaitingBeneficiary == previous && BothHold == next && Submitted == status {
		_ = trx.PutN(globalData.handles.ReferenceStatus, ref[:], uint64(Accepted))
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	messagebus.Bus.Events.Send("prefund.release", ref.Bytes(), []byte{byte(next)})
	return nil
}

// Cancel - the owner reclaims funds without any transfer
//
// legal from the initial state once the deadline has passed, or at any
// time once the beneficiary has fully released; posts the three leg
// batch unwinding the original prefund postings, then removes the
// value lock and deletes the working rows
func Cancel(owner *account.Account, ref ledger.Reference) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == owner {
		return fault.NilPointer
	}

	status, found := currentStatus(ref)
	if !found {
		return fault.ReferenceNotFound
	}
	if Blocked == status {
		announceError("reference.blocked", ref)
		return fault.ReferenceBlocked
	}
	if !status.IsUsable() {
		return fault.ReferenceNotFound
	}

	row, err := ownerRow(ref)
	if nil != err {
		return err
	}
	if !sameAccount(owner, row.Owner) {
		announceError("not.owner", ref)
		return fault.NotRecordOwner
	}

	record, err := prefundingRecord(ref)
	if nil != err {
		return err
	}

	switch row.State {
	case AwaitingBeneficiary:
		if record.Deadline > clock.Current() {
			announceError("deadline.in.play", ref)
			return fault.DeadlineNotReached
		}
	case FullyReleased:
		// beneficiary agreed, no deadline gate
	default:
		// funds are in play for their intended purpose
		announceError("release.state", ref)
		return fault.TransitionNotAllowed
	}

	beneficiary := row.Beneficiary
	current := clock.Current()

	amountPos := int128.FromUint64(record.Amount)
	amountNeg, _ := amountPos.Neg()

	// unwind the three original prefund legs
	forward := []ledger.Leg{
		{Party: owner, Counterparty: beneficiary, Account: chart.EscrowDeposits, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.FundingBalance, Amount: amountPos, Indicator: ledger.Debit, Reference: ref, AppliesAt: current},
		{Party: owner, Counterparty: beneficiary, Account: chart.EscrowedFundsControl, Amount: amountNeg, Indicator: ledger.Credit, Reference: ref, AppliesAt: current},
	}
	err = applyRecipe(forward, ref)
	if nil != err {
		return err
	}

	// ledger effect committed, value side failures below are fatal
	err = globalData.cash.RemoveLock(ref.LockId(), owner)
	if nil != err {
		return blockReference(ref, err)
	}

	err = deleteWorkingRows(owner, ref, Cancelled)
	if nil != err {
		return blockReference(ref, err)
	}

	messagebus.Bus.Events.Send("prefund.cancelled", ref.Bytes(), owner.Bytes())
	return nil
}

// IsRefOwner - does the account own the reference
func IsRefOwner(holder *account.Account, ref ledger.Reference) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised || nil == holder {
		return false
	}
	row, err := ownerRow(ref)
	if nil != err {
		return false
	}
	return sameAccount(holder, row.Owner)
}

// IsRefBeneficiary - is the account the beneficiary of the reference
func IsRefBeneficiary(holder *account.Account, ref ledger.Reference) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised || nil == holder {
		return false
	}
	row, err := ownerRow(ref)
	if nil != err {
		return false
	}
	return sameAccount(holder, row.Beneficiary)
}

// StatusOf - the lifecycle status of a reference
func StatusOf(ref ledger.Reference) (Status, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Draft, fault.NotInitialised
	}
	status, found := currentStatus(ref)
	if !found {
		return Draft, fault.ReferenceNotFound
	}
	return status, nil
}

// RecordOf - the locked amount and deadline of a reference
func RecordOf(ref ledger.Reference) (Record, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Record{}, fault.NotInitialised
	}
	return prefundingRecord(ref)
}

// DetailsOf - the parties and release state of a reference
func DetailsOf(ref ledger.Reference) (OwnerRow, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return OwnerRow{}, fault.NotInitialised
	}
	return ownerRow(ref)
}

// ReferencesFor - all live references created by an owner
func ReferencesFor(owner *account.Account) ([]ledger.Reference, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == owner {
		return nil, fault.NilPointer
	}
	return referenceList(globalData.handles.OwnerRefs.Get(owner.Bytes()))
}

// internal helpers, must hold lock (read or write)

func sameAccount(a *account.Account, b *account.Account) bool {
	return string(a.Bytes()) == string(b.Bytes())
}

func currentStatus(ref ledger.Reference) (Status, bool) {
	n, found := globalData.handles.ReferenceStatus.GetN(ref[:])
	return Status(n), found
}

func ownerRow(ref ledger.Reference) (OwnerRow, error) {
	buffer := globalData.handles.PrefundingOwners.Get(ref[:])
	if nil == buffer {
		return OwnerRow{}, fault.ReferenceNotFound
	}
	return unpackOwnerRow(buffer)
}

func prefundingRecord(ref ledger.Reference) (Record, error) {
	buffer := globalData.handles.Prefunding.Get(ref[:])
	if nil == buffer {
		return Record{}, fault.ReferenceNotFound
	}
	return unpackRecord(buffer)
}

// derive the reversal list and run the batch; a reversal failure
// inside the orchestrator blocks the reference
func applyRecipe(forward []ledger.Leg, ref ledger.Reference) error {
	reversal, err := ledger.ReversalList(forward)
	if nil != err {
		return err
	}
	accumulator := make([]ledger.Leg, 0, len(reversal))
	err = ledger.ApplyBatch(forward, reversal, &accumulator)
	if fault.PostingSystemFailure == err {
		return blockReference(ref, err)
	}
	return err
}

// mark a reference blocked pending manual reconciliation
func blockReference(ref ledger.Reference, cause error) error {
	globalData.log.Criticalf("reference: %s blocked: %s", ref, cause)
	e := setStatus(ref, Blocked)
	if nil != e {
		globalData.log.Criticalf("reference: %s cannot store blocked status: %s", ref, e)
	}
	announceError("funds.failure", ref)
	return fault.PostingSystemFailure
}

func setStatus(ref ledger.Reference, status Status) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.PutN(globalData.handles.ReferenceStatus, ref[:], uint64(status))
	return trx.Commit()
}

// remove the prefunding rows leaving only the terminal status
func deleteWorkingRows(owner *account.Account, ref ledger.Reference, status Status) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	_ = trx.Delete(globalData.handles.Prefunding, ref[:])
	_ = trx.Delete(globalData.handles.PrefundingOwners, ref[:])
	list, _ := trx.Get(globalData.handles.OwnerRefs, owner.Bytes())
	_ = trx.Put(globalData.handles.OwnerRefs, owner.Bytes(), removeReference(list, ref))
	_ = trx.PutN(globalData.handles.ReferenceStatus, ref[:], uint64(status))
	return trx.Commit()
}

func announceError(branch string, ref ledger.Reference) {
	messagebus.Bus.Events.Send("error."+branch, ref.Bytes())
}
