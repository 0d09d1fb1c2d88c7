// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"fmt"

	"github.com/countinghouse/ledgerd/fault"
)

// ReleaseState - the dual control lock pair as an explicit four state
// enumeration over (owner lock, beneficiary lock)
type ReleaseState byte

// all possible release states
const (
	// (true, false): created, owner may reclaim after the deadline,
	// beneficiary may accept
	AwaitingBeneficiary ReleaseState = iota
	// (true, true): both parties hold, neither may unilaterally
	// withdraw
	BothHold
	// (false, true): owner released control, beneficiary may act
	OwnerReleased
	// (false, false): terminal for the bit pair, only cancellation or
	// settlement may follow
	FullyReleased
	// end of list (one greater than last item)
	stateLimit
)

// Role - which party is acting on a reference
type Role byte

// the two parties of a prefunding
const (
	Owner Role = iota
	Beneficiary
)

// one legal bit flip
type transition struct {
	state ReleaseState
	role  Role
	bit   bool
}

// the complete transition table; any combination not present fails
//
// the owner side withdrawal from the initial state is additionally
// gated on the deadline having passed
var transitions = map[transition]ReleaseState{
	{AwaitingBeneficiary, Owner, false}:      FullyReleased, // cancellation path, deadline gated
	{AwaitingBeneficiary, Beneficiary, true}: BothHold,      // acceptance
	{BothHold, Owner, false}:                 OwnerReleased,
	{BothHold, Beneficiary, false}:           AwaitingBeneficiary,
	{OwnerReleased, Beneficiary, false}:      FullyReleased,
}

// deadline gated transitions
var deadlineGated = map[transition]bool{
	{AwaitingBeneficiary, Owner, false}: true,
}

// Next - the state after one party sets its own bit
//
// fault.TransitionNotAllowed for an illegal combination,
// fault.DeadlineNotReached when the flip is legal only after the
// deadline and it has not yet been reached
func (state ReleaseState) Next(role Role, bit bool, deadlinePassed bool) (ReleaseState, error) {
	key := transition{state, role, bit}
	next, ok := transitions[key]
	if !ok {
		return state, fault.TransitionNotAllowed
	}
	if deadlineGated[key] && !deadlinePassed {
		return state, fault.DeadlineNotReached
	}
	return next, nil
}

// Bits - the raw (owner lock, beneficiary lock) pair
func (state ReleaseState) Bits() (bool, bool) {
	switch state {
	case AwaitingBeneficiary:
		return true, false
	case BothHold:
		return true, true
	case OwnerReleased:
		return false, true
	default:
		return false, false
	}
}

// stateFromBits - rebuild the enumeration from stored bits
func stateFromBits(ownerLock bool, beneficiaryLock bool) ReleaseState {
	switch {
	case ownerLock && !beneficiaryLock:
		return AwaitingBeneficiary
	case ownerLock && beneficiaryLock:
		return BothHold
	case !ownerLock && beneficiaryLock:
		return OwnerReleased
	default:
		return FullyReleased
	}
}

// String - convert a release state to its name
func (state ReleaseState) String() string {
	switch state {
	case AwaitingBeneficiary:
		return "awaiting-beneficiary"
	case BothHold:
		return "both-hold"
	case OwnerReleased:
		return "owner-released"
	case FullyReleased:
		return "fully-released"
	default:
		return fmt.Sprintf("*unknown-state:%d*", byte(state))
	}
}

// GoString - enum value for debugging
func (state ReleaseState) GoString() string {
	return "<release:" + state.String() + ">"
}

// MarshalText - convert a release state into JSON
func (state ReleaseState) MarshalText() ([]byte, error) {
	if state >= stateLimit {
		return nil, fault.InvalidItem
	}
	return []byte(state.String()), nil
}
