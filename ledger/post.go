// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/messagebus"
	"github.com/countinghouse/ledgerd/storage"
)

// ApplyBatch - apply an ordered list of legs with compensating rollback
//
// reversal is the caller supplied list of inverses, one per forward
// leg except the structurally last; accumulator records which legs are
// currently undoable and is replayed in accumulated order when a leg
// fails.  A failed batch with a clean rollback returns the original
// leg error; a reversal failure returns fault.PostingSystemFailure and
// the ledger must be treated as corrupted for that reference.
func ApplyBatch(forward []Leg, reversal []Leg, accumulator *[]Leg) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == accumulator {
		return fault.NilPointer
	}
	if 0 == len(forward) {
		return nil
	}
	if len(reversal) != len(forward)-1 {
		return fault.InvalidReversalList
	}

	log := globalData.log

	for i, leg := range forward {
		err := post(leg)
		if nil != err {
			log.Warnf("batch leg: %d failed: %s  ref: %s", i, err, leg.Reference)
			for j, undo := range *accumulator {
				e := post(undo)
				if nil != e {
					log.Criticalf("reversal leg: %d failed: %s  ref: %s", j, e, undo.Reference)
					messagebus.Bus.Events.Send("error.posting.failure", undo.Reference.Bytes())
					return fault.PostingSystemFailure
				}
			}
			return err
		}
		if i < len(reversal) {
			*accumulator = append(*accumulator, reversal[i])
		}
	}
	return nil
}

// post - apply one leg to the store
//
// both the holder balance and the global aggregate are checked before
// either is written, so a failed leg leaves the store byte for byte
// unchanged; a committed leg writes the new balance, the aggregate,
// one audit trail row, the touched index and the posting counter as a
// single batch
//
// must hold the global lock
func post(leg Leg) error {

	if nil == leg.Party || nil == leg.Counterparty {
		return fault.NilPointer
	}
	// the inverse of the lowest representable amount does not exist,
	// such a leg could never be reversed
	if int128.Min() == leg.Amount {
		return fault.InvalidAmount
	}

	handles := globalData.handles

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	partyBytes := leg.Party.Bytes()
	codeBytes := leg.Account.Bytes()

	balanceKey := make([]byte, 0, len(partyBytes)+len(codeBytes))
	balanceKey = append(balanceKey, partyBytes...)
	balanceKey = append(balanceKey, codeBytes...)

	// holder balance, zero if no row yet
	balance := int128.Int128{}
	buffer, err := trx.Get(handles.Balances, balanceKey)
	if nil != err {
		trx.Abort()
		return err
	}
	if nil != buffer {
		balance, err = int128.Unpack(buffer)
		if nil != err {
			trx.Abort()
			return err
		}
	}

	newBalance, overflow := balance.Add(leg.Amount)
	if overflow {
		trx.Abort()
		messagebus.Bus.Events.Send("error.balance.overflow", leg.Reference.Bytes())
		return fault.BalanceOverflow
	}

	// per account aggregate across all holders
	global := int128.Int128{}
	buffer, err = trx.Get(handles.GlobalLedger, codeBytes)
	if nil != err {
		trx.Abort()
		return err
	}
	if nil != buffer {
		global, err = int128.Unpack(buffer)
		if nil != err {
			trx.Abort()
			return err
		}
	}

	newGlobal, overflow := global.Add(leg.Amount)
	if overflow {
		trx.Abort()
		messagebus.Bus.Events.Send("error.global.overflow", leg.Reference.Bytes())
		return fault.GlobalLedgerOverflow
	}

	// both additions verified, commit point reached
	index := globalData.postingIndex + 1

	amount := leg.Amount
	indicator := leg.Indicator
	if amount.IsNegative() {
		// audit rows carry the absolute amount
		amount, _ = amount.Neg()
	}
	detail := PostingDetail{
		Counterparty: leg.Counterparty,
		OriginPeriod: clock.Current(),
		Amount:       amount,
		Indicator:    indicator,
		Reference:    leg.Reference,
		AppliesAt:    leg.AppliesAt,
	}

	postingKey := make([]byte, 0, len(balanceKey)+8)
	postingKey = append(postingKey, balanceKey...)
	indexBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(indexBytes, index)
	postingKey = append(postingKey, indexBytes...)

	touched, err := trx.Get(handles.Touched, partyBytes)
	if nil != err {
		trx.Abort()
		return err
	}

	newBalancePacked := newBalance.Pack()
	newGlobalPacked := newGlobal.Pack()

	_ = trx.Put(handles.Balances, balanceKey, newBalancePacked[:])
	_ = trx.Put(handles.GlobalLedger, codeBytes, newGlobalPacked[:])
	_ = trx.Put(handles.Postings, postingKey, detail.pack())
	_ = trx.Put(handles.Touched, partyBytes, touchAccounts(touched, codeBytes))
	_ = trx.PutN(handles.Counters, []byte(postingCounter), index)

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.postingIndex = index

	amountPacked := leg.Amount.Pack()
	messagebus.Bus.Events.Send("ledger.update", partyBytes, codeBytes, amountPacked[:], indexBytes)

	return nil
}

// update the de-duplicated most-recently-touched-last account index
func touchAccounts(list []byte, codeBytes []byte) []byte {
	updated := make([]byte, 0, len(list)+len(codeBytes))
	for i := 0; i+len(codeBytes) <= len(list); i += len(codeBytes) {
		entry := list[i : i+len(codeBytes)]
		if string(entry) == string(codeBytes) {
			continue
		}
		updated = append(updated, entry...)
	}
	return append(updated, codeBytes...)
}
