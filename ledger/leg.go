// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/int128"
	"github.com/countinghouse/ledgerd/util"
)

// Leg - one signed amount posting to one (holder, account) pair
type Leg struct {
	Party        *account.Account `json:"party"`
	Counterparty *account.Account `json:"counterparty"`
	Account      chart.Code       `json:"account"`
	Amount       int128.Int128    `json:"amount"`
	Indicator    Indicator        `json:"indicator"`
	Reference    Reference        `json:"reference"`
	AppliesAt    uint64           `json:"appliesAt"`
}

// Reversed - the arithmetic inverse of a leg
//
// amount negated and indicator flipped; fails only for the single
// unrepresentable negation at the bottom of the int128 range
func (leg Leg) Reversed() (Leg, error) {
	negated, overflow := leg.Amount.Neg()
	if overflow {
		return Leg{}, fault.BalanceOverflow
	}
	reversed := leg
	reversed.Amount = negated
	reversed.Indicator = leg.Indicator.Reverse()
	return reversed, nil
}

// ReversalList - derive the caller supplied reversal list for a batch
//
// one inverse per forward leg except the structurally last one: if the
// last leg succeeds nothing after it can fail, so it never needs
// undoing
func ReversalList(forward []Leg) ([]Leg, error) {
	if len(forward) < 1 {
		return nil, nil
	}
	reversal := make([]Leg, len(forward)-1)
	for i := 0; i < len(forward)-1; i += 1 {
		r, err := forward[i].Reversed()
		if nil != err {
			return nil, err
		}
		reversal[i] = r
	}
	return reversal, nil
}

// PostingDetail - one append only audit trail row
//
// the row is keyed by (holder, account, posting index) and never
// mutated once written
type PostingDetail struct {
	Counterparty *account.Account `json:"counterparty"`
	OriginPeriod uint64           `json:"originPeriod"`
	Amount       int128.Int128    `json:"amount"` // absolute value
	Indicator    Indicator        `json:"indicator"`
	Reference    Reference        `json:"reference"`
	AppliesAt    uint64           `json:"appliesAt"`
}

// pack a posting detail for the audit trail pool
//
// layout: varint count + packed counterparty account, origin period,
// absolute amount, indicator, reference, applies-at period
func (detail PostingDetail) pack() []byte {
	counterparty := detail.Counterparty.Bytes()
	amount := detail.Amount.Pack()

	buffer := make([]byte, 0, len(counterparty)+9+int128.Size+1+ReferenceSize+8)
	buffer = append(buffer, util.ToVarint64(uint64(len(counterparty)))...)
	buffer = append(buffer, counterparty...)

	period := make([]byte, 8)
	binary.BigEndian.PutUint64(period, detail.OriginPeriod)
	buffer = append(buffer, period...)

	buffer = append(buffer, amount[:]...)
	buffer = append(buffer, byte(detail.Indicator))
	buffer = append(buffer, detail.Reference[:]...)

	binary.BigEndian.PutUint64(period, detail.AppliesAt)
	buffer = append(buffer, period...)

	return buffer
}

// unpack a posting detail row
func unpackPostingDetail(buffer []byte) (PostingDetail, error) {
	detail := PostingDetail{}

	count, countLength := util.FromVarint64(buffer)
	if 0 == countLength {
		return detail, fault.InvalidBufferLength
	}
	buffer = buffer[countLength:]
	if uint64(len(buffer)) < count {
		return detail, fault.InvalidBufferLength
	}

	counterparty, err := account.AccountFromBytes(buffer[:count])
	if nil != err {
		return detail, err
	}
	detail.Counterparty = counterparty
	buffer = buffer[count:]

	if 8+int128.Size+1+ReferenceSize+8 != len(buffer) {
		return detail, fault.InvalidBufferLength
	}

	detail.OriginPeriod = binary.BigEndian.Uint64(buffer[:8])
	buffer = buffer[8:]

	amount, err := int128.Unpack(buffer[:int128.Size])
	if nil != err {
		return detail, err
	}
	detail.Amount = amount
	buffer = buffer[int128.Size:]

	detail.Indicator = Indicator(buffer[0])
	if !detail.Indicator.IsValid() {
		return detail, fault.InvalidItem
	}
	buffer = buffer[1:]

	copy(detail.Reference[:], buffer[:ReferenceSize])
	buffer = buffer[ReferenceSize:]

	detail.AppliesAt = binary.BigEndian.Uint64(buffer)

	return detail, nil
}
