// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"encoding/binary"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/fault"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/util"
)

// Record - the locked amount and deadline of one prefunding
type Record struct {
	Amount   uint64 `json:"amount"`
	Deadline uint64 `json:"deadline"`
}

// OwnerRow - the parties and release bits of one prefunding
type OwnerRow struct {
	Owner       *account.Account `json:"owner"`
	Beneficiary *account.Account `json:"beneficiary"`
	State       ReleaseState     `json:"state"`
}

// prefunding record: amount then deadline
func (record Record) pack() []byte {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], record.Amount)
	binary.BigEndian.PutUint64(buffer[8:], record.Deadline)
	return buffer
}

func unpackRecord(buffer []byte) (Record, error) {
	if 16 != len(buffer) {
		return Record{}, fault.InvalidBufferLength
	}
	return Record{
		Amount:   binary.BigEndian.Uint64(buffer[:8]),
		Deadline: binary.BigEndian.Uint64(buffer[8:]),
	}, nil
}

// owner row: both packed accounts varint prefixed, then the two lock
// bits as one byte each
func (row OwnerRow) pack() []byte {
	owner := row.Owner.Bytes()
	beneficiary := row.Beneficiary.Bytes()
	ownerLock, beneficiaryLock := row.State.Bits()

	buffer := make([]byte, 0, len(owner)+len(beneficiary)+6)
	buffer = append(buffer, util.ToVarint64(uint64(len(owner)))...)
	buffer = append(buffer, owner...)
	buffer = append(buffer, lockByte(ownerLock))
	buffer = append(buffer, util.ToVarint64(uint64(len(beneficiary)))...)
	buffer = append(buffer, beneficiary...)
	buffer = append(buffer, lockByte(beneficiaryLock))
	return buffer
}

func unpackOwnerRow(buffer []byte) (OwnerRow, error) {
	row := OwnerRow{}

	owner, ownerLock, rest, err := unpackParty(buffer)
	if nil != err {
		return row, err
	}
	beneficiary, beneficiaryLock, rest, err := unpackParty(rest)
	if nil != err {
		return row, err
	}
	if 0 != len(rest) {
		return row, fault.InvalidBufferLength
	}

	row.Owner = owner
	row.Beneficiary = beneficiary
	row.State = stateFromBits(ownerLock, beneficiaryLock)
	return row, nil
}

func unpackParty(buffer []byte) (*account.Account, bool, []byte, error) {
	count, countLength := util.FromVarint64(buffer)
	if 0 == countLength {
		return nil, false, nil, fault.InvalidBufferLength
	}
	buffer = buffer[countLength:]
	if uint64(len(buffer)) < count+1 {
		return nil, false, nil, fault.InvalidBufferLength
	}
	party, err := account.AccountFromBytes(buffer[:count])
	if nil != err {
		return nil, false, nil, err
	}
	return party, 0 != buffer[count], buffer[count+1:], nil
}

func lockByte(lock bool) byte {
	if lock {
		return 1
	}
	return 0
}

// per owner reference list: concatenated 32 byte references
func appendReference(list []byte, ref ledger.Reference) []byte {
	updated := make([]byte, 0, len(list)+ledger.ReferenceSize)
	updated = append(updated, list...)
	return append(updated, ref[:]...)
}

func removeReference(list []byte, ref ledger.Reference) []byte {
	updated := make([]byte, 0, len(list))
	for i := 0; i+ledger.ReferenceSize <= len(list); i += ledger.ReferenceSize {
		entry := list[i : i+ledger.ReferenceSize]
		if string(entry) == string(ref[:]) {
			continue
		}
		updated = append(updated, entry...)
	}
	return updated
}

func referenceList(list []byte) ([]ledger.Reference, error) {
	if 0 != len(list)%ledger.ReferenceSize {
		return nil, fault.InvalidBufferLength
	}
	refs := make([]ledger.Reference, 0, len(list)/ledger.ReferenceSize)
	for i := 0; i+ledger.ReferenceSize <= len(list); i += ledger.ReferenceSize {
		ref, err := ledger.ReferenceFromBytes(list[i : i+ledger.ReferenceSize])
		if nil != err {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
