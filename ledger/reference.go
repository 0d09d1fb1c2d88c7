// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/fault"
)

// ReferenceSize - bytes in a correlation reference
const ReferenceSize = 32

// Reference - opaque correlation id shared by every leg and event of
// one logical business transaction
type Reference [ReferenceSize]byte

// NewReference - derive a fresh correlation reference for a pair of
// parties
//
// hash over both packed accounts, the wall clock, the per period
// random seed and the period/extrinsic counters; the collision
// probability is negligible and is not separately checked
func NewReference(partyA *account.Account, partyB *account.Account) (Reference, error) {
	if nil == partyA || nil == partyB {
		return Reference{}, fault.NilPointer
	}

	seed := clock.Seed()

	counters := make([]byte, 3*8)
	binary.BigEndian.PutUint64(counters[0:], clock.Timestamp())
	binary.BigEndian.PutUint64(counters[8:], clock.Current())
	binary.BigEndian.PutUint64(counters[16:], clock.NextExtrinsic())

	buffer := make([]byte, 0, 128)
	buffer = append(buffer, partyA.Bytes()...)
	buffer = append(buffer, partyB.Bytes()...)
	buffer = append(buffer, seed[:]...)
	buffer = append(buffer, counters...)

	return Reference(sha3.Sum256(buffer)), nil
}

// DerivedReference - the reference bound to a signed client record
//
// the same record always derives the same reference, so a replayed
// record collides with its original and is refused by the reference
// reuse rule
func DerivedReference(record []byte) Reference {
	buffer := make([]byte, 0, len(record)+8)
	buffer = append(buffer, []byte("derived:")...)
	buffer = append(buffer, record...)
	return Reference(sha3.Sum256(buffer))
}

// ReferenceFromBytes - unpack a 32 byte reference
func ReferenceFromBytes(buffer []byte) (Reference, error) {
	if ReferenceSize != len(buffer) {
		return Reference{}, fault.InvalidBufferLength
	}
	var ref Reference
	copy(ref[:], buffer)
	return ref, nil
}

// Bytes - the reference as a byte slice
func (ref Reference) Bytes() []byte {
	return ref[:]
}

// LockId - the first 8 bytes, used as the value lock identifier
func (ref Reference) LockId() [8]byte {
	var id [8]byte
	copy(id[:], ref[:8])
	return id
}

// String - the reference as plain hex
func (ref Reference) String() string {
	return hex.EncodeToString(ref[:])
}

// GoString - the reference for debugging
func (ref Reference) GoString() string {
	return fmt.Sprintf("<ref:%s>", ref.String())
}

// MarshalText - convert a reference into JSON
func (ref Reference) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(ref)))
	hex.Encode(buffer, ref[:])
	return buffer, nil
}

// UnmarshalText - convert JSON hex to a reference
func (ref *Reference) UnmarshalText(s []byte) error {
	if hex.EncodedLen(ReferenceSize) != len(s) {
		return fault.InvalidBufferLength
	}
	_, err := hex.Decode(ref[:], s)
	if nil != err {
		return fault.InvalidItem
	}
	return nil
}
