// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"fmt"
)

// Status - lifecycle marker of a reference
//
// the numeric values are stable storage codes and must not be
// renumbered
type Status uint64

// all possible statuses
const (
	Draft     Status = 0
	Submitted Status = 1
	Cancelled Status = 50
	Disputed  Status = 100
	Rejected  Status = 200
	Accepted  Status = 300
	Invoiced  Status = 400
	Settled   Status = 500
	Blocked   Status = 999
)

// IsUsable - the reference is still in play
//
// cancelled, settled and blocked references are terminal and a
// reference is never reused once any status exists
func (status Status) IsUsable() bool {
	switch status {
	case Draft, Submitted, Disputed, Rejected, Accepted, Invoiced:
		return true
	default:
		return false
	}
}

// String - convert a status to its name
func (status Status) String() string {
	switch status {
	case Draft:
		return "draft"
	case Submitted:
		return "submitted"
	case Cancelled:
		return "cancelled"
	case Disputed:
		return "disputed"
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	case Invoiced:
		return "invoiced"
	case Settled:
		return "settled"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("*unknown-status:%d*", uint64(status))
	}
}

// GoString - enum value for debugging
func (status Status) GoString() string {
	return "<status:" + status.String() + ">"
}

// MarshalText - convert a status into JSON
func (status Status) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}
