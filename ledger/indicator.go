// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/countinghouse/ledgerd/fault"
)

// Indicator - whether a leg is conceptually a debit or a credit
//
// stored for audit and reporting only, the arithmetic uses the signed
// amount and never inspects this flag
type Indicator byte

// the possible indicators
const (
	Debit Indicator = iota
	Credit
	// end of list (one greater than last item)
	indicatorLimit
)

// IsValid - range check
func (indicator Indicator) IsValid() bool {
	return indicator < indicatorLimit
}

// Reverse - the indicator of the inverse leg
func (indicator Indicator) Reverse() Indicator {
	if Debit == indicator {
		return Credit
	}
	return Debit
}

// String - convert an indicator to its name
func (indicator Indicator) String() string {
	switch indicator {
	case Debit:
		return "debit"
	case Credit:
		return "credit"
	default:
		return fmt.Sprintf("*unknown-indicator:%d*", byte(indicator))
	}
}

// GoString - enum value for debugging
func (indicator Indicator) GoString() string {
	return "<indicator:" + indicator.String() + ">"
}

// MarshalText - convert an indicator into JSON
func (indicator Indicator) MarshalText() ([]byte, error) {
	if !indicator.IsValid() {
		return nil, fault.InvalidItem
	}
	return []byte(indicator.String()), nil
}

// UnmarshalText - convert JSON to an indicator
func (indicator *Indicator) UnmarshalText(s []byte) error {
	switch string(s) {
	case "debit":
		*indicator = Debit
	case "credit":
		*indicator = Credit
	default:
		return fault.InvalidItem
	}
	return nil
}
