// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/countinghouse/ledgerd/account"
	"github.com/countinghouse/ledgerd/chart"
	"github.com/countinghouse/ledgerd/int128"
)

// Ledger - the posting engine as seen by the RPC services
type Ledger interface {
	BalanceFor(holder *account.Account, code chart.Code) (int128.Int128, error)
	GlobalFor(code chart.Code) (int128.Int128, error)
	PostingsFor(holder *account.Account, code chart.Code, start uint64, count int) ([]Posting, error)
	TouchedBy(holder *account.Account) ([]chart.Code, error)
	PostingIndex() uint64
}

// access to the global engine through the Ledger interface
type access struct{}

func (access) BalanceFor(holder *account.Account, code chart.Code) (int128.Int128, error) {
	return BalanceFor(holder, code)
}
func (access) GlobalFor(code chart.Code) (int128.Int128, error) {
	return GlobalFor(code)
}
func (access) PostingsFor(holder *account.Account, code chart.Code, start uint64, count int) ([]Posting, error) {
	return PostingsFor(holder, code, start, count)
}
func (access) TouchedBy(holder *account.Account) ([]chart.Code, error) {
	return TouchedBy(holder)
}
func (access) PostingIndex() uint64 {
	return PostingIndex()
}

// Get - the global posting engine
func Get() Ledger {
	return access{}
}
