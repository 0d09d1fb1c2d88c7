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
)

// Posting - one audit trail row with its posting index
type Posting struct {
	Index  uint64        `json:"index"`
	Detail PostingDetail `json:"detail"`
}

// BalanceFor - current balance of one (holder, account) pair
//
// a missing row reads as zero
func BalanceFor(holder *account.Account, code chart.Code) (int128.Int128, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return int128.Int128{}, fault.NotInitialised
	}
	if nil == holder {
		return int128.Int128{}, fault.NilPointer
	}

	key := append(holder.Bytes(), code.Bytes()...)
	buffer := globalData.handles.Balances.Get(key)
	if nil == buffer {
		return int128.Int128{}, nil
	}
	return int128.Unpack(buffer)
}

// GlobalFor - the aggregate balance of one account over all holders
func GlobalFor(code chart.Code) (int128.Int128, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return int128.Int128{}, fault.NotInitialised
	}

	buffer := globalData.handles.GlobalLedger.Get(code.Bytes())
	if nil == buffer {
		return int128.Int128{}, nil
	}
	return int128.Unpack(buffer)
}

// PostingsFor - audit trail rows for one (holder, account) pair
//
// returns up to count rows with posting index >= start, in index order
func PostingsFor(holder *account.Account, code chart.Code, start uint64, count int) ([]Posting, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == holder {
		return nil, fault.NilPointer
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	prefix := append(holder.Bytes(), code.Bytes()...)

	seek := make([]byte, 0, len(prefix)+8)
	seek = append(seek, prefix...)
	startBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(startBytes, start)
	seek = append(seek, startBytes...)

	cursor := globalData.handles.Postings.NewFetchCursor().Seek(seek)
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	postings := make([]Posting, 0, len(elements))
	for _, element := range elements {
		if len(element.Key) != len(prefix)+8 || string(element.Key[:len(prefix)]) != string(prefix) {
			break // the cursor ran into another pair's rows
		}
		detail, err := unpackPostingDetail(element.Value)
		if nil != err {
			return nil, err
		}
		postings = append(postings, Posting{
			Index:  binary.BigEndian.Uint64(element.Key[len(prefix):]),
			Detail: detail,
		})
	}
	return postings, nil
}

// TouchedBy - the accounts a holder has posted to
//
// de-duplicated, most recently touched last
func TouchedBy(holder *account.Account) ([]chart.Code, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	if nil == holder {
		return nil, fault.NilPointer
	}

	list := globalData.handles.Touched.Get(holder.Bytes())
	if 0 != len(list)%chart.CodeSize {
		return nil, fault.InvalidBufferLength
	}

	codes := make([]chart.Code, 0, len(list)/chart.CodeSize)
	for i := 0; i+chart.CodeSize <= len(list); i += chart.CodeSize {
		code, err := chart.CodeFromBytes(list[i : i+chart.CodeSize])
		if nil != err {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
