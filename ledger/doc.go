// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the posting engine and multiposting orchestrator
//
// The ledger records double entry style postings against numbered
// chart of accounts codes.  A single leg applies one signed amount to
// one (holder, account) pair; the amount is checked against both the
// holder balance and the per account global aggregate before anything
// is written, so a leg either commits completely or leaves the store
// untouched.
//
// A batch of legs is applied strictly in order by ApplyBatch.  The
// store has no multi-leg transaction primitive, so the caller supplies
// a positionally aligned list of reversal legs (amount negated,
// indicator flipped) and the orchestrator replays the accumulated
// reversals to back out a partially applied batch.  A reversal that
// itself fails leaves the ledger inconsistent for that reference and
// is surfaced as fault.PostingSystemFailure.
//
// Every applied leg is stamped with a process wide monotonic posting
// index and recorded in an append only audit trail keyed by
// (holder, account, index).  Reversal legs mint fresh indices so the
// trail stays strictly increasing even when a batch is backed out.
package ledger
