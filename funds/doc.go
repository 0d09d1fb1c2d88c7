// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package funds - the spendable value store and locking primitive
//
// The ledger proper is a shadow book for financial statements; the
// real spendable value of a holder lives here as an unsigned balance.
// A lock holds part of a balance until a period is reached, a free
// balance is the balance less all locks still in force.  The escrow
// engine drives this package through the Funds interface and never
// touches the pools directly.
//
// Lock, unlock and transfer are deliberately outside the posting
// engine's rollback scope: the escrow recipes order their ledger
// effect first and treat a value side failure after a committed batch
// as fatal.
package funds
