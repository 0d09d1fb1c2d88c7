// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - the prefunding state machine and order recipes
//
// A prefunding holds a payer's spendable value against a deadline and
// a beneficiary's eventual claim.  Each prefunding is identified by an
// opaque correlation reference and carries a dual control release
// state: one lock bit per party, and only the narrow transitions in
// the table in release.go are legal.  No state lets a single party
// force release of the other party's claim.
//
// The recipe operations combine three effects that are deliberately
// not atomic with each other: a ledger batch through the multiposting
// orchestrator, the working rows held here, and the value lock or
// transfer in the funds package.  The ledger batch rolls itself back
// on failure; a value side failure after a committed batch is fatal
// and marks the reference blocked for manual reconciliation.
package escrow
