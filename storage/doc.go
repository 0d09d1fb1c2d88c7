// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains two LevelDB databases each split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++            = concatenation of byte data
// 3. account       = key variant byte ++ 32 byte public key (33 bytes)
// 4. code          = ledger account code as big endian uint64 (8 bytes)
// 5. amount        = signed 128 bit integer as 16 big endian bytes
// 6. index         = successive posting index as big endian uint64 (8 bytes)
// 7. reference     = 32 byte record reference
// 8. period        = posting period number as big endian uint64 (8 bytes)
// 9. *others*      = byte values of various length
//
// Ledger database:
//
//   B ++ account ++ code       - per account ledger balance
//                                data: amount
//   G ++ code                  - global aggregate per ledger
//                                data: amount
//   P ++ account ++ code ++ index
//                              - posting detail
//                                data: packed posting record
//   T ++ account ++ code       - last period this account ledger was touched
//                                data: period
//   N ++ name                  - named counters (posting index, period, extrinsics, seed)
//                                data: count or seed bytes
//   F ++ reference             - prefunded amount and release state
//                                data: amount ++ release state byte ++ deadline(8 bytes)
//   O ++ reference             - parties to a prefunding
//                                data: owner account ++ beneficiary account
//   R ++ account ++ reference  - references created by an owner
//                                data: 0x01
//   S ++ reference             - reference status
//                                data: status as big endian uint64 (8 bytes)
//
// Funds database:
//
//   M ++ account               - free funds balance
//                                data: big endian uint64 (8 bytes)
//   L ++ account ++ lock id    - funds lock
//                                data: locked amount as big endian uint64 (8 bytes)
//
// Testing:
//   Z ++ key                   - testing data
package storage
