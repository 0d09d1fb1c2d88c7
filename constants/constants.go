// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// the escrow deadline window
//
// a prefunding deadline must be at least this many periods past the
// current period: 48 hours at one period every 15 seconds
const (
	MinimumDeadlineBlocks = 11520
)

// the balance a holder must keep after locking funds
const (
	MinimumRetainedBalance = 1618
)

// period clock advance interval
const (
	DefaultClockInterval = 15 * time.Second
)

// spool directory rescan for leftover batch files
const (
	RescanInterval = 1 * time.Minute
)
