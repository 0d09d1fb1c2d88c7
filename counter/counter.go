// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a connection admission gate shared by the RPC surfaces
//
// the zero value is ready for use
type Counter uint64

// Admit - count one more connection, refusing when the limit is
// already reached
//
// a refused connection leaves the count untouched and must not call
// Done
func (c *Counter) Admit(limit uint64) bool {
	if atomic.AddUint64((*uint64)(c), 1) > limit {
		atomic.AddUint64((*uint64)(c), ^uint64(0))
		return false
	}
	return true
}

// Done - count one admitted connection as closed
func (c *Counter) Done() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - the number of connections currently admitted
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true when no connections are in flight
func (c *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64((*uint64)(c))
}
