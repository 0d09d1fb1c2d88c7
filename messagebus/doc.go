// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues connecting the engine to the event
// publisher and the spool intake
package messagebus
