// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// period ticker background
type ticker struct {
	log *logger.L
}

// advance the period at each interval until shutdown
func (t *ticker) Run(args interface{}, shutdown <-chan struct{}) {

	log := t.log

	log.Info("starting…")

	delay := time.After(globalData.interval)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-delay:
			delay = time.After(globalData.interval)
			tick(log)
		}
	}

	log.Info("stopped")
}

// one period step, persisting when the store is free
func tick(log *logger.L) {
	globalData.Lock()
	advance()
	globalData.dirty = !persist()
	period := globalData.period
	dirty := globalData.dirty
	globalData.Unlock()

	if dirty {
		log.Debugf("period: %d (store busy)", period)
	} else {
		log.Debugf("period: %d", period)
	}
}
