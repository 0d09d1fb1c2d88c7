// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"time"

	"github.com/prometheus/common/log"
)

// rescanLoop - requeue leftover spool files on a slow ticker
//
// files survive in the spool directory when the daemon was stopped
// with batches pending or when a create event was dropped under load
func (in *spoolIntake) rescanLoop() {
	ticker := time.NewTicker(in.rescan)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-in.shutdown:
			break loop
		case <-ticker.C:
			in.rescanSpool()
		}
	}
}

// rescanSpool - queue every batch file currently in the spool directory
func (in *spoolIntake) rescanSpool() {
	names, err := filepath.Glob(filepath.Join(in.directory, "*"+spoolSuffix))
	if nil != err {
		log.Errorf("spool rescan: %s", err)
		return
	}
	for _, name := range names {
		in.enqueue(name)
	}
}
