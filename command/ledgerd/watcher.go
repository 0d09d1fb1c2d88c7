// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/countinghouse/ledgerd/ledger"
)

// spool intake
//
// producers drop posting batch files into the spool directory: a JSON
// array of ledger legs, written to a temporary name and renamed into
// place with a ".json" suffix.  Each batch is applied atomically with
// compensating rollback; the file then moves to done/ or failed/ for
// operator inspection.
const (
	spoolSuffix        = ".json"
	doneDirectoryName  = "done"
	failedDirectory    = "failed"
	spoolQueueSize     = 100
	defaultSpoolRescan = "1m"
)

type spoolIntake struct {
	log       *logger.L
	directory string
	doneDir   string
	failedDir string
	rescan    time.Duration
	watcher   *fsnotify.Watcher
	queue     chan string
	shutdown  chan struct{}
}

// newSpoolIntake - create the intake for a spool directory
func newSpoolIntake(configuration SpoolType, log *logger.L) (*spoolIntake, error) {

	rescan := configuration.Rescan
	if "" == rescan {
		rescan = defaultSpoolRescan
	}
	interval, err := time.ParseDuration(rescan)
	if nil != err {
		return nil, err
	}

	doneDir := filepath.Join(configuration.Directory, doneDirectoryName)
	failedDir := filepath.Join(configuration.Directory, failedDirectory)
	for _, d := range []string{doneDir, failedDir} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &spoolIntake{
		log:       log,
		directory: configuration.Directory,
		doneDir:   doneDir,
		failedDir: failedDir,
		rescan:    interval,
		watcher:   watcher,
		queue:     make(chan string, spoolQueueSize),
		shutdown:  make(chan struct{}),
	}, nil
}

// Start - watch the directory and process queued batch files
func (in *spoolIntake) Start() error {
	err := in.watcher.Add(in.directory)
	if nil != err {
		in.log.Errorf("watcher add: %q error: %s", in.directory, err)
		return err
	}

	go in.eventLoop()
	go in.processLoop()
	go in.rescanLoop()

	// pick up anything already waiting
	in.rescanSpool()

	return nil
}

// Stop - shut down the intake
func (in *spoolIntake) Stop() {
	close(in.shutdown)
	in.watcher.Close()
}

// turn file system events into queue items
func (in *spoolIntake) eventLoop() {
	log := in.log

loop:
	for {
		select {
		case <-in.shutdown:
			break loop

		case event, ok := <-in.watcher.Events:
			if !ok {
				break loop
			}
			if 0 == event.Op&(fsnotify.Create|fsnotify.Rename) {
				continue loop
			}
			if !strings.HasSuffix(event.Name, spoolSuffix) {
				continue loop
			}
			log.Debugf("file event: %v", event)
			in.enqueue(event.Name)

		case err, ok := <-in.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Info("event loop stopped")
}

// queue a file, dropping the event when the queue is full
//
// a dropped event is recovered by the periodic rescan
func (in *spoolIntake) enqueue(name string) {
	select {
	case in.queue <- name:
	default:
		in.log.Warnf("queue full, dropping: %q", name)
	}
}

// drain the queue
func (in *spoolIntake) processLoop() {
loop:
	for {
		select {
		case <-in.shutdown:
			break loop
		case name := <-in.queue:
			in.processFile(name)
		}
	}
	in.log.Info("process loop stopped")
}

// apply one batch file and archive it
func (in *spoolIntake) processFile(name string) {
	log := in.log

	data, err := ioutil.ReadFile(name)
	if nil != err {
		if os.IsNotExist(err) {
			return // already processed by an earlier event
		}
		log.Errorf("read: %q error: %s", name, err)
		return
	}

	var forward []ledger.Leg
	err = json.Unmarshal(data, &forward)
	if nil != err {
		log.Errorf("parse: %q error: %s", name, err)
		in.archive(name, in.failedDir)
		return
	}
	if 0 == len(forward) {
		log.Warnf("empty batch: %q", name)
		in.archive(name, in.failedDir)
		return
	}

	reversal, err := ledger.ReversalList(forward)
	if nil != err {
		log.Errorf("reversal: %q error: %s", name, err)
		in.archive(name, in.failedDir)
		return
	}

	accumulator := make([]ledger.Leg, 0, len(forward))
	err = ledger.ApplyBatch(forward, reversal, &accumulator)
	if nil != err {
		log.Errorf("apply: %q error: %s", name, err)
		in.archive(name, in.failedDir)
		return
	}

	log.Infof("applied: %q  legs: %d", name, len(forward))
	in.archive(name, in.doneDir)
}

// move a processed file out of the spool directory
func (in *spoolIntake) archive(name string, directory string) {
	target := filepath.Join(directory, filepath.Base(name))
	err := os.Rename(name, target)
	if nil != err {
		in.log.Errorf("archive: %q to: %q error: %s", name, target, err)
	}
}
