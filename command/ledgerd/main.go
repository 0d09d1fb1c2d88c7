// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/escrow"
	"github.com/countinghouse/ledgerd/funds"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/publish"
	"github.com/countinghouse/ledgerd/rpc"
	"github.com/countinghouse/ledgerd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Network)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the value store - applies any genesis allocations on an
	// empty database
	log.Info("initialise funds")
	err = funds.Initialise(funds.Handles{
		Balances: storage.Pool.FreeBalances,
		Locks:    storage.Pool.Locks,
		Counters: storage.Pool.Counters,
	}, theConfiguration.Funds)
	if nil != err {
		log.Criticalf("funds initialise error: %s", err)
		exitwithstatus.Message("funds initialise error: %s", err)
	}
	defer funds.Finalise()

	// the period clock - before the posting engine so references
	// can be generated as soon as postings are accepted
	interval, err := time.ParseDuration(theConfiguration.Clock.Interval)
	if nil != err {
		log.Criticalf("clock interval: %q error: %s", theConfiguration.Clock.Interval, err)
		exitwithstatus.Message("clock interval: %q error: %s", theConfiguration.Clock.Interval, err)
	}
	log.Info("initialise clock")
	err = clock.Initialise(interval)
	if nil != err {
		log.Criticalf("clock initialise error: %s", err)
		exitwithstatus.Message("clock initialise error: %s", err)
	}
	defer clock.Finalise()

	// the posting engine
	log.Info("initialise ledger")
	err = ledger.Initialise(ledger.Handles{
		Balances:     storage.Pool.Balances,
		GlobalLedger: storage.Pool.GlobalLedger,
		Postings:     storage.Pool.Postings,
		Touched:      storage.Pool.Touched,
		Counters:     storage.Pool.Counters,
	})
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}
	defer ledger.Finalise()

	// the escrow state machine - depends on ledger and funds
	log.Info("initialise escrow")
	err = escrow.Initialise(escrow.Handles{
		Prefunding:       storage.Pool.Prefunding,
		PrefundingOwners: storage.Pool.PrefundingOwners,
		OwnerRefs:        storage.Pool.OwnerRefs,
		ReferenceStatus:  storage.Pool.ReferenceStatus,
	}, funds.Get())
	if nil != err {
		log.Criticalf("escrow initialise error: %s", err)
		exitwithstatus.Message("escrow initialise error: %s", err)
	}
	defer escrow.Finalise()

	// start up the event publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// start the spool intake
	intake, err := newSpoolIntake(theConfiguration.Spool, logger.New("spool"))
	if nil != err {
		log.Criticalf("spool initialise error: %s", err)
		exitwithstatus.Message("spool initialise error: %s", err)
	}
	err = intake.Start()
	if nil != err {
		log.Criticalf("spool start error: %s", err)
		exitwithstatus.Message("spool start error: %s", err)
	}
	defer intake.Stop()

	// no sync phase on a single node ledger, go straight to normal
	mode.Set(mode.Normal)

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
