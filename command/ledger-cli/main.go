// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/countinghouse/ledgerd/command/ledger-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to ledger `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise ledger-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*ledgerd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing private key `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = alternative to key)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing private key `KEY`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive-only account `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "account",
			Usage:  "show the account of an identity",
			Action: runAccount,
		},
		{
			Name:   "password",
			Usage:  "change an identity's password",
			Action: runChangePassword,
		},
		{
			Name:      "balance",
			Usage:     "posted balance of one holder on one account code",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account (default identity)",
				},
				cli.StringFlag{
					Name:  "code, c",
					Value: "",
					Usage: "*account `CODE` (decimal)",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "globals",
			Usage:     "network wide aggregate for one account code",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "code, c",
					Value: "",
					Usage: "*account `CODE` (decimal)",
				},
			},
			Action: runGlobals,
		},
		{
			Name:      "postings",
			Usage:     "audit trail page for one holder and account code",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account (default identity)",
				},
				cli.StringFlag{
					Name:  "code, c",
					Value: "",
					Usage: "*account `CODE` (decimal)",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first posting index `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 10,
					Usage: " number of records `COUNT`",
				},
			},
			Action: runPostings,
		},
		{
			Name:  "touched",
			Usage: "account codes a holder has posted to",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account (default identity)",
				},
			},
			Action: runTouched,
		},
		{
			Name:  "funds",
			Usage: "spendable value and locks of a holder",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account (default identity)",
				},
			},
			Action: runFunds,
		},
		{
			Name:      "deposit",
			Usage:     "credit value to the current identity (testing networks only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to credit `NUMBER`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "prefund",
			Usage:     "lock funds against a beneficiary under a new reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*beneficiary identity name or account `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to lock `NUMBER`",
				},
				cli.Uint64Flag{
					Name:  "deadline, d",
					Value: 0,
					Usage: "*deadline period `NUMBER`",
				},
			},
			Action: runPrefund,
		},
		{
			Name:      "invoice",
			Usage:     "post invoice legs against a prefunded reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*payer identity name or account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*invoice amount `NUMBER`",
				},
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*prefunded `REFERENCE` (hex)",
				},
			},
			Action: runInvoice,
		},
		{
			Name:      "settle",
			Usage:     "settle an invoiced reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*invoiced `REFERENCE` (hex)",
				},
			},
			Action: runSettle,
		},
		{
			Name:      "release",
			Usage:     "signal release or hold on a reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*prefunded `REFERENCE` (hex)",
				},
				cli.BoolFlag{
					Name:  "hold",
					Usage: " keep the funds held instead of releasing",
				},
			},
			Action: runRelease,
		},
		{
			Name:      "cancel",
			Usage:     "cancel a reference and return the locked funds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*prefunded `REFERENCE` (hex)",
				},
			},
			Action: runCancel,
		},
		{
			Name:      "status",
			Usage:     "status, parties and amounts of a reference",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*`REFERENCE` (hex)",
				},
			},
			Action: runStatus,
		},
		{
			Name:  "list",
			Usage: "references an owner has in play",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account (default identity)",
				},
			},
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display daemon status",
			Action: runInfo,
		},
		{
			Name:  "clock",
			Usage: "display the daemon period clock",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "advance, a",
					Value: 0,
					Usage: " skip periods (testing networks only) `NUMBER`",
				},
			},
			Action: runClock,
		},
		{
			Name:   "version",
			Usage:  "display ledger-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "generate" == command {
			return nil
		}

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "live", "production":
			network = "live"
		case "testing", "test":
			network = "testing"
		case "local", "regression":
			network = "local"
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: network != "live",
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			conf, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  conf,
				testnet: conf.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
