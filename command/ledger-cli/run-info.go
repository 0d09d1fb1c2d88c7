// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

// display the daemon status record
func runInfo(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

// display the period clock, optionally skipping periods first
func runClock(c *cli.Context) error {

	m, err := checkMetadata(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	periods := c.Uint64("advance")
	if 0 != periods {
		response, err := client.AdvanceClock(periods)
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	response, err := client.GetClockInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
