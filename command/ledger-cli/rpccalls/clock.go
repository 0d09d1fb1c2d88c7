// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	clockRPC "github.com/countinghouse/ledgerd/rpc/clock"
)

// GetClockInfo - current period and timestamp of the daemon clock
func (client *Client) GetClockInfo() (*clockRPC.InfoReply, error) {
	var reply clockRPC.InfoReply
	if err := client.client.Call("Clock.Info", clockRPC.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// AdvanceClock - skip periods on a testing network
func (client *Client) AdvanceClock(periods uint64) (*clockRPC.AdvanceReply, error) {

	advanceArgs := clockRPC.AdvanceArguments{
		Periods: periods,
	}

	client.printJson("Advance Request", advanceArgs)

	reply := &clockRPC.AdvanceReply{}
	err := client.client.Call("Clock.Advance", advanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Advance Reply", reply)

	return reply, nil
}
