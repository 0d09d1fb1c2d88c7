// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	nodeRPC "github.com/countinghouse/ledgerd/rpc/node"
)

// GetNodeInfo - request status from ledgerd
func (client *Client) GetNodeInfo() (*nodeRPC.InfoReply, error) {
	var reply nodeRPC.InfoReply
	if err := client.client.Call("Node.Info", nodeRPC.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
