// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/counter"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/rpc/fixtures"
	"github.com/countinghouse/ledgerd/rpc/mocks"
	"github.com/countinghouse/ledgerd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise("local")
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockLedger(ctl)

	c := counter.Counter(0)
	c.Admit(1)

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().Add(-time.Minute),
		"7.5",
		&c,
		e,
		func() uint64 { return 42 },
	)

	e.EXPECT().PostingIndex().Return(uint64(17)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "local", reply.Network, "wrong network")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(42), reply.Period, "wrong period")
	assert.Equal(t, uint64(17), reply.PostingIndex, "wrong posting index")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "7.5", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "empty uptime")
}
