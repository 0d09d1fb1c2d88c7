// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/counter"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/mode"
	"github.com/countinghouse/ledgerd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - daemon information RPCs
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Engine  ledger.Ledger
	Period  func() uint64
	counter *counter.Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, count *counter.Counter, engine ledger.Ledger, period func() uint64) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Engine:  engine,
		Period:  period,
		counter: count,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network      string `json:"network"`
	Mode         string `json:"mode"`
	Period       uint64 `json:"period,string"`
	PostingIndex uint64 `json:"postingIndex,string"`
	RPCs         uint64 `json:"rpcs"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
}

// Info - daemon status summary
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.Period = node.Period()
	reply.PostingIndex = node.Engine.PostingIndex()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
