// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/clock"
	"github.com/countinghouse/ledgerd/counter"
	"github.com/countinghouse/ledgerd/escrow"
	"github.com/countinghouse/ledgerd/funds"
	"github.com/countinghouse/ledgerd/ledger"
	"github.com/countinghouse/ledgerd/mode"
	clockRPC "github.com/countinghouse/ledgerd/rpc/clock"
	fundsRPC "github.com/countinghouse/ledgerd/rpc/funds"
	ledgerRPC "github.com/countinghouse/ledgerd/rpc/ledger"
	"github.com/countinghouse/ledgerd/rpc/node"
	"github.com/countinghouse/ledgerd/rpc/prefunding"
)

// Create - register all services on a fresh RPC server
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(ledgerRPC.New(log, ledger.Get()))
	_ = server.Register(prefunding.New(log, mode.Is, escrow.Get()))
	_ = server.Register(fundsRPC.New(log, mode.Is, mode.IsTesting, funds.Get()))
	_ = server.Register(node.New(log, start, version, rpcCount, ledger.Get(), clock.Current))
	_ = server.Register(clockRPC.New(log, clock.Current, clock.Timestamp, clock.Advance))

	return server
}
