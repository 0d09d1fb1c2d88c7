// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/countinghouse/ledgerd/rpc/ratelimit"
)

const (
	rateLimitClock = 200
	rateBurstClock = 100
)

// Clock - period clock RPCs
//
// the advance operation exists so deadline behaviour can be exercised
// on a testing network; the engine refuses it on a live one
type Clock struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Period    func() uint64
	Timestamp func() uint64
	Advancer  func(uint64) (uint64, error)
}

// New - create the clock service
func New(log *logger.L, period func() uint64, timestamp func() uint64, advancer func(uint64) (uint64, error)) *Clock {
	return &Clock{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitClock, rateBurstClock),
		Period:    period,
		Timestamp: timestamp,
		Advancer:  advancer,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - current clock readings
type InfoReply struct {
	Period    uint64 `json:"period,string"`
	Timestamp uint64 `json:"timestamp,string"` // unix milliseconds
}

// Info - current period and wall clock reading
func (clock *Clock) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(clock.Limiter); nil != err {
		return err
	}

	reply.Period = clock.Period()
	reply.Timestamp = clock.Timestamp()

	return nil
}

// AdvanceArguments - number of periods to skip
type AdvanceArguments struct {
	Periods uint64 `json:"periods,string"`
}

// AdvanceReply - period after the skip
type AdvanceReply struct {
	Period uint64 `json:"period,string"`
}

// Advance - push the period counter forward on a testing network
func (clock *Clock) Advance(arguments *AdvanceArguments, reply *AdvanceReply) error {
	if err := ratelimit.Limit(clock.Limiter); nil != err {
		return err
	}

	log := clock.Log
	log.Infof("Clock.Advance: %+v", arguments)

	period, err := clock.Advancer(arguments.Periods)
	if nil != err {
		return err
	}
	reply.Period = period

	return nil
}
