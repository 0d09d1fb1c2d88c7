// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Counting House Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Message - message to put into a queue
type Message struct {
	Command    string   // the event or action name
	Parameters [][]byte // array of encoded parameters
}

// Queue - 1:1 queue with blocking send
type Queue struct {
	c chan Message
}

// BroadcastQueue - 1:M queue
//
// each receiver gets its own channel; output is never blocking, a
// receiver that cannot keep up loses messages
type BroadcastQueue struct {
	sync.RWMutex
	in          chan Message
	out         []chan Message
	defaultSize int
}

// Bus - all available queues
var Bus struct {
	Events    *BroadcastQueue `size:"1000"` // event stream for external subscribers
	Spool     *Queue          `size:"200"`  // batch file intake for the applier
	TestQueue *Queue          `size:"50"`   // for testing use
}

// default queue size if the tag is missing
const defaultQueueSize = 100

// create all queues
func init() {
	busValue := reflect.ValueOf(&Bus).Elem()
	busType := busValue.Type()
	for i := 0; i < busType.NumField(); i += 1 {
		field := busType.Field(i)

		queueSize := defaultQueueSize
		sizeTag := field.Tag.Get("size")
		if "" != sizeTag {
			s, err := strconv.Atoi(sizeTag)
			if nil != err {
				m := fmt.Sprintf("queue: %v  has invalid size: %q", field.Name, sizeTag)
				panic(m)
			}
			queueSize = s
		}

		switch qt := field.Type.String(); qt {
		case "*messagebus.Queue":
			q := &Queue{
				c: make(chan Message, queueSize),
			}
			busValue.Field(i).Set(reflect.ValueOf(q))
		case "*messagebus.BroadcastQueue":
			q := &BroadcastQueue{
				in:          make(chan Message, queueSize),
				out:         make([]chan Message, 0, 10),
				defaultSize: queueSize,
			}
			busValue.Field(i).Set(reflect.ValueOf(q))
			go q.process()
		default:
			m := fmt.Sprintf("queue: %v  has invalid type: %q", field.Name, qt)
			panic(m)
		}
	}
}

// Send - send a message to a 1:1 queue
// blocks if queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from a 1:1 queue
// can only be read by one process
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - drain any pending messages
func (queue *Queue) Release() {
drain:
	for {
		select {
		case <-queue.c:
		default:
			break drain
		}
	}
}

// Send - send a message to a 1:M queue
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.in <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - get a new channel to read from a 1:M queue
// each call gets a distinct channel
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queue.defaultSize
	}
	c := make(chan Message, size)
	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()
	return c
}

// background to distribute to all receivers
// outputs are held open so receivers never see a close
func (queue *BroadcastQueue) process() {
	for m := range queue.in {
		queue.RLock()
		for _, out := range queue.out {
			select {
			case out <- m:
			default: // receiver is not keeping up
			}
		}
		queue.RUnlock()
	}
}
