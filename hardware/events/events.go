// This file is part of Scimitar.
//
// Scimitar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scimitar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scimitar.  If not, see <https://www.gnu.org/licenses/>.

// Package events allow communication from the hardware to whatever is driving
// the emulation. Events are pushed onto a Sink during the memory Step()
// function.
//
// The Queue type is a simple Sink that stores events until they are drained.
package events

import "fmt"

// Event is a notification from the hardware.
type Event interface {
	fmt.Stringer
}

// WatchpointHit is pushed when a watched address has been written to.
type WatchpointHit struct {
	Address uint16
	Value   uint8
}

func (w WatchpointHit) String() string {
	return fmt.Sprintf("watchpoint hit: %04x <- %02x", w.Address, w.Value)
}

// Sink receives events.
type Sink interface {
	Push(e Event)
}

// Queue is an implementation of Sink.
type Queue struct {
	events []Event
}

// Push implements the Sink interface.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of events in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all events in the queue and empties it.
func (q *Queue) Drain() []Event {
	e := q.events
	q.events = nil
	return e
}
