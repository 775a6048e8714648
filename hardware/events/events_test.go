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

package events_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/events"
	"github.com/scimitar-emu/scimitar/test"
)

func TestQueue(t *testing.T) {
	var q events.Queue
	test.ExpectEquality(t, q.Len(), 0)

	q.Push(events.WatchpointHit{Address: 0xc000, Value: 0x42})
	q.Push(events.WatchpointHit{Address: 0xc001, Value: 0x43})
	test.ExpectEquality(t, q.Len(), 2)

	e := q.Drain()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].String(), "watchpoint hit: c000 <- 42")
	test.ExpectEquality(t, q.Len(), 0)
}
