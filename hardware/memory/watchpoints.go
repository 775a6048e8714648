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

package memory

import (
	"sort"

	"github.com/scimitar-emu/scimitar/hardware/events"
	"github.com/scimitar-emu/scimitar/logger"
)

type watchpoints struct {
	addresses map[uint16]bool
	hits      []events.WatchpointHit
}

func newWatchpoints() watchpoints {
	return watchpoints{
		addresses: make(map[uint16]bool),
	}
}

func (w *watchpoints) check(address uint16, data uint8) {
	if !w.addresses[address] {
		return
	}
	logger.Logf(logger.Allow, "watchpoint", "%04x <- %02x", address, data)
	w.hits = append(w.hits, events.WatchpointHit{Address: address, Value: data})
}

func (w *watchpoints) drain() []events.WatchpointHit {
	h := w.hits
	w.hits = nil
	return h
}

func (w *watchpoints) clearHits() {
	w.hits = nil
}

// AddWatchpoint adds the address to the list of addresses that generate an
// event when written to by the CPU.
func (mem *Memory) AddWatchpoint(address uint16) {
	mem.watches.addresses[address] = true
}

// RemoveWatchpoint removes the address from the list of watched addresses.
// Returns false if the address was not being watched.
func (mem *Memory) RemoveWatchpoint(address uint16) bool {
	if !mem.watches.addresses[address] {
		return false
	}
	delete(mem.watches.addresses, address)
	return true
}

// Watchpoints returns a sorted list of watched addresses.
func (mem *Memory) Watchpoints() []uint16 {
	l := make([]uint16, 0, len(mem.watches.addresses))
	for a := range mem.watches.addresses {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}
