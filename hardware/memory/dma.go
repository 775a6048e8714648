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
	"fmt"

	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
)

// DMAPhase is the phase of the OAM DMA state machine.
type DMAPhase int

// List of DMA phases.
//
// Setup1 and Setup2 follow a trigger while the DMA is idle. Reset1 and Reset2
// follow a trigger while a transfer is already running. In both cases the
// first byte of the source page is latched at the end of the second phase and
// the DMA moves to Active.
const (
	Inactive DMAPhase = iota
	Setup1
	Setup2
	Reset1
	Reset2
	Active
)

func (p DMAPhase) String() string {
	switch p {
	case Inactive:
		return "Inactive"
	case Setup1:
		return "Setup1"
	case Setup2:
		return "Setup2"
	case Reset1:
		return "Reset1"
	case Reset2:
		return "Reset2"
	case Active:
		return "Active"
	}
	return "unknown DMA phase"
}

// DMAStatus is the phase of the DMA and, for the Active phase, the index of
// the OAM byte that will be written on the next tick.
type DMAStatus struct {
	Phase DMAPhase
	Index int
}

func (s DMAStatus) String() string {
	if s.Phase == Active {
		return fmt.Sprintf("Active(%d)", s.Index)
	}
	return s.Phase.String()
}

// the number of bytes copied by a DMA transfer.
const dmaLength = int(memorymap.MemtopOAM - memorymap.OriginOAM + 1)

// the DMA state machine is advanced once every dmaTickCycles.
const dmaTickCycles = 4

type dma struct {
	status DMAStatus

	// the last value written to the DMA register
	register uint8

	// start of the source page
	source uint16

	// the address of the most recently latched byte and the byte itself
	address uint16
	latch   uint8

	// cycles accumulated towards the next tick
	residue uint16
}

// trigger a transfer from the page in v. returns true if a running transfer
// has been restarted.
func (d *dma) trigger(v uint8) bool {
	d.register = v
	d.source = uint16(v) << 8

	switch d.status.Phase {
	case Active, Reset1, Reset2:
		d.status = DMAStatus{Phase: Reset1}
		return true
	}

	d.status = DMAStatus{Phase: Setup1}
	return false
}

// inFlight returns true if the DMA is using the bus.
func (d dma) inFlight() bool {
	switch d.status.Phase {
	case Active, Reset1, Reset2:
		return true
	}
	return false
}

// contends returns true if a CPU read of the address is on the same bus
// segment as the DMA.
func (d dma) contends(address uint16) bool {
	if !d.inFlight() {
		return false
	}
	seg := memorymap.SegmentOf(address)
	return seg != memorymap.NoSegment && seg == memorymap.SegmentOf(d.address)
}

// DMAStatus returns the current state of the DMA.
func (mem *Memory) DMAStatus() DMAStatus {
	return mem.dma.status
}

// fetch the byte at the offset into the source page into the DMA latch.
// source addresses at and above the echo area are read from work RAM.
func (mem *Memory) fetchDMA(offset int) {
	address := mem.dma.source + uint16(offset)
	if address >= memorymap.OriginEcho {
		address -= memorymap.EchoOffset
	}
	mem.dma.address = address
	mem.dma.latch = mem.read(address)
}

// tickDMA advances the DMA state machine by one step.
func (mem *Memory) tickDMA() {
	switch mem.dma.status.Phase {
	case Inactive:
	case Setup1:
		mem.dma.status.Phase = Setup2
	case Reset1:
		mem.dma.status.Phase = Reset2
	case Setup2, Reset2:
		mem.fetchDMA(0)
		mem.dma.status = DMAStatus{Phase: Active}
	case Active:
		i := mem.dma.status.Index
		mem.periph.Video.WriteOAM(uint16(i), mem.dma.latch)
		if i >= dmaLength-1 {
			mem.dma.status = DMAStatus{Phase: Inactive}
			return
		}
		mem.fetchDMA(i + 1)
		mem.dma.status.Index++
	}
}
