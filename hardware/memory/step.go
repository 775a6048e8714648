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
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/events"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
)

// Step advances the DMA and every peripheral by the number of cycles.
// Interrupts raised by the peripherals are added to the IF register.
// Watchpoints hit since the previous call to Step() are pushed to the sink,
// which can be nil.
func (mem *Memory) Step(cycles uint16, dev device.Device, sink events.Sink) {
	mem.dma.residue += cycles
	for mem.dma.residue >= dmaTickCycles {
		mem.dma.residue -= dmaTickCycles
		mem.tickDMA()
	}

	var irq interrupt.Accumulator
	mem.periph.Video.Step(cycles, dev, &irq)
	mem.periph.Audio.Step(cycles, dev, &irq)
	mem.periph.Timer.Step(cycles, dev, &irq)
	mem.periph.Joypad.Step(cycles, dev, &irq)
	mem.periph.Serial.Step(cycles, dev, &irq)
	mem.irq.Merge(irq)

	for _, h := range mem.watches.drain() {
		if sink != nil {
			sink.Push(h)
		}
	}
}
