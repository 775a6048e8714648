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

package hardware

import (
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/cpu"
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/events"
)

// Fatal is the error pattern for faults that stop the emulation. The
// emulation can not continue after a fatal error without a reset.
const Fatal = "hardware: fatal: %v"

// IsFatal returns true if the error is a fatal emulation fault.
func IsFatal(err error) bool {
	return curated.Is(err, Fatal)
}

// Step the emulation by one CPU instruction and advance the rest of the
// hardware by the number of cycles consumed. The device and the sink can be
// nil.
func (gb *GameBoy) Step(dev device.Device, sink events.Sink) (uint16, error) {
	cycles, err := gb.CPU.Step()
	if err != nil {
		if curated.Is(err, cpu.UndefinedOpcode) {
			return 0, curated.Errorf(Fatal, err)
		}
		return 0, err
	}

	gb.Mem.Step(cycles, dev, sink)
	gb.cycles += uint64(cycles)

	return cycles, nil
}

// NextOpcode returns the opcode at the program counter without side effects.
func (gb *GameBoy) NextOpcode() uint8 {
	return gb.Mem.Peek(gb.CPU.PC.Address())
}
