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

// Package cpu emulates the SM83 CPU found in the Game Boy. The CPU is
// initialised with an implementation of the cpubus.Memory interface, through
// which all memory and register access takes place.
//
// The Step() function executes exactly one instruction and returns the number
// of clock cycles consumed. The caller should then step the rest of the
// hardware by that number of cycles. For example:
//
//	cycles, err := mc.Step()
//	if err != nil {
//		return err
//	}
//	mem.Step(cycles, dev, sink)
//
// Interrupts are serviced at instruction boundaries, at the beginning of the
// Step() function. Servicing an interrupt takes the place of executing an
// instruction for that step and consumes 20 cycles. The interrupt with the
// lowest bit number in the IF register has the highest priority.
//
// While the CPU is halted or stopped, Step() consumes 4 cycles without
// executing an instruction.
//
// The opcodes with no defined behaviour are a fatal error. Step() returns an
// error created with the UndefinedOpcode pattern and the emulation should not
// continue.
package cpu
