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
	"github.com/scimitar-emu/scimitar/hardware/device"
)

// TestROMOpcode is the opcode executed by test ROMs when the test has
// finished.
const TestROMOpcode = 0xed

// test ROMs indicate a pass by loading the Fibonacci sequence into these
// registers before executing TestROMOpcode.
var fibonacci = [...]uint8{3, 5, 8, 13, 21, 34}

// RunTestROM runs the emulation until the test ROM signals that it has
// finished, or until the cycle limit is reached. Returns true if the test ROM
// indicated a pass.
func (gb *GameBoy) RunTestROM(limit uint64, dev device.Device) (bool, error) {
	err := gb.RunUntilOpcode(TestROMOpcode, limit, dev, nil)
	if err != nil {
		return false, err
	}
	return gb.TestROMPassed(), nil
}

// TestROMPassed returns true if the registers contain the values that
// indicate a test ROM pass.
func (gb *GameBoy) TestROMPassed() bool {
	regs := [...]uint8{
		gb.CPU.B.Value(), gb.CPU.C.Value(), gb.CPU.D.Value(),
		gb.CPU.E.Value(), gb.CPU.H.Value(), gb.CPU.L.Value(),
	}
	return gb.CPU.A.Value() == 0 && regs == fibonacci
}
