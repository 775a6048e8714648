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

package interrupt_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/test"
)

func TestKinds(t *testing.T) {
	test.ExpectEquality(t, interrupt.VBlank.Vector(), uint16(0x40))
	test.ExpectEquality(t, interrupt.LCDStat.Vector(), uint16(0x48))
	test.ExpectEquality(t, interrupt.Timer.Vector(), uint16(0x50))
	test.ExpectEquality(t, interrupt.Serial.Vector(), uint16(0x58))
	test.ExpectEquality(t, interrupt.Joypad.Vector(), uint16(0x60))
	test.ExpectEquality(t, interrupt.Joypad.Mask(), uint8(0x10))
}

func TestAccumulator(t *testing.T) {
	var acc interrupt.Accumulator
	test.ExpectEquality(t, acc.Value(), uint8(0))

	acc.Raise(interrupt.Timer)
	acc.Raise(interrupt.Serial)
	acc.Raise(interrupt.Timer)
	test.ExpectEquality(t, acc.Value(), uint8(0x0c))

	var r interrupt.Registers
	test.ExpectEquality(t, r.ReadFlag(), uint8(0xe0))
	r.Merge(acc)
	test.ExpectEquality(t, r.ReadFlag(), uint8(0xec))

	// merge does not clear existing requests
	var acc2 interrupt.Accumulator
	acc2.Raise(interrupt.VBlank)
	r.Merge(acc2)
	test.ExpectEquality(t, r.ReadFlag(), uint8(0xed))
}

func TestTopBits(t *testing.T) {
	var r interrupt.Registers

	r.WriteFlag(0x00)
	test.ExpectEquality(t, r.ReadFlag(), uint8(0xe0))
	r.WriteFlag(0xff)
	test.ExpectEquality(t, r.ReadFlag(), uint8(0xff))
	r.WriteFlag(0x01)
	test.ExpectEquality(t, r.ReadFlag(), uint8(0xe1))

	r.WriteEnable(0x00)
	test.ExpectEquality(t, r.ReadEnable(), uint8(0xe0))
	r.WriteEnable(0x05)
	test.ExpectEquality(t, r.ReadEnable(), uint8(0xe5))
}

func TestPriority(t *testing.T) {
	var r interrupt.Registers
	r.WriteFlag(0x1f)
	r.WriteEnable(0x1c)
	test.ExpectEquality(t, r.Pending(), uint8(0x1c))

	k, ok := interrupt.Highest(r.Pending())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, interrupt.Timer)

	_, ok = interrupt.Highest(0)
	test.ExpectFailure(t, ok)
}
