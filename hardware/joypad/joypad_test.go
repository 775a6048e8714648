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

package joypad_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/joypad"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/test"
)

type keys struct {
	device.Headless
	down map[device.Key]bool
}

func (k *keys) KeyDown(key device.Key) bool {
	return k.down[key]
}

func TestSelect(t *testing.T) {
	joy := joypad.NewJoypad()
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xff))

	joy.WriteReg(cpubus.P1, 0x00)
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xcf))

	// lower bits are not writable
	joy.WriteReg(cpubus.P1, 0x2f)
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xef))
}

func TestKeys(t *testing.T) {
	joy := joypad.NewJoypad()
	dev := &keys{down: map[device.Key]bool{device.Up: true, device.Start: true}}

	var irq interrupt.Accumulator
	joy.Step(4, dev, &irq)

	// nothing selected so no interrupt
	test.ExpectEquality(t, irq.Value(), uint8(0))
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xff))

	joy.WriteReg(cpubus.P1, 0x20)
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xeb))

	joy.WriteReg(cpubus.P1, 0x10)
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xd7))

	joy.WriteReg(cpubus.P1, 0x00)
	test.ExpectEquality(t, joy.ReadReg(cpubus.P1), uint8(0xc3))
}

func TestInterrupt(t *testing.T) {
	joy := joypad.NewJoypad()
	dev := &keys{down: map[device.Key]bool{}}

	joy.WriteReg(cpubus.P1, 0x10)

	var irq interrupt.Accumulator
	joy.Step(4, dev, &irq)
	test.ExpectEquality(t, irq.Value(), uint8(0))

	dev.down[device.A] = true
	joy.Step(4, dev, &irq)
	test.ExpectEquality(t, irq.Value(), interrupt.Joypad.Mask())

	// no interrupt while the key is held
	irq = interrupt.Accumulator{}
	joy.Step(4, dev, &irq)
	test.ExpectEquality(t, irq.Value(), uint8(0))

	// no interrupt on release
	dev.down[device.A] = false
	joy.Step(4, dev, &irq)
	test.ExpectEquality(t, irq.Value(), uint8(0))

	// nil device has no keys pressed
	joy.Step(4, nil, &irq)
	test.ExpectEquality(t, irq.Value(), uint8(0))
}
