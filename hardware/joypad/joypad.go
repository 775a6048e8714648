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

package joypad

import (
	"fmt"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
)

// select bits in P1. a line is selected when the bit is clear.
const (
	selectDirections = uint8(0x10)
	selectButtons    = uint8(0x20)
	selectMask       = selectDirections | selectButtons
)

// the input line for each key. directions and buttons share the same four
// lines.
var lines = [device.NumKeys]uint8{
	device.Right:  0x01,
	device.Left:   0x02,
	device.Up:     0x04,
	device.Down:   0x08,
	device.A:      0x01,
	device.B:      0x02,
	device.Select: 0x04,
	device.Start:  0x08,
}

func isDirection(k device.Key) bool {
	return k <= device.Down
}

// Joypad implements the chipbus.Peripheral interface.
type Joypad struct {
	sel  uint8
	keys [device.NumKeys]bool

	// the value of the input lines after the previous step. used to detect
	// a high to low transition
	prev uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	joy := &Joypad{}
	joy.Reset()
	return joy
}

// Reset the joypad to the power on state.
func (joy *Joypad) Reset() {
	*joy = Joypad{
		sel:  selectMask,
		prev: 0x0f,
	}
}

func (joy *Joypad) String() string {
	return fmt.Sprintf("P1=%02x", joy.ReadReg(cpubus.P1))
}

// value of the four input lines given the current select bits. a pressed key
// pulls its line low.
func (joy *Joypad) inputLines() uint8 {
	v := uint8(0x0f)
	for k, down := range joy.keys {
		if !down {
			continue
		}
		if isDirection(device.Key(k)) {
			if joy.sel&selectDirections == 0 {
				v &^= lines[k]
			}
		} else if joy.sel&selectButtons == 0 {
			v &^= lines[k]
		}
	}
	return v
}

// ReadReg is an implementation of chipbus.Peripheral.
func (joy *Joypad) ReadReg(address uint16) uint8 {
	if address != cpubus.P1 {
		return 0xff
	}
	return 0xc0 | joy.sel | joy.inputLines()
}

// WriteReg is an implementation of chipbus.Peripheral. Only the select bits
// are writable.
func (joy *Joypad) WriteReg(address uint16, data uint8) {
	if address != cpubus.P1 {
		return
	}
	joy.sel = data & selectMask
}

// Step is an implementation of chipbus.Peripheral.
func (joy *Joypad) Step(_ uint16, dev device.Device, irq *interrupt.Accumulator) {
	for k := range joy.keys {
		joy.keys[k] = dev != nil && dev.KeyDown(device.Key(k))
	}

	v := joy.inputLines()
	if joy.prev&^v != 0 {
		irq.Raise(interrupt.Joypad)
	}
	joy.prev = v
}
