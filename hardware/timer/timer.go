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

package timer

import (
	"fmt"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
)

// InitialDivider is the value of the divider counter at power on.
const InitialDivider = uint16(0xabcc)

// number of cycles between the overflow of TIMA and the reload from TMA.
const reloadDelay = 4

// the bit of the divider counter watched for each value of the clock select
// bits in TAC.
var clockSelect = [4]uint{9, 3, 5, 7}

// Timer implements the chipbus.Peripheral interface.
type Timer struct {
	divider uint16

	tima uint8
	tma  uint8
	tac  uint8

	// the value of the selected divider bit AND the enable bit after the
	// most recent change to either
	edge bool

	// countdown to the reload of TIMA from TMA. zero if no reload is pending
	reload int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset the timer to the power on state.
func (tmr *Timer) Reset() {
	*tmr = Timer{divider: InitialDivider}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x TAC=%02x", tmr.divider>>8, tmr.tima, tmr.tma, tmr.ReadReg(cpubus.TAC))
}

// Divider returns the full 16-bit divider counter.
func (tmr *Timer) Divider() uint16 {
	return tmr.divider
}

func (tmr *Timer) enabled() bool {
	return tmr.tac&0x04 == 0x04
}

// check the selected divider bit and increase TIMA on a falling edge.
func (tmr *Timer) update() {
	edge := tmr.enabled() && (tmr.divider>>clockSelect[tmr.tac&0x03])&0x01 == 0x01

	if tmr.edge && !edge {
		tmr.tima++
		if tmr.tima == 0 {
			tmr.reload = reloadDelay
		}
	}

	tmr.edge = edge
}

// ReadReg is an implementation of chipbus.Peripheral.
func (tmr *Timer) ReadReg(address uint16) uint8 {
	switch address {
	case cpubus.DIV:
		return uint8(tmr.divider >> 8)
	case cpubus.TIMA:
		return tmr.tima
	case cpubus.TMA:
		return tmr.tma
	case cpubus.TAC:
		return tmr.tac | 0xf8
	}
	return 0xff
}

// WriteReg is an implementation of chipbus.Peripheral.
func (tmr *Timer) WriteReg(address uint16, data uint8) {
	switch address {
	case cpubus.DIV:
		tmr.divider = 0
	case cpubus.TIMA:
		// writing during the reload delay cancels the reload
		tmr.tima = data
		tmr.reload = 0
	case cpubus.TMA:
		tmr.tma = data
	case cpubus.TAC:
		tmr.tac = data & 0x07
	default:
		return
	}
	tmr.update()
}

// Step is an implementation of chipbus.Peripheral.
func (tmr *Timer) Step(cycles uint16, _ device.Device, irq *interrupt.Accumulator) {
	for i := uint16(0); i < cycles; i++ {
		if tmr.reload > 0 {
			tmr.reload--
			if tmr.reload == 0 {
				tmr.tima = tmr.tma
				irq.Raise(interrupt.Timer)
			}
		}
		tmr.divider++
		tmr.update()
	}
}
