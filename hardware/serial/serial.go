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

package serial

import (
	"fmt"
	"strings"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/logger"
)

// TransferCycles is the number of cycles taken by a transfer using the
// internal clock of 8192Hz.
const TransferCycles = 4096

// bits in the SC register.
const (
	scStart    = uint8(0x80)
	scInternal = uint8(0x01)
	scUnused   = uint8(0x7e)
)

// Serial implements the chipbus.Peripheral interface.
type Serial struct {
	sb uint8
	sc uint8

	// cycles remaining in the current transfer. only meaningful when the
	// start bit in SC is set
	remaining int

	output strings.Builder
	line   strings.Builder
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial() *Serial {
	ser := &Serial{}
	ser.Reset()
	return ser
}

// Reset the serial port to the power on state. The output is cleared.
func (ser *Serial) Reset() {
	ser.sb = 0
	ser.sc = 0
	ser.remaining = 0
	ser.output.Reset()
	ser.line.Reset()
}

func (ser *Serial) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x", ser.sb, ser.ReadReg(cpubus.SC))
}

// Output returns every byte that has been transferred since the last reset.
func (ser *Serial) Output() string {
	return ser.output.String()
}

// ReadReg is an implementation of chipbus.Peripheral.
func (ser *Serial) ReadReg(address uint16) uint8 {
	switch address {
	case cpubus.SB:
		return ser.sb
	case cpubus.SC:
		return ser.sc | scUnused
	}
	return 0xff
}

// WriteReg is an implementation of chipbus.Peripheral.
func (ser *Serial) WriteReg(address uint16, data uint8) {
	switch address {
	case cpubus.SB:
		ser.sb = data
	case cpubus.SC:
		ser.sc = data &^ scUnused
		if ser.sc&scStart == scStart {
			ser.remaining = TransferCycles
		}
	}
}

// Step is an implementation of chipbus.Peripheral.
func (ser *Serial) Step(cycles uint16, _ device.Device, irq *interrupt.Accumulator) {
	if ser.sc&(scStart|scInternal) != scStart|scInternal {
		return
	}

	ser.remaining -= int(cycles)
	if ser.remaining > 0 {
		return
	}

	ser.transmit(ser.sb)
	ser.sb = 0xff
	ser.sc &^= scStart
	irq.Raise(interrupt.Serial)
}

// transmitted bytes are logged a line at a time.
func (ser *Serial) transmit(b uint8) {
	ser.output.WriteByte(b)

	if b == '\n' {
		logger.Log(logger.Allow, "serial", ser.line.String())
		ser.line.Reset()
		return
	}
	ser.line.WriteByte(b)
}
