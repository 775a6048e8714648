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

// Package chipbus defines the operations for the memory system when accessed
// from the peripheral chips and the cartridge.
//
// Peripherals see the memory system only through their own register window.
// They are advanced with the Step() function and signal interrupts by raising
// them in the accumulator passed to Step(). No peripheral has access to the
// storage of another peripheral.
package chipbus

import (
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
)

// Peripheral is implemented by every chip that has a register window in the
// IO area of memory.
type Peripheral interface {
	// ReadReg returns the value of the register as seen by the CPU. The
	// address is the full CPU address of the register
	ReadReg(address uint16) uint8

	// WriteReg writes the value to the register
	WriteReg(address uint16, data uint8)

	// Step advances the peripheral by the number of cycles. Any interrupts
	// should be raised in the accumulator
	Step(cycles uint16, dev device.Device, irq *interrupt.Accumulator)
}

// Display is the peripheral that owns video RAM and OAM.
type Display interface {
	Peripheral

	// offset is relative to the origin of the VRAM area
	ReadVRAM(offset uint16) uint8
	WriteVRAM(offset uint16, data uint8)

	// offset is relative to the origin of the OAM area
	ReadOAM(offset uint16) uint8
	WriteOAM(offset uint16, data uint8)

	// dimensions of the frame buffer passed to Device.SetFrameBuffer()
	Width() int
	Height() int
}

// Cartridge is the interface to the cartridge from the memory system. The
// address is the CPU address, in the cartridge ROM or cartridge RAM areas.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// DisableBootROM removes the boot ROM overlay for the rest of the run
	DisableBootROM()
}
