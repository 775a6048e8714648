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
	"fmt"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/chipbus"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
	"github.com/scimitar-emu/scimitar/random"
)

// Peripherals are the chips with a register window in the IO area. A nil
// peripheral leaves its register window unmapped.
type Peripherals struct {
	Video  chipbus.Display
	Audio  chipbus.Peripheral
	Timer  chipbus.Peripheral
	Joypad chipbus.Peripheral
	Serial chipbus.Peripheral
}

// Memory is the interconnect between the CPU, the cartridge and the
// peripherals. It implements the cpubus.Memory interface.
type Memory struct {
	cart   chipbus.Cartridge
	periph Peripherals

	// work RAM. the echo area is mirrored onto the same storage
	wram []uint8

	// high RAM
	hram []uint8

	// IF and IE registers
	irq interrupt.Registers

	// false once the boot ROM has been disabled by a write to the BOOT
	// register
	bootROM bool

	dma dma

	watches watchpoints
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart chipbus.Cartridge, periph Peripherals) *Memory {
	if periph.Video == nil {
		periph.Video = unmappedDisplay{}
	}
	if periph.Audio == nil {
		periph.Audio = unmapped{}
	}
	if periph.Timer == nil {
		periph.Timer = unmapped{}
	}
	if periph.Joypad == nil {
		periph.Joypad = unmapped{}
	}
	if periph.Serial == nil {
		periph.Serial = unmapped{}
	}

	mem := &Memory{
		cart:    cart,
		periph:  periph,
		wram:    make([]uint8, memorymap.MemtopWRAM-memorymap.OriginWRAM+1),
		hram:    make([]uint8, memorymap.MemtopHRAM-memorymap.OriginHRAM+1),
		bootROM: true,
		watches: newWatchpoints(),
	}

	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("IF=%02x IE=%02x DMA=%s", mem.irq.ReadFlag(), mem.irq.ReadEnable(), mem.dma.status)
}

// Reset clears internal RAM, the interrupt registers and the DMA state.
// Peripherals and the cartridge are not affected.
func (mem *Memory) Reset() {
	clear(mem.wram)
	clear(mem.hram)
	mem.irq.Reset()
	mem.dma = dma{}
	mem.bootROM = true
	mem.watches.clearHits()
}

// Randomise the contents of work RAM and high RAM.
func (mem *Memory) Randomise(rnd *random.Random) {
	for i := range mem.wram {
		mem.wram[i] = uint8(rnd.NoRewind(0x100))
	}
	for i := range mem.hram {
		mem.hram[i] = uint8(rnd.NoRewind(0x100))
	}
}

// Interrupts returns a copy of the IF and IE registers.
func (mem *Memory) Interrupts() interrupt.Registers {
	return mem.irq
}

// BootROMActive returns true if the boot ROM has not been disabled.
func (mem *Memory) BootROMActive() bool {
	return mem.bootROM
}

// DisplaySize returns the size of the frame buffer produced by the video
// peripheral.
func (mem *Memory) DisplaySize() (int, int) {
	return mem.periph.Video.Width(), mem.periph.Video.Height()
}

// unmapped is used in place of a missing peripheral.
type unmapped struct{}

func (unmapped) ReadReg(_ uint16) uint8 {
	return 0xff
}

func (unmapped) WriteReg(_ uint16, _ uint8) {
}

func (unmapped) Step(_ uint16, _ device.Device, _ *interrupt.Accumulator) {
}

// unmappedDisplay is used in place of a missing video peripheral.
type unmappedDisplay struct {
	unmapped
}

func (unmappedDisplay) ReadVRAM(_ uint16) uint8 {
	return 0xff
}

func (unmappedDisplay) WriteVRAM(_ uint16, _ uint8) {
}

func (unmappedDisplay) ReadOAM(_ uint16) uint8 {
	return 0xff
}

func (unmappedDisplay) WriteOAM(_ uint16, _ uint8) {
}

func (unmappedDisplay) Width() int {
	return 0
}

func (unmappedDisplay) Height() int {
	return 0
}
