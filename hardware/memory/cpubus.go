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
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
	"github.com/scimitar-emu/scimitar/logger"
)

// the value returned by a read from an address that nothing is driving.
const openBus = uint8(0xff)

// ReadByte is an implementation of cpubus.Memory.
func (mem *Memory) ReadByte(address uint16) uint8 {
	if mem.dma.contends(address) {
		return mem.dma.latch
	}
	if mem.dma.inFlight() && memorymap.IsArea(address, memorymap.OAM) {
		return openBus
	}
	return mem.read(address)
}

// WriteByte is an implementation of cpubus.Memory.
func (mem *Memory) WriteByte(address uint16, data uint8) {
	mem.write(address, data)
	mem.watches.check(address, data)
}

// ReadHalfword is an implementation of cpubus.Memory. The low byte is read
// from address and the high byte from address+1.
func (mem *Memory) ReadHalfword(address uint16) uint16 {
	lo := mem.ReadByte(address)
	hi := mem.ReadByte(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteHalfword is an implementation of cpubus.Memory. The low byte is written
// to address and the high byte to address+1.
func (mem *Memory) WriteHalfword(address uint16, data uint16) {
	mem.WriteByte(address, uint8(data))
	mem.WriteByte(address+1, uint8(data>>8))
}

// Peek returns the value at the address as the CPU would see it if the DMA
// was not running.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address)
}

// read decodes the address and returns the value in the addressed location.
// the DMA is not considered.
func (mem *Memory) read(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge, memorymap.CartRAM:
		return mem.cart.Read(ma)
	case memorymap.VRAM:
		return mem.periph.Video.ReadVRAM(ma - memorymap.OriginVRAM)
	case memorymap.WRAM:
		return mem.wram[ma-memorymap.OriginWRAM]
	case memorymap.OAM:
		return mem.periph.Video.ReadOAM(ma - memorymap.OriginOAM)
	case memorymap.IO:
		return mem.readIO(ma)
	case memorymap.HRAM:
		return mem.hram[ma-memorymap.OriginHRAM]
	case memorymap.IE:
		return mem.irq.ReadEnable()
	}

	return openBus
}

func (mem *Memory) write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge, memorymap.CartRAM:
		mem.cart.Write(ma, data)
	case memorymap.VRAM:
		mem.periph.Video.WriteVRAM(ma-memorymap.OriginVRAM, data)
	case memorymap.WRAM:
		mem.wram[ma-memorymap.OriginWRAM] = data
	case memorymap.OAM:
		// the DMA owns OAM while it is running
		if !mem.dma.inFlight() {
			mem.periph.Video.WriteOAM(ma-memorymap.OriginOAM, data)
		}
	case memorymap.IO:
		mem.writeIO(ma, data)
	case memorymap.HRAM:
		mem.hram[ma-memorymap.OriginHRAM] = data
	case memorymap.IE:
		mem.irq.WriteEnable(data)
	}
}

func (mem *Memory) readIO(address uint16) uint8 {
	switch {
	case address == cpubus.P1:
		return mem.periph.Joypad.ReadReg(address)
	case address == cpubus.SB || address == cpubus.SC:
		return mem.periph.Serial.ReadReg(address)
	case address >= cpubus.DIV && address <= cpubus.TAC:
		return mem.periph.Timer.ReadReg(address)
	case address == cpubus.IF:
		return mem.irq.ReadFlag()
	case address >= cpubus.NR10 && address <= memorymap.MemtopWaveRAM:
		return mem.periph.Audio.ReadReg(address)
	case address == cpubus.DMA:
		return mem.dma.register
	case address >= cpubus.LCDC && address <= cpubus.WX:
		return mem.periph.Video.ReadReg(address)
	}
	return openBus
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	switch {
	case address == cpubus.P1:
		mem.periph.Joypad.WriteReg(address, data)
	case address == cpubus.SB || address == cpubus.SC:
		mem.periph.Serial.WriteReg(address, data)
	case address >= cpubus.DIV && address <= cpubus.TAC:
		mem.periph.Timer.WriteReg(address, data)
	case address == cpubus.IF:
		mem.irq.WriteFlag(data)
	case address >= cpubus.NR10 && address <= memorymap.MemtopWaveRAM:
		mem.periph.Audio.WriteReg(address, data)
	case address == cpubus.DMA:
		if mem.dma.trigger(data) {
			logger.Logf(logger.Allow, "dma", "restarted from %04x", mem.dma.source)
		}
	case address >= cpubus.LCDC && address <= cpubus.WX:
		mem.periph.Video.WriteReg(address, data)
	case address == cpubus.BOOT:
		if mem.bootROM {
			mem.bootROM = false
			mem.cart.DisableBootROM()
		}
	}
}
