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

package memory_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/memory"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/test"
)

// number of cycles for a complete transfer from an idle DMA.
const dmaCycles = 160*4 + 8

func TestDMAFromWorkRAM(t *testing.T) {
	f := newFixture()

	for i := 0; i < 0xa0; i++ {
		f.mem.WriteByte(0xc000+uint16(i), uint8(0xff-i))
	}

	f.mem.WriteByte(cpubus.DMA, 0xc0)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Setup1)
	test.ExpectEquality(t, f.mem.ReadByte(cpubus.DMA), uint8(0xc0))

	f.mem.Step(dmaCycles, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Inactive)

	for i := 0; i < 0xa0; i++ {
		test.ExpectEquality(t, f.video.oam[i], uint8(0xff-i), i)
	}
}

func TestDMACompleteness(t *testing.T) {
	for _, page := range []uint8{0x00, 0x40, 0x80, 0xa0, 0xc5, 0xdf} {
		f := newFixture()

		switch {
		case page < 0x80:
			for i := 0; i < 0x100; i++ {
				f.cart.rom[uint16(page)<<8|uint16(i)] = uint8(i) ^ page
			}
		default:
			f.fillPage(page)
		}

		f.mem.WriteByte(cpubus.DMA, page)

		// one tick short of completion
		for i := 0; i < dmaCycles/4-1; i++ {
			f.mem.Step(4, nil, nil)
		}
		test.ExpectEquality(t, f.mem.DMAStatus(), memory.DMAStatus{Phase: memory.Active, Index: 159}, page)

		f.mem.Step(4, nil, nil)
		test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Inactive, page)

		for i := 0; i < 0xa0; i++ {
			test.ExpectEquality(t, f.video.oam[i], uint8(i)^page, page, i)
		}
	}
}

func TestDMASourceMirror(t *testing.T) {
	f := newFixture()
	f.fillPage(0xc1)

	// page e1 is read from c1
	f.mem.WriteByte(cpubus.DMA, 0xe1)
	f.mem.Step(dmaCycles, nil, nil)

	for i := 0; i < 0xa0; i++ {
		test.ExpectEquality(t, f.video.oam[i], uint8(i)^0xc1, i)
	}
}

func TestDMAContention(t *testing.T) {
	f := newFixture()

	for i := 0; i < 0xa0; i++ {
		f.mem.WriteByte(0xc000+uint16(i), 0x80|uint8(i))
	}
	f.mem.WriteByte(0xd000, 0x11)
	f.mem.WriteByte(0xff80, 0x22)
	f.cart.rom[0x0100] = 0x33
	f.video.vram[0x0000] = 0x44

	f.mem.WriteByte(cpubus.DMA, 0xc0)

	// no contention during setup
	test.ExpectEquality(t, f.mem.ReadByte(0xd000), uint8(0x11))
	f.mem.Step(4, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Setup2)
	test.ExpectEquality(t, f.mem.ReadByte(0xd000), uint8(0x11))

	f.mem.Step(4, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus(), memory.DMAStatus{Phase: memory.Active, Index: 0})

	// same segment as the DMA source returns the latched byte
	test.ExpectEquality(t, f.mem.ReadByte(0xd000), uint8(0x80))
	test.ExpectEquality(t, f.mem.ReadByte(0xa000), uint8(0x80))
	test.ExpectEquality(t, f.mem.ReadByte(0xe000), uint8(0x80))

	// other segments are unaffected
	test.ExpectEquality(t, f.mem.ReadByte(0x0100), uint8(0x33))
	test.ExpectEquality(t, f.mem.ReadByte(0x8000), uint8(0x44))
	test.ExpectEquality(t, f.mem.ReadByte(0xff80), uint8(0x22))

	// OAM reads are blocked
	test.ExpectEquality(t, f.mem.ReadByte(0xfe00), uint8(0xff))

	// Peek() ignores the DMA
	test.ExpectEquality(t, f.mem.Peek(0xd000), uint8(0x11))

	f.mem.Step(4, nil, nil)
	test.ExpectEquality(t, f.mem.ReadByte(0xd000), uint8(0x81))
	test.ExpectEquality(t, f.video.oam[0], uint8(0x80))

	f.mem.Step(dmaCycles, nil, nil)
	test.ExpectEquality(t, f.mem.ReadByte(0xd000), uint8(0x11))
}

func TestDMAContentionROM(t *testing.T) {
	f := newFixture()

	for i := 0; i < 0xa0; i++ {
		f.cart.rom[0x4000+i] = uint8(i)
	}
	f.cart.rom[0x0200] = 0x99
	f.mem.WriteByte(0xc000, 0x55)

	f.mem.WriteByte(cpubus.DMA, 0x40)
	f.mem.Step(8+4*5, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus(), memory.DMAStatus{Phase: memory.Active, Index: 5})

	test.ExpectEquality(t, f.mem.ReadByte(0x0200), uint8(0x05))
	test.ExpectEquality(t, f.mem.ReadByte(0xc000), uint8(0x55))
}

func TestDMAOAMWrites(t *testing.T) {
	f := newFixture()
	f.fillPage(0xc0)

	f.mem.WriteByte(cpubus.DMA, 0xc0)
	f.mem.Step(8, nil, nil)

	// CPU writes to OAM are dropped while the DMA is active
	f.mem.WriteByte(0xfe50, 0xee)
	test.ExpectEquality(t, f.video.oam[0x50], uint8(0x00))

	f.mem.Step(dmaCycles, nil, nil)
	test.ExpectEquality(t, f.video.oam[0x50], uint8(0x50^0xc0))

	f.mem.WriteByte(0xfe50, 0xee)
	test.ExpectEquality(t, f.video.oam[0x50], uint8(0xee))
}

func TestDMARestart(t *testing.T) {
	f := newFixture()
	f.fillPage(0xc0)
	f.fillPage(0xd0)

	f.mem.WriteByte(cpubus.DMA, 0xc0)
	f.mem.Step(8+4*10, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus(), memory.DMAStatus{Phase: memory.Active, Index: 10})

	f.mem.WriteByte(cpubus.DMA, 0xd0)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Reset1)

	// the bus is still contended during the reset. the latch holds the last
	// byte fetched by the interrupted transfer
	test.ExpectEquality(t, f.mem.ReadByte(0xc080), uint8(10^0xc0))

	f.mem.Step(4, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Reset2)
	test.ExpectEquality(t, f.mem.ReadByte(0xfe00), uint8(0xff))

	f.mem.Step(4, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus(), memory.DMAStatus{Phase: memory.Active, Index: 0})
	test.ExpectEquality(t, f.mem.ReadByte(0xc080), uint8(0xd0))

	// OAM bytes written by the first transfer remain until overwritten
	test.ExpectEquality(t, f.video.oam[9], uint8(9^0xc0))

	f.mem.Step(160*4, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Inactive)
	for i := 0; i < 0xa0; i++ {
		test.ExpectEquality(t, f.video.oam[i], uint8(i)^0xd0, i)
	}
}

func TestDMARetriggerDuringSetup(t *testing.T) {
	f := newFixture()
	f.fillPage(0xc0)
	f.fillPage(0xc1)

	f.mem.WriteByte(cpubus.DMA, 0xc0)
	f.mem.Step(4, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Setup2)

	// nothing has been transferred so the setup begins again
	f.mem.WriteByte(cpubus.DMA, 0xc1)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Setup1)

	f.mem.Step(dmaCycles, nil, nil)
	test.ExpectEquality(t, f.mem.DMAStatus().Phase, memory.Inactive)
	test.ExpectEquality(t, f.video.oam[0x20], uint8(0x20^0xc1))
}

func TestDMAStatusString(t *testing.T) {
	test.ExpectEquality(t, memory.DMAStatus{Phase: memory.Active, Index: 12}.String(), "Active(12)")
	test.ExpectEquality(t, memory.DMAStatus{Phase: memory.Reset2}.String(), "Reset2")
}
