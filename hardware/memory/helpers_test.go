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
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory"
)

type stubCart struct {
	rom          [0x8000]uint8
	ram          [0x2000]uint8
	bootDisabled bool
}

func (cart *stubCart) Read(address uint16) uint8 {
	if address < 0x8000 {
		return cart.rom[address]
	}
	return cart.ram[address-0xa000]
}

func (cart *stubCart) Write(address uint16, data uint8) {
	if address >= 0xa000 {
		cart.ram[address-0xa000] = data
	}
}

func (cart *stubCart) DisableBootROM() {
	cart.bootDisabled = true
}

// stubPeriph records register writes and optionally raises an interrupt on
// every step.
type stubPeriph struct {
	regs   map[uint16]uint8
	raise  bool
	kind   interrupt.Kind
	cycles int
}

func newStubPeriph() *stubPeriph {
	return &stubPeriph{regs: make(map[uint16]uint8)}
}

func (p *stubPeriph) ReadReg(address uint16) uint8 {
	return p.regs[address]
}

func (p *stubPeriph) WriteReg(address uint16, data uint8) {
	p.regs[address] = data
}

func (p *stubPeriph) Step(cycles uint16, _ device.Device, irq *interrupt.Accumulator) {
	p.cycles += int(cycles)
	if p.raise {
		irq.Raise(p.kind)
	}
}

type stubDisplay struct {
	stubPeriph
	vram [0x2000]uint8
	oam  [0xa0]uint8
}

func newStubDisplay() *stubDisplay {
	return &stubDisplay{stubPeriph: stubPeriph{regs: make(map[uint16]uint8)}}
}

func (d *stubDisplay) ReadVRAM(offset uint16) uint8 {
	return d.vram[offset]
}

func (d *stubDisplay) WriteVRAM(offset uint16, data uint8) {
	d.vram[offset] = data
}

func (d *stubDisplay) ReadOAM(offset uint16) uint8 {
	return d.oam[offset]
}

func (d *stubDisplay) WriteOAM(offset uint16, data uint8) {
	d.oam[offset] = data
}

func (d *stubDisplay) Width() int {
	return 160
}

func (d *stubDisplay) Height() int {
	return 144
}

type fixture struct {
	mem    *memory.Memory
	cart   *stubCart
	video  *stubDisplay
	audio  *stubPeriph
	timer  *stubPeriph
	joypad *stubPeriph
	serial *stubPeriph
}

func newFixture() *fixture {
	f := &fixture{
		cart:   &stubCart{},
		video:  newStubDisplay(),
		audio:  newStubPeriph(),
		timer:  newStubPeriph(),
		joypad: newStubPeriph(),
		serial: newStubPeriph(),
	}
	f.mem = memory.NewMemory(f.cart, memory.Peripherals{
		Video:  f.video,
		Audio:  f.audio,
		Timer:  f.timer,
		Joypad: f.joypad,
		Serial: f.serial,
	})
	return f
}

// fill the page with a pattern that is different for every page.
func (f *fixture) fillPage(page uint8) {
	for i := 0; i < 0x100; i++ {
		f.mem.WriteByte(uint16(page)<<8|uint16(i), uint8(i)^page)
	}
}
