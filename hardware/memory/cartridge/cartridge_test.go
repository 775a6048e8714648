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

package cartridge_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/cartridgeloader"
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/memory/cartridge"
	"github.com/scimitar-emu/scimitar/test"
)

// makeROM creates ROM data with a valid header. the first byte of every bank
// is the number of the bank.
func makeROM(banks int, cartType uint8, romSize uint8, ramSize uint8) []uint8 {
	data := make([]uint8, banks*0x4000)
	for b := 0; b < banks; b++ {
		data[b*0x4000] = uint8(b)
	}
	copy(data[0x134:], "SCIMITAR TEST")
	data[0x147] = cartType
	data[0x148] = romSize
	data[0x149] = ramSize
	return data
}

func attach(t *testing.T, data []uint8) *cartridge.Cartridge {
	t.Helper()
	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.FromBytes("test.gb", data)))
	return cart
}

func TestHeader(t *testing.T) {
	hdr, err := cartridge.ParseHeader(makeROM(8, 0x03, 0x02, 0x03))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, "SCIMITAR TEST")
	test.ExpectEquality(t, hdr.TypeName(), "ROM+MBC1+RAM+BATT")
	test.ExpectEquality(t, hdr.ROMSizeName(), "128KB")
	test.ExpectEquality(t, hdr.RAMBytes(), 0x8000)
	test.ExpectEquality(t, hdr.String(), "SCIMITAR TEST [ROM+MBC1+RAM+BATT] ROM 128KB RAM 32KB")

	_, err = cartridge.ParseHeader(make([]uint8, 0x100))
	test.ExpectSuccess(t, curated.Is(err, cartridge.ShortROM))
}

func TestAttachErrors(t *testing.T) {
	cart := cartridge.NewCartridge()

	err := cart.Attach(cartridgeloader.FromBytes("short.gb", make([]uint8, 0x100)))
	test.ExpectSuccess(t, curated.Has(err, cartridge.ShortROM))

	err = cart.Attach(cartridgeloader.FromBytes("mbc5.gb", makeROM(2, 0x19, 0x00, 0x00)))
	test.ExpectSuccess(t, curated.Has(err, cartridge.UnsupportedMapper))

	// a failed attach leaves the cartridge as it was
	test.ExpectEquality(t, cart.Filename, "ejected")
}

func TestROMOnly(t *testing.T) {
	data := makeROM(2, 0x00, 0x00, 0x00)
	data[0x7fff] = 0x99
	cart := attach(t, data)

	test.ExpectEquality(t, cart.Format(), "ROM")
	test.ExpectEquality(t, cart.Hash, cartridgeloader.FromBytes("", data).Hash)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x01))
	test.ExpectEquality(t, cart.Read(0x7fff), uint8(0x99))

	// ROM is not writable and there is no RAM
	cart.Write(0x4000, 0x55)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x01))
	cart.Write(0xa000, 0x55)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))

	// ROM+RAM
	cart = attach(t, makeROM(2, 0x08, 0x00, 0x02))
	cart.Write(0xa010, 0x55)
	test.ExpectEquality(t, cart.Read(0xa010), uint8(0x55))
}

func TestMBC1Banking(t *testing.T) {
	cart := attach(t, makeROM(8, 0x01, 0x02, 0x00))
	test.ExpectEquality(t, cart.Format(), "MBC1")

	test.ExpectEquality(t, cart.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x01))

	cart.Write(0x2000, 0x03)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x03))
	test.ExpectEquality(t, cart.ROMBank(), 3)

	// bank zero selects bank one
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x01))

	// bank number is masked to the size of the ROM
	cart.Write(0x2000, 0x0e)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x06))

	// upper bits are ignored by a 128KB ROM
	cart.Write(0x4000, 0x01)
	cart.Write(0x2000, 0x02)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x02))
}

func TestMBC1RAM(t *testing.T) {
	cart := attach(t, makeROM(8, 0x03, 0x02, 0x03))

	// disabled on reset
	cart.Write(0xa000, 0x55)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))

	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x55)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x55))

	// RAM bank 1 in the advanced banking mode
	cart.Write(0x4000, 0x01)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x00))
	cart.Write(0xa000, 0x66)

	cart.Write(0x6000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x55))
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x66))

	// only 0x0a in the low nibble enables RAM
	cart.Write(0x0000, 0x1b)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0xff))
	cart.Write(0x0000, 0x1a)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0x66))
}

func TestBootROMOverlay(t *testing.T) {
	data := makeROM(2, 0x00, 0x00, 0x00)
	data[0x0000] = 0x31
	data[0x0100] = 0x00
	cart := attach(t, data)

	boot := make([]uint8, 256)
	for i := range boot {
		boot[i] = 0xaa
	}
	cart.AttachBootROM(boot)

	test.ExpectSuccess(t, cart.BootROMActive())
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0xaa))
	test.ExpectEquality(t, cart.Read(0x00ff), uint8(0xaa))
	test.ExpectEquality(t, cart.Read(0x0100), uint8(0x00))

	cart.DisableBootROM()
	test.ExpectFailure(t, cart.BootROMActive())
	test.ExpectEquality(t, cart.Read(0x0000), uint8(0x31))
}
