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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/scimitar-emu/scimitar/cartridgeloader"
	"github.com/scimitar-emu/scimitar/disassembly"
	"github.com/scimitar-emu/scimitar/hardware/memory/cartridge"
	"github.com/scimitar-emu/scimitar/test"
)

type mockMem []uint8

func (m mockMem) Peek(address uint16) uint8 {
	if int(address) >= len(m) {
		return 0x00
	}
	return m[address]
}

func TestDecode(t *testing.T) {
	mem := make(mockMem, 0x200)
	copy(mem[0x100:], []uint8{
		0x00,             // NOP
		0x3e, 0x42, // LD A,d8
		0x21, 0x34, 0x12, // LD HL,d16
		0xe0, 0x44, // LDH (a8),A
		0x18, 0xfe, // JR r8
		0xcb, 0x7c, // BIT 7,H
		0xf8, 0xfe, // LD HL,SP+r8
		0xe8, 0x05, // ADD SP,r8
		0xd3,       // undefined
		0xc3, 0x50, 0x01, // JP a16
	})

	entries := disassembly.Linear(mem, 0x100, 0x114)
	test.DemandEquality(t, len(entries), 11)

	expected := []string{
		"0100  00        NOP",
		"0101  3e 42     LD A,$42",
		"0103  21 34 12  LD HL,$1234",
		"0106  e0 44     LDH ($ff44),A",
		"0108  18 fe     JR $0108",
		"010a  cb 7c     BIT 7,H",
		"010c  f8 fe     LD HL,SP-2",
		"010e  e8 05     ADD SP,+5",
		"0110  d3        ??",
		"0111  c3 50 01  JP $0150",
	}
	for i, s := range expected {
		test.ExpectEquality(t, entries[i].String(), s)
	}

	// the final instruction is a NOP from the unused area
	test.ExpectEquality(t, entries[10].Address, uint16(0x0114))

	// an instruction that extends beyond the end address is not included
	entries = disassembly.Linear(mem, 0x100, 0x104)
	test.ExpectEquality(t, len(entries), 2)
}

func TestFromCartridge(t *testing.T) {
	data := make([]uint8, 0x8000)
	copy(data[0x0100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.FromBytes("disasm.gb", data)))

	entries, err := disassembly.FromCartridge(cart, 0x100, 0x103)
	test.DemandSuccess(t, err)

	var out strings.Builder
	test.DemandSuccess(t, disassembly.Write(&out, entries))
	test.ExpectEquality(t, out.String(), "0100  00        NOP\n0101  c3 50 01  JP $0150\n")

	_, err = disassembly.FromCartridge(cart, 0x200, 0x100)
	test.ExpectFailure(t, err)
	_, err = disassembly.FromCartridge(cart, 0x7ff0, 0x8010)
	test.ExpectFailure(t, err)
}
