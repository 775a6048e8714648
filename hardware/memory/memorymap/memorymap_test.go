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

package memorymap_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
	"github.com/scimitar-emu/scimitar/test"
)

const validMemMap = `0000 -> 7fff	Cartridge
8000 -> 9fff	VRAM
a000 -> bfff	CartRAM
c000 -> dfff	WRAM
e000 -> fdff	Echo
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> fffe	HRAM
ffff -> ffff	IE
`

func TestMemory(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}

func TestEcho(t *testing.T) {
	a, area := memorymap.MapAddress(0xe000)
	test.ExpectEquality(t, a, uint16(0xc000))
	test.ExpectEquality(t, area, memorymap.WRAM)

	a, area = memorymap.MapAddress(0xfdff)
	test.ExpectEquality(t, a, uint16(0xddff))
	test.ExpectEquality(t, area, memorymap.WRAM)

	test.ExpectSuccess(t, memorymap.IsArea(0xe000, memorymap.Echo))
	test.ExpectFailure(t, memorymap.IsArea(0xe000, memorymap.WRAM))
}

func TestSegments(t *testing.T) {
	test.ExpectEquality(t, memorymap.SegmentOf(0x0000), memorymap.External1)
	test.ExpectEquality(t, memorymap.SegmentOf(0x7fff), memorymap.External1)
	test.ExpectEquality(t, memorymap.SegmentOf(0x8000), memorymap.VideoBus)
	test.ExpectEquality(t, memorymap.SegmentOf(0x9fff), memorymap.VideoBus)
	test.ExpectEquality(t, memorymap.SegmentOf(0xa000), memorymap.External2)
	test.ExpectEquality(t, memorymap.SegmentOf(0xc000), memorymap.External2)
	test.ExpectEquality(t, memorymap.SegmentOf(0xfdff), memorymap.External2)
	test.ExpectEquality(t, memorymap.SegmentOf(0xfe00), memorymap.NoSegment)
	test.ExpectEquality(t, memorymap.SegmentOf(0xff80), memorymap.NoSegment)
	test.ExpectEquality(t, memorymap.SegmentOf(0xffff), memorymap.NoSegment)
}
