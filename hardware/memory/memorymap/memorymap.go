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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "CartRAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}

	return "undefined"
}

// The different memory areas in the Game Boy.
const (
	Undefined Area = iota
	Cartridge
	VRAM
	CartRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

// The origin and memory top for each area of memory.
const (
	OriginCart     = uint16(0x0000)
	MemtopCart     = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	AddressIE      = uint16(0xffff)
)

// The boot ROM overlays the cartridge in the range OriginBootROM to
// MemtopBootROM until it is disabled.
const (
	OriginBootROM = uint16(0x0000)
	MemtopBootROM = uint16(0x00ff)
)

// Wave RAM of the audio peripheral is at the top of the audio register window.
const (
	OriginWaveRAM = uint16(0xff30)
	MemtopWaveRAM = uint16(0xff3f)
)

// EchoOffset is the distance between an echo address and the work RAM address
// it mirrors.
const EchoOffset = OriginEcho - OriginWRAM

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address is in.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopCart:
		return address, Cartridge
	case address <= MemtopVRAM:
		return address, VRAM
	case address <= MemtopCartRAM:
		return address, CartRAM
	case address <= MemtopWRAM:
		return address, WRAM
	case address <= MemtopEcho:
		return address - EchoOffset, WRAM
	case address <= MemtopOAM:
		return address, OAM
	case address <= MemtopUnusable:
		return address, Unusable
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopHRAM:
		return address, HRAM
	}
	return address, IE
}

// IsArea returns true if the address is in the specified area. Echo
// addresses are reported as being in the Echo area and not the WRAM area.
func IsArea(address uint16, area Area) bool {
	return AreaOf(address) == area
}

// AreaOf returns the area of the address without translating mirrors.
func AreaOf(address uint16) Area {
	if address >= OriginEcho && address <= MemtopEcho {
		return Echo
	}
	_, a := MapAddress(address)
	return a
}

// Segment is a physical bus on which an address is found. The CPU and the OAM
// DMA contend for access when they are using the same segment.
type Segment int

func (s Segment) String() string {
	switch s {
	case External1:
		return "External1"
	case VideoBus:
		return "VideoBus"
	case External2:
		return "External2"
	}
	return "none"
}

// List of bus segments. Addresses from OriginOAM upwards are on no segment.
const (
	NoSegment Segment = iota
	External1
	VideoBus
	External2
)

// SegmentOf returns the bus segment of the address.
func SegmentOf(address uint16) Segment {
	switch {
	case address <= MemtopCart:
		return External1
	case address <= MemtopVRAM:
		return VideoBus
	case address <= MemtopEcho:
		return External2
	}
	return NoSegment
}
