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

package video

import (
	"fmt"

	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
)

// Dimensions of the visible display.
const (
	Width  = 160
	Height = 144
)

// Timing of the display.
const (
	CyclesPerLine  = 456
	LinesPerFrame  = 154
	CyclesPerFrame = CyclesPerLine * LinesPerFrame

	oamSearchCycles = 80
	transferCycles  = 172
)

// Mode of the display as reported in the lower bits of STAT.
type Mode uint8

// List of display modes.
const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	Transfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMSearch:
		return "OAMSearch"
	case Transfer:
		return "Transfer"
	}
	return "unknown mode"
}

// bits in the LCDC register.
const (
	lcdcBackground = uint8(0x01)
	lcdcObjects    = uint8(0x02)
	lcdcTallObject = uint8(0x04)
	lcdcBGMap      = uint8(0x08)
	lcdcTileData   = uint8(0x10)
	lcdcWindow     = uint8(0x20)
	lcdcWindowMap  = uint8(0x40)
	lcdcEnable     = uint8(0x80)
)

// bits in the STAT register.
const (
	statCoincidence = uint8(0x04)
	statHBlankInt   = uint8(0x08)
	statVBlankInt   = uint8(0x10)
	statOAMInt      = uint8(0x20)
	statLYCInt      = uint8(0x40)
	statWritable    = statHBlankInt | statVBlankInt | statOAMInt | statLYCInt
)

// Video implements the chipbus.Display interface.
type Video struct {
	vram [memorymap.MemtopVRAM - memorymap.OriginVRAM + 1]uint8
	oam  [memorymap.MemtopOAM - memorymap.OriginOAM + 1]uint8

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	mode Mode

	// cycle within the current line
	dot int

	// state of the STAT interrupt line. the interrupt is requested on the
	// rising edge
	statLine bool

	// line of the window to draw next. only increases on lines where the
	// window is visible
	windowLine int

	// number of frames sent to the device
	Frames int

	frame []uint32

	// colour number of the background for the current line. used to decide
	// object priority
	bgIndex [Width]uint8

	// the colour for each of the four shades
	Palette [4]uint32
}

// DefaultPalette are the shades of the original green display.
var DefaultPalette = [4]uint32{0xe0f8d0, 0x88c070, 0x346856, 0x081820}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vid := &Video{
		frame:   make([]uint32, Width*Height),
		Palette: DefaultPalette,
	}
	vid.Reset()
	return vid
}

// Reset the display to the power on state. Video RAM and OAM are cleared.
func (vid *Video) Reset() {
	clear(vid.vram[:])
	clear(vid.oam[:])
	clear(vid.frame)

	vid.lcdc = 0x91
	vid.stat = 0
	vid.scy = 0
	vid.scx = 0
	vid.ly = 0
	vid.lyc = 0
	vid.bgp = 0xfc
	vid.obp0 = 0xff
	vid.obp1 = 0xff
	vid.wy = 0
	vid.wx = 0

	vid.mode = OAMSearch
	vid.dot = 0
	vid.statLine = false
	vid.windowLine = 0
	vid.Frames = 0
}

func (vid *Video) String() string {
	return fmt.Sprintf("LCDC=%02x STAT=%02x LY=%d LYC=%d mode=%s dot=%d", vid.lcdc, vid.ReadReg(cpubus.STAT), vid.ly, vid.lyc, vid.mode, vid.dot)
}

// Mode returns the current mode of the display.
func (vid *Video) Mode() Mode {
	return vid.mode
}

// Enabled returns true if the LCD is switched on.
func (vid *Video) Enabled() bool {
	return vid.lcdc&lcdcEnable == lcdcEnable
}

// Width is an implementation of chipbus.Display.
func (vid *Video) Width() int {
	return Width
}

// Height is an implementation of chipbus.Display.
func (vid *Video) Height() int {
	return Height
}

// ReadVRAM is an implementation of chipbus.Display.
func (vid *Video) ReadVRAM(offset uint16) uint8 {
	return vid.vram[offset&(uint16(len(vid.vram))-1)]
}

// WriteVRAM is an implementation of chipbus.Display.
func (vid *Video) WriteVRAM(offset uint16, data uint8) {
	vid.vram[offset&(uint16(len(vid.vram))-1)] = data
}

// ReadOAM is an implementation of chipbus.Display.
func (vid *Video) ReadOAM(offset uint16) uint8 {
	if int(offset) >= len(vid.oam) {
		return 0xff
	}
	return vid.oam[offset]
}

// WriteOAM is an implementation of chipbus.Display.
func (vid *Video) WriteOAM(offset uint16, data uint8) {
	if int(offset) >= len(vid.oam) {
		return
	}
	vid.oam[offset] = data
}

// ReadReg is an implementation of chipbus.Peripheral.
func (vid *Video) ReadReg(address uint16) uint8 {
	switch address {
	case cpubus.LCDC:
		return vid.lcdc
	case cpubus.STAT:
		s := 0x80 | vid.stat | uint8(vid.mode)
		if vid.ly == vid.lyc {
			s |= statCoincidence
		}
		return s
	case cpubus.SCY:
		return vid.scy
	case cpubus.SCX:
		return vid.scx
	case cpubus.LY:
		return vid.ly
	case cpubus.LYC:
		return vid.lyc
	case cpubus.BGP:
		return vid.bgp
	case cpubus.OBP0:
		return vid.obp0
	case cpubus.OBP1:
		return vid.obp1
	case cpubus.WY:
		return vid.wy
	case cpubus.WX:
		return vid.wx
	}
	return 0xff
}

// WriteReg is an implementation of chipbus.Peripheral. The LY register is read
// only.
func (vid *Video) WriteReg(address uint16, data uint8) {
	switch address {
	case cpubus.LCDC:
		wasEnabled := vid.Enabled()
		vid.lcdc = data
		if wasEnabled && !vid.Enabled() {
			vid.ly = 0
			vid.dot = 0
			vid.mode = HBlank
			vid.statLine = false
		} else if !wasEnabled && vid.Enabled() {
			vid.ly = 0
			vid.dot = 0
			vid.mode = OAMSearch
			vid.windowLine = 0
		}
	case cpubus.STAT:
		vid.stat = data & statWritable
	case cpubus.SCY:
		vid.scy = data
	case cpubus.SCX:
		vid.scx = data
	case cpubus.LYC:
		vid.lyc = data
	case cpubus.BGP:
		vid.bgp = data
	case cpubus.OBP0:
		vid.obp0 = data
	case cpubus.OBP1:
		vid.obp1 = data
	case cpubus.WY:
		vid.wy = data
	case cpubus.WX:
		vid.wx = data
	}
}
