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
	"slices"
)

// offsets into VRAM.
const (
	tileDataUnsigned = 0x0000
	tileDataSigned   = 0x1000
	mapLow           = 0x1800
	mapHigh          = 0x1c00
)

// the most objects that can be drawn on a single line.
const maxObjectsPerLine = 10

// size of an entry in OAM.
const oamEntry = 4

// bits in the object attribute byte.
const (
	attrPalette  = uint8(0x10)
	attrFlipX    = uint8(0x20)
	attrFlipY    = uint8(0x40)
	attrBehindBG = uint8(0x80)
)

// shade returns the shade of the colour number in the palette register.
func shade(palette uint8, colour uint8) uint8 {
	return (palette >> (colour * 2)) & 0x03
}

// pixel returns the colour number of pixel x (from the left) in the tile row.
func pixel(lo, hi uint8, x int) uint8 {
	b := 7 - x
	return (hi>>b)&0x01<<1 | (lo>>b)&0x01
}

// tileRow returns the two bytes of row y in the background or window tile.
func (vid *Video) tileRow(tile uint8, y int) (uint8, uint8) {
	var addr int
	if vid.lcdc&lcdcTileData == lcdcTileData {
		addr = tileDataUnsigned + int(tile)*16
	} else {
		addr = tileDataSigned + int(int8(tile))*16
	}
	addr += (y & 0x07) * 2
	return vid.vram[addr], vid.vram[addr+1]
}

func (vid *Video) renderLine() {
	row := vid.frame[int(vid.ly)*Width : (int(vid.ly)+1)*Width]

	vid.renderBackground()
	vid.renderWindow()

	if vid.lcdc&lcdcBackground == 0 {
		for x := range row {
			row[x] = vid.Palette[0]
		}
	} else {
		for x := range row {
			row[x] = vid.Palette[shade(vid.bgp, vid.bgIndex[x])]
		}
	}

	vid.renderObjects(row)
}

func (vid *Video) renderBackground() {
	if vid.lcdc&lcdcBackground == 0 {
		clear(vid.bgIndex[:])
		return
	}

	base := mapLow
	if vid.lcdc&lcdcBGMap == lcdcBGMap {
		base = mapHigh
	}

	y := int(vid.ly+vid.scy) & 0xff

	for x := 0; x < Width; x++ {
		px := (x + int(vid.scx)) & 0xff
		tile := vid.vram[base+(y/8)*32+px/8]
		lo, hi := vid.tileRow(tile, y)
		vid.bgIndex[x] = pixel(lo, hi, px&0x07)
	}
}

// the window is not drawn when the background is disabled.
func (vid *Video) renderWindow() {
	if vid.lcdc&lcdcWindow == 0 || vid.lcdc&lcdcBackground == 0 {
		return
	}
	if vid.ly < vid.wy || vid.wx > Width+6 {
		return
	}

	base := mapLow
	if vid.lcdc&lcdcWindowMap == lcdcWindowMap {
		base = mapHigh
	}

	start := int(vid.wx) - 7
	y := vid.windowLine

	for x := max(start, 0); x < Width; x++ {
		px := x - start
		tile := vid.vram[base+(y/8)*32+px/8]
		lo, hi := vid.tileRow(tile, y)
		vid.bgIndex[x] = pixel(lo, hi, px&0x07)
	}

	vid.windowLine++
}

type object struct {
	index int
	y     int
	x     int
	tile  uint8
	attr  uint8
}

// objects are drawn with the lowest X coordinate having the highest
// priority. objects with the same X coordinate are prioritised by their
// position in OAM.
func (vid *Video) renderObjects(row []uint32) {
	if vid.lcdc&lcdcObjects == 0 {
		return
	}

	height := 8
	if vid.lcdc&lcdcTallObject == lcdcTallObject {
		height = 16
	}

	objs := make([]object, 0, maxObjectsPerLine)
	for i := 0; i < len(vid.oam) && len(objs) < maxObjectsPerLine; i += oamEntry {
		o := object{
			index: i / oamEntry,
			y:     int(vid.oam[i]) - 16,
			x:     int(vid.oam[i+1]) - 8,
			tile:  vid.oam[i+2],
			attr:  vid.oam[i+3],
		}
		l := int(vid.ly) - o.y
		if l >= 0 && l < height {
			objs = append(objs, o)
		}
	}

	slices.SortStableFunc(objs, func(a, b object) int {
		return a.x - b.x
	})

	var drawn [Width]bool

	for _, o := range objs {
		l := int(vid.ly) - o.y
		if o.attr&attrFlipY == attrFlipY {
			l = height - 1 - l
		}

		tile := o.tile
		if height == 16 {
			tile &= 0xfe
		}

		addr := tileDataUnsigned + int(tile)*16 + l*2
		lo, hi := vid.vram[addr], vid.vram[addr+1]

		palette := vid.obp0
		if o.attr&attrPalette == attrPalette {
			palette = vid.obp1
		}

		for px := 0; px < 8; px++ {
			x := o.x + px
			if x < 0 || x >= Width || drawn[x] {
				continue
			}

			b := px
			if o.attr&attrFlipX == attrFlipX {
				b = 7 - px
			}

			c := pixel(lo, hi, b)
			if c == 0 {
				continue
			}
			drawn[x] = true

			if o.attr&attrBehindBG == attrBehindBG && vid.bgIndex[x] != 0 {
				continue
			}
			row[x] = vid.Palette[shade(palette, c)]
		}
	}
}
