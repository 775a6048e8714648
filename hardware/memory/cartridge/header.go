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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
)

// ShortROM is the error pattern for ROM data that is too short to contain a
// header.
const ShortROM = "cartridge: ROM too short (%d bytes)"

// Offsets of the fields in the cartridge header.
const (
	titleOffset   = 0x0134
	titleLength   = 16
	typeOffset    = 0x0147
	romSizeOffset = 0x0148
	ramSizeOffset = 0x0149
	headerEnd     = 0x0150
)

// Header is the information in the header of the cartridge ROM.
type Header struct {
	Title   string
	Type    uint8
	ROMSize uint8
	RAMSize uint8
}

// ParseHeader extracts the header from the ROM data.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < headerEnd {
		return Header{}, curated.Errorf(ShortROM, len(data))
	}

	var hdr Header

	title := strings.Builder{}
	for _, c := range data[titleOffset : titleOffset+titleLength] {
		if c == 0 {
			break
		}
		title.WriteByte(c)
	}
	hdr.Title = title.String()

	hdr.Type = data[typeOffset]
	hdr.ROMSize = data[romSizeOffset]
	hdr.RAMSize = data[ramSizeOffset]

	return hdr, nil
}

func (hdr Header) String() string {
	return fmt.Sprintf("%s [%s] ROM %s RAM %s", hdr.Title, hdr.TypeName(), hdr.ROMSizeName(), hdr.RAMSizeName())
}

// TypeName returns the name of the cartridge type.
func (hdr Header) TypeName() string {
	switch hdr.Type {
	case 0x00:
		return "ROM ONLY"
	case 0x01:
		return "ROM+MBC1"
	case 0x02:
		return "ROM+MBC1+RAM"
	case 0x03:
		return "ROM+MBC1+RAM+BATT"
	case 0x05:
		return "ROM+MBC2"
	case 0x06:
		return "ROM+MBC2+BATTERY"
	case 0x08:
		return "ROM+RAM"
	case 0x09:
		return "ROM+RAM+BATTERY"
	case 0x0b:
		return "ROM+MMM01"
	case 0x0c:
		return "ROM+MMM01+SRAM"
	case 0x0d:
		return "ROM+MMM01+SRAM+BATT"
	case 0x0f:
		return "ROM+MBC3+TIMER+BATT"
	case 0x10:
		return "ROM+MBC3+TIMER+RAM+BATT"
	case 0x11:
		return "ROM+MBC3"
	case 0x12:
		return "ROM+MBC3+RAM"
	case 0x13:
		return "ROM+MBC3+RAM+BATT"
	case 0x19:
		return "ROM+MBC5"
	case 0x1a:
		return "ROM+MBC5+RAM"
	case 0x1b:
		return "ROM+MBC5+RAM+BATT"
	case 0x1c:
		return "ROM+MBC5+RUMBLE"
	case 0x1d:
		return "ROM+MBC5+RUMBLE+SRAM"
	case 0x1e:
		return "ROM+MBC5+RUMBLE+SRAM+BATT"
	case 0xfc:
		return "POCKET CAMERA"
	case 0xfd:
		return "Bandai TAMA5"
	case 0xfe:
		return "Hudson HuC-3"
	case 0xff:
		return "Hudson HuC-1"
	}
	return "UNRECOGNISED CART TYPE"
}

// ROMSizeName returns the ROM size as a string.
func (hdr Header) ROMSizeName() string {
	switch hdr.ROMSize {
	case 0x00:
		return "32KB"
	case 0x01:
		return "64KB"
	case 0x02:
		return "128KB"
	case 0x03:
		return "256KB"
	case 0x04:
		return "512KB"
	case 0x05:
		return "1MB"
	case 0x06:
		return "2MB"
	case 0x07:
		return "4MB"
	case 0x08:
		return "8MB"
	}
	return "unrecognised"
}

// RAMBytes returns the number of bytes of cartridge RAM.
func (hdr Header) RAMBytes() int {
	switch hdr.RAMSize {
	case 0x01:
		return 0x800
	case 0x02:
		return 0x2000
	case 0x03:
		return 0x8000
	case 0x04:
		return 0x20000
	case 0x05:
		return 0x10000
	}
	return 0
}

// RAMSizeName returns the RAM size as a string.
func (hdr Header) RAMSizeName() string {
	n := hdr.RAMBytes()
	if n == 0 {
		return "none"
	}
	return fmt.Sprintf("%dKB", n/1024)
}
