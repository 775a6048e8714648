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
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
)

// UnsupportedMapper is the error pattern for cartridges with a type that is
// not supported.
const UnsupportedMapper = "cartridge: unsupported mapper (%#02x %s)"

// size of a ROM bank and a RAM bank.
const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// cartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped. addresses are CPU addresses in the
// cartridge ROM and cartridge RAM areas.
type cartMapper interface {
	format() string
	read(address uint16) uint8
	write(address uint16, data uint8)
	romBank() int
}

func newMapper(hdr Header, data []uint8) (cartMapper, error) {
	switch hdr.Type {
	case 0x00, 0x08, 0x09:
		return newROMOnly(hdr, data), nil
	case 0x01, 0x02, 0x03:
		return newMBC1(hdr, data), nil
	}
	return nil, curated.Errorf(UnsupportedMapper, hdr.Type, hdr.TypeName())
}

// ramOffset returns the offset into cartridge RAM of the address.
func ramOffset(address uint16) int {
	return int(address - memorymap.OriginCartRAM)
}
