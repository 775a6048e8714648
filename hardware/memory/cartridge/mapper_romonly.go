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

// romOnly is the mapper for cartridges of 32KB with optional RAM.
type romOnly struct {
	rom []uint8
	ram []uint8
}

func newROMOnly(hdr Header, data []uint8) *romOnly {
	cart := &romOnly{
		rom: make([]uint8, 2*romBankSize),
	}
	copy(cart.rom, data)

	if hdr.Type != 0x00 {
		cart.ram = make([]uint8, ramBankSize)
	}

	return cart
}

func (cart *romOnly) format() string {
	return "ROM"
}

func (cart *romOnly) read(address uint16) uint8 {
	if int(address) < len(cart.rom) {
		return cart.rom[address]
	}
	o := ramOffset(address)
	if o < len(cart.ram) {
		return cart.ram[o]
	}
	return 0xff
}

func (cart *romOnly) write(address uint16, data uint8) {
	if int(address) < len(cart.rom) {
		return
	}
	o := ramOffset(address)
	if o < len(cart.ram) {
		cart.ram[o] = data
	}
}

func (cart *romOnly) romBank() int {
	return 1
}
