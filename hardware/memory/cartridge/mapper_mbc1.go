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

// mbc1 implements the MBC1 memory bank controller. ROM is up to 2MB and RAM is
// up to 32KB.
type mbc1 struct {
	rom [][]uint8
	ram [][]uint8

	ramEnabled bool

	// five bit register. a value of zero is treated as one
	bankLow uint8

	// two bit register. upper bits of the ROM bank number or the RAM bank
	// number depending on the banking mode
	bankHigh uint8

	// in the advanced banking mode the high bank register also affects the
	// 0x0000 to 0x3fff area and selects the RAM bank
	advanced bool
}

func newMBC1(hdr Header, data []uint8) *mbc1 {
	cart := &mbc1{
		bankLow: 1,
	}

	n := (len(data) + romBankSize - 1) / romBankSize
	if n < 2 {
		n = 2
	}
	cart.rom = make([][]uint8, n)
	for i := range cart.rom {
		cart.rom[i] = make([]uint8, romBankSize)
		if i*romBankSize < len(data) {
			copy(cart.rom[i], data[i*romBankSize:])
		}
	}

	n = hdr.RAMBytes() / ramBankSize
	if hdr.RAMBytes() > 0 && n == 0 {
		n = 1
	}
	cart.ram = make([][]uint8, n)
	for i := range cart.ram {
		cart.ram[i] = make([]uint8, ramBankSize)
	}

	return cart
}

func (cart *mbc1) format() string {
	return "MBC1"
}

// bank returns the ROM bank mapped into the 0x0000 to 0x3fff area when lower
// is true or into the 0x4000 to 0x7fff area when lower is false.
func (cart *mbc1) bank(lower bool) int {
	var b int
	if lower {
		if cart.advanced {
			b = int(cart.bankHigh) << 5
		}
	} else {
		b = int(cart.bankHigh)<<5 | int(cart.bankLow)
	}
	return b % len(cart.rom)
}

func (cart *mbc1) romBank() int {
	return cart.bank(false)
}

func (cart *mbc1) ramBank() int {
	if !cart.advanced {
		return 0
	}
	return int(cart.bankHigh) % len(cart.ram)
}

func (cart *mbc1) read(address uint16) uint8 {
	switch {
	case address < romBankSize:
		return cart.rom[cart.bank(true)][address]
	case address < 2*romBankSize:
		return cart.rom[cart.bank(false)][address-romBankSize]
	}

	if !cart.ramEnabled || len(cart.ram) == 0 {
		return 0xff
	}
	o := ramOffset(address)
	bank := cart.ram[cart.ramBank()]
	if o >= len(bank) {
		return 0xff
	}
	return bank[o]
}

func (cart *mbc1) write(address uint16, data uint8) {
	switch {
	case address < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a
	case address < 0x4000:
		cart.bankLow = data & 0x1f
		if cart.bankLow == 0 {
			cart.bankLow = 1
		}
	case address < 0x6000:
		cart.bankHigh = data & 0x03
	case address < 0x8000:
		cart.advanced = data&0x01 == 0x01
	default:
		if !cart.ramEnabled || len(cart.ram) == 0 {
			return
		}
		o := ramOffset(address)
		bank := cart.ram[cart.ramBank()]
		if o < len(bank) {
			bank[o] = data
		}
	}
}
