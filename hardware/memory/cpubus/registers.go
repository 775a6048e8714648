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

package cpubus

// Addresses of the memory mapped registers.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)

	NR10 = uint16(0xff10)
	NR11 = uint16(0xff11)
	NR12 = uint16(0xff12)
	NR13 = uint16(0xff13)
	NR14 = uint16(0xff14)
	NR21 = uint16(0xff16)
	NR22 = uint16(0xff17)
	NR23 = uint16(0xff18)
	NR24 = uint16(0xff19)
	NR30 = uint16(0xff1a)
	NR31 = uint16(0xff1b)
	NR32 = uint16(0xff1c)
	NR33 = uint16(0xff1d)
	NR34 = uint16(0xff1e)
	NR41 = uint16(0xff20)
	NR42 = uint16(0xff21)
	NR43 = uint16(0xff22)
	NR44 = uint16(0xff23)
	NR50 = uint16(0xff24)
	NR51 = uint16(0xff25)
	NR52 = uint16(0xff26)

	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)

	// any write disables the boot ROM overlay
	BOOT = uint16(0xff50)

	IE = uint16(0xffff)
)

// RegisterNames maps the address of a memory mapped register to its canonical
// name.
var RegisterNames = map[uint16]string{
	P1: "P1", SB: "SB", SC: "SC", DIV: "DIV", TIMA: "TIMA", TMA: "TMA", TAC: "TAC", IF: "IF",
	NR10: "NR10", NR11: "NR11", NR12: "NR12", NR13: "NR13", NR14: "NR14",
	NR21: "NR21", NR22: "NR22", NR23: "NR23", NR24: "NR24",
	NR30: "NR30", NR31: "NR31", NR32: "NR32", NR33: "NR33", NR34: "NR34",
	NR41: "NR41", NR42: "NR42", NR43: "NR43", NR44: "NR44",
	NR50: "NR50", NR51: "NR51", NR52: "NR52",
	LCDC: "LCDC", STAT: "STAT", SCY: "SCY", SCX: "SCX", LY: "LY", LYC: "LYC", DMA: "DMA",
	BGP: "BGP", OBP0: "OBP0", OBP1: "OBP1", WY: "WY", WX: "WX",
	BOOT: "BOOT", IE: "IE",
}

// LookupRegister returns the address of the named register. The search is
// case sensitive.
func LookupRegister(name string) (uint16, bool) {
	for a, n := range RegisterNames {
		if n == name {
			return a, true
		}
	}
	return 0, false
}
