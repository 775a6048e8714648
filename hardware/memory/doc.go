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

// Package memory implements the interconnect of the Game Boy. All CPU access
// to memory goes through the Memory type, which decodes the address and
// forwards the access to the cartridge, to internal RAM or to the register
// window of a peripheral.
//
//	                        CPU
//	                         |
//	                      cpu bus
//	                         |
//	    Cartridge ---- * MEMORY * ---- chip bus ---- Video, Audio, Timer,
//	                         |                       Joypad, Serial
//	                        DMA
//
// The OAM DMA is part of the memory system. It copies 160 bytes from a source
// page into OAM, one byte every four cycles, and is advanced by the Step()
// function. While the DMA is on a bus segment (see the memorymap package) a
// CPU read from the same segment returns the byte the DMA has latched rather
// than the value at the addressed location.
//
// Step() also advances every peripheral by the same number of cycles and
// folds any interrupts raised by the peripherals into the IF register.
//
// Addresses that are not mapped to anything read as 0xff. Writes to them are
// ignored.
package memory
