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

// Package cpubus defines the interface through which the CPU accesses memory
// and the addresses of the memory mapped registers as seen from the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every address is valid. Addresses with nothing mapped to them read as
// 0xff and writes to them are ignored.
//
// Halfword operations are little-endian. The low byte is at address and the
// high byte at address+1.
type Memory interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, data uint8)
	ReadHalfword(address uint16) uint16
	WriteHalfword(address uint16, data uint16)
}
