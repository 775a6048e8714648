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

// Package registers implements the registers of the SM83 CPU found in the Game
// Boy.
//
// There are eight 8-bit registers, represented by the Register type. Six of
// them can be paired to form the 16-bit registers BC, DE and HL. The Pair type
// is a view onto two Register instances and does not hold a value of its own.
//
// The F register is special. Only the upper nibble is meaningful and each bit
// is a condition flag. The Flags type stores the four flags as booleans and
// converts to and from the byte form with Value() and FromValue(). The lower
// nibble is always zero when read and is ignored when written.
//
// The stack pointer and program counter are both of the Register16 type.
// Arithmetic on a Register16 always wraps at 16 bits.
package registers
