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

// Package disassembly decodes SM83 instructions into a human readable form.
//
// Decoding is linear: every instruction is assumed to start immediately after
// the previous one. Data embedded in the program will be decoded as though it
// were instructions.
//
// For quick disassemblies of a cartridge the FromCartridge() function can be
// used. Disassembly of a running Game Boy can be performed with Linear(),
// using the hardware memory as the source of bytes.
package disassembly
