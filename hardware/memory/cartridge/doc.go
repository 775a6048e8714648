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

// Package cartridge fully implements loading of cartridge data and the
// cartridge memory banking.
//
// The cartridge type in the header of the ROM decides the mapper. The
// currently supported mappers are ROM only (with or without RAM) and MBC1.
//
// The cartridge also hosts the boot ROM, which overlays the first 256 bytes of
// cartridge ROM until DisableBootROM() is called.
package cartridge
