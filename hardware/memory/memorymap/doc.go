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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Implementations of the different memory areas may need to drag the address
// down into the the range of an array. This can be done with (address -
// origin) after the area has been decided with the MapAddress() function.
//
// The echo area is a mirror of the first 0x1e00 bytes of work RAM. MapAddress
// returns the primary work RAM address for echo addresses.
//
// The package also defines the bus segments used by the DMA contention
// model. See the Segment type for details.
package memorymap
