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

// Package interrupt implements the interrupt request mechanism. Peripherals
// raise requests by calling Raise() on an Accumulator during their Step()
// function. The accumulated requests are merged into the interrupt flag
// register once every peripheral has been stepped.
//
// The interrupt flag (IF) and interrupt enable (IE) registers each have five
// meaningful bits, one for each Kind of interrupt. The top three bits of both
// registers always read as set.
package interrupt
