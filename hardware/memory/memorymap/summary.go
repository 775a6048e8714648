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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var sa uint16

	s := strings.Builder{}

	// look up area of first address in memory
	current = AreaOf(0)

	// for every address in the range 1 to Memtop...
	a := uint16(1)
	for {
		// ...get the area name of that address.
		area = AreaOf(a)

		// if the area has changed print out the summary line...
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-uint16(1), current.String()))

			// ...update current area and start address of the area
			current = area
			sa = a
		}

		// Memtop is the very edge of uint16
		if a == Memtop {
			break
		}
		a++
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a, area.String()))

	return s.String()
}
