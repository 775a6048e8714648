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

package disassembly

import (
	"fmt"
	"io"

	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/memory/cartridge"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
)

// cartridgeMemory allows a cartridge to be disassembled without creating a
// Game Boy. only the ROM is visible.
type cartridgeMemory struct {
	cart *cartridge.Cartridge
}

func (m cartridgeMemory) Peek(address uint16) uint8 {
	if address > memorymap.MemtopCart {
		return 0xff
	}
	return m.cart.Read(address)
}

// FromCartridge disassembles the ROM of the cartridge between the two
// addresses. The ROM bank currently mapped into the upper half of the ROM area
// is used.
func FromCartridge(cart *cartridge.Cartridge, from uint16, to uint16) ([]Entry, error) {
	if from > to {
		return nil, curated.Errorf("disassembly: start address (%04x) is after end address (%04x)", from, to)
	}
	if to > memorymap.MemtopCart {
		return nil, curated.Errorf("disassembly: end address (%04x) is outside cartridge ROM", to)
	}
	return Linear(cartridgeMemory{cart: cart}, from, to), nil
}

// Write the entries to output, one per line.
func Write(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(output, e); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}
	return nil
}
