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

package cartridge

import (
	"fmt"

	"github.com/scimitar-emu/scimitar/cartridgeloader"
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
	"github.com/scimitar-emu/scimitar/logger"
)

// Cartridge defines the information and operations for a Game Boy cartridge.
// It implements the chipbus.Cartridge interface.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper cartMapper

	// the boot ROM overlays the start of cartridge ROM while bootActive is
	// true
	bootROM    []uint8
	bootActive bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the path to the cartridge and the second line is information about the
// header and the mapper.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s (%s)", cart.Filename, cart.Header, cart.mapper.format())
}

// Format returns the cartridge format ID.
func (cart *Cartridge) Format() string {
	return cart.mapper.format()
}

// ROMBank returns the number of the ROM bank mapped into the 0x4000 to 0x7fff
// area.
func (cart *Cartridge) ROMBank() int {
	return cart.mapper.romBank()
}

// Eject removes the cartridge data and attaches an empty 32KB ROM.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.Header = Header{Title: "ejected"}
	cart.mapper = newROMOnly(cart.Header, nil)
}

// Attach the cartridge loader to the cartridge, making the data available to
// the CPU.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	hdr, err := ParseHeader(cartload.Data)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	mapper, err := newMapper(hdr, cartload.Data)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = hdr
	cart.mapper = mapper

	logger.Logf(logger.Allow, "cartridge", "%s", hdr)
	logger.Logf(logger.Allow, "cartridge", "mapper: %s", mapper.format())

	return nil
}

// AttachBootROM places the boot ROM data over the start of cartridge ROM.
func (cart *Cartridge) AttachBootROM(data []uint8) {
	cart.bootROM = make([]uint8, len(data))
	copy(cart.bootROM, data)
	cart.bootActive = len(cart.bootROM) > 0
}

// BootROMActive returns true if the boot ROM is overlaying the cartridge.
func (cart *Cartridge) BootROMActive() bool {
	return cart.bootActive
}

// DisableBootROM is an implementation of chipbus.Cartridge.
func (cart *Cartridge) DisableBootROM() {
	cart.bootActive = false
}

// Read is an implementation of chipbus.Cartridge.
func (cart *Cartridge) Read(address uint16) uint8 {
	if cart.bootActive && address <= memorymap.MemtopBootROM && int(address) < len(cart.bootROM) {
		return cart.bootROM[address]
	}
	return cart.mapper.read(address)
}

// Write is an implementation of chipbus.Cartridge.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mapper.write(address, data)
}
