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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, just like fmt.Errorf(), but the
// pattern is remembered and becomes the identity of the error:
//
//	const UndefinedOpcode = "cpu: undefined opcode (%#02x) at (%#04x)"
//
//	err := curated.Errorf(UndefinedOpcode, 0xd3, 0x0150)
//	if curated.Is(err, UndefinedOpcode) {
//		// stop emulation
//	}
//
// The Has() function is similar but checks whether the pattern occurs anywhere
// in the chain of curated errors.
//
//	f := curated.Errorf("gameboy: %v", err)
//	curated.Has(f, UndefinedOpcode) // true
//	curated.Is(f, UndefinedOpcode)  // false
//
// Chains are thought of as parts separated by the sub-string ": ". The Error()
// function removes duplicate adjacent parts so that wrapping an error with the
// same prefix more than once does not produce stuttering messages:
//
//	cartridge: cartridge: unsupported mapper
//
// is reported as:
//
//	cartridge: unsupported mapper
//
// Sentinel patterns are stored as exported const strings in the package that
// creates them.
package curated
