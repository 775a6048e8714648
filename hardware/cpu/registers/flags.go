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

package registers

import "strings"

// bit positions of the flags in the F register.
const (
	FlagZero      = uint8(0x80)
	FlagSubtract  = uint8(0x40)
	FlagHalfCarry = uint8(0x20)
	FlagCarry     = uint8(0x10)
)

// Flags is the special purpose register that stores the condition flags of
// the CPU.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

// String returns the flags with upper case letters for set flags and lower
// case letters for cleared flags. For example, "ZnHc".
func (f Flags) String() string {
	s := strings.Builder{}

	if f.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if f.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if f.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if f.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset all flags.
func (f *Flags) Reset() {
	f.FromValue(0)
}

// Value converts the Flags struct into the byte form. The lower nibble is
// always zero.
func (f Flags) Value() uint8 {
	var v uint8

	if f.Zero {
		v |= FlagZero
	}
	if f.Subtract {
		v |= FlagSubtract
	}
	if f.HalfCarry {
		v |= FlagHalfCarry
	}
	if f.Carry {
		v |= FlagCarry
	}

	return v
}

// FromValue sets the flags from the byte form. The lower nibble is ignored.
func (f *Flags) FromValue(v uint8) {
	f.Zero = v&FlagZero == FlagZero
	f.Subtract = v&FlagSubtract == FlagSubtract
	f.HalfCarry = v&FlagHalfCarry == FlagHalfCarry
	f.Carry = v&FlagCarry == FlagCarry
}
