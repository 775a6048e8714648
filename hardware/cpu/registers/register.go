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

import (
	"fmt"
)

// Register is an 8-bit CPU register.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Pair is a 16-bit view of two 8-bit registers. The first register is the
// high byte.
type Pair struct {
	hi *Register
	lo *Register
}

// NewPair creates a view of the two registers.
func NewPair(hi *Register, lo *Register) Pair {
	return Pair{hi: hi, lo: lo}
}

func (p Pair) String() string {
	return fmt.Sprintf("%04x", p.Value())
}

// Label returns the name of the register pair. For example, "BC".
func (p Pair) Label() string {
	return p.hi.label + p.lo.label
}

// Value returns the current value of the pair.
func (p Pair) Value() uint16 {
	return uint16(p.hi.value)<<8 | uint16(p.lo.value)
}

// Load a 16-bit value into the pair.
func (p Pair) Load(val uint16) {
	p.hi.value = uint8(val >> 8)
	p.lo.value = uint8(val)
}

// Register16 is a 16-bit register. Used for the stack pointer and program
// counter.
type Register16 struct {
	value uint16
	label string
}

// NewRegister16 is the preferred method of initialisation for Register16.
func NewRegister16(val uint16, label string) Register16 {
	return Register16{
		value: val,
		label: label,
	}
}

func (r Register16) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Label returns the name of the register.
func (r Register16) Label() string {
	return r.label
}

// Address returns the current value of the register.
func (r Register16) Address() uint16 {
	return r.value
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add value to register, wrapping at 16 bits.
func (r *Register16) Add(val uint16) {
	r.value += val
}

// Subtract value from register, wrapping at 16 bits.
func (r *Register16) Subtract(val uint16) {
	r.value -= val
}
