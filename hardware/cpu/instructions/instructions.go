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

package instructions

import "fmt"

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Load Category = iota
	ALU
	Bits
	Flow
	Subroutine
	Control
)

func (c Category) String() string {
	switch c {
	case Load:
		return "Load"
	case ALU:
		return "ALU"
	case Bits:
		return "Bits"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Control:
		return "Control"
	}
	return "unknown category"
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// number of bytes including the opcode (and the CB prefix for prefixed
	// instructions)
	Bytes int

	// base number of cycles. always the same as the corresponding entry in the
	// CycleCounts or CBCycleCounts table
	Cycles uint16

	// additional cycles consumed by a conditional instruction when the
	// condition is met. zero for unconditional instructions
	ExtraCycles uint16

	Category Category

	// false for the opcodes with no defined behaviour
	Defined bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if !defn.Defined {
		return fmt.Sprintf("%02x undefined", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Category)
}

// IsConditional returns true if the instruction consumes a different number
// of cycles depending on the state of the flags.
func (defn Definition) IsConditional() bool {
	return defn.ExtraCycles > 0
}

// GetDefinitions returns the definitions of the primary opcode space, indexed
// by opcode.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions[:])
	return d
}

// GetCBDefinitions returns the definitions of the CB-prefixed opcode space,
// indexed by opcode.
func GetCBDefinitions() []Definition {
	d := make([]Definition, len(cbDefinitions))
	copy(d, cbDefinitions[:])
	return d
}

// names of the operands used by register indexed instructions. in the order
// of the three bit register field of the opcode.
var operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var cbDefinitions [256]Definition

func init() {
	for i := range definitions {
		definitions[i].Cycles = CycleCounts[i]
	}

	shifts := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

	for i := range cbDefinitions {
		op := uint8(i)
		r := operandNames[op&0x07]
		bit := (op >> 3) & 0x07

		var mnemonic string
		switch op >> 6 {
		case 0:
			mnemonic = fmt.Sprintf("%s %s", shifts[bit], r)
		case 1:
			mnemonic = fmt.Sprintf("BIT %d,%s", bit, r)
		case 2:
			mnemonic = fmt.Sprintf("RES %d,%s", bit, r)
		case 3:
			mnemonic = fmt.Sprintf("SET %d,%s", bit, r)
		}

		cbDefinitions[i] = Definition{
			OpCode:   op,
			Mnemonic: mnemonic,
			Bytes:    2,
			Cycles:   CBCycleCounts[i],
			Category: Bits,
			Defined:  true,
		}
	}
}
