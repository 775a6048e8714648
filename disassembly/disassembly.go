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
	"strings"

	"github.com/scimitar-emu/scimitar/hardware/cpu/instructions"
)

// Memory is the interface required to read the bytes being disassembled.
// Reading must not have side effects.
type Memory interface {
	Peek(address uint16) uint8
}

// Entry is a disassembled instruction.
type Entry struct {
	Address  uint16
	Defn     instructions.Definition
	Bytes    []uint8
	Operator string
	Operand  string
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04x  %-9s %s", e.Address, e.Bytecode(), e.Operator)
	}
	return fmt.Sprintf("%04x  %-9s %s %s", e.Address, e.Bytecode(), e.Operator, e.Operand)
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

var (
	definitions   = instructions.GetDefinitions()
	cbDefinitions = instructions.GetCBDefinitions()
)

// Decode the instruction at the address.
func Decode(mem Memory, address uint16) Entry {
	e := Entry{
		Address: address,
		Defn:    definitions[mem.Peek(address)],
	}

	if e.Defn.OpCode == 0xcb {
		e.Defn = cbDefinitions[mem.Peek(address+1)]
	}

	for i := 0; i < e.Defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, mem.Peek(address+uint16(i)))
	}

	operator, operand, _ := strings.Cut(e.Defn.Mnemonic, " ")
	e.Operator = operator
	e.Operand = e.formatOperand(operand)

	if !e.Defn.Defined {
		e.Operator = "??"
		e.Operand = ""
	}

	return e
}

// formatOperand replaces the placeholders in the operand with the values from
// the instruction bytes.
func (e Entry) formatOperand(operand string) string {
	var imm8 uint8
	var imm16 uint16
	if len(e.Bytes) > 1 {
		imm8 = e.Bytes[1]
	}
	if len(e.Bytes) > 2 {
		imm16 = uint16(e.Bytes[2])<<8 | uint16(e.Bytes[1])
	}

	switch {
	case strings.Contains(operand, "d16"):
		return strings.Replace(operand, "d16", fmt.Sprintf("$%04x", imm16), 1)
	case strings.Contains(operand, "a16"):
		return strings.Replace(operand, "a16", fmt.Sprintf("$%04x", imm16), 1)
	case strings.Contains(operand, "d8"):
		return strings.Replace(operand, "d8", fmt.Sprintf("$%02x", imm8), 1)
	case strings.Contains(operand, "a8"):
		return strings.Replace(operand, "a8", fmt.Sprintf("$ff%02x", imm8), 1)
	case strings.Contains(operand, "SP+r8"):
		return strings.Replace(operand, "SP+r8", fmt.Sprintf("SP%+d", int8(imm8)), 1)
	case strings.Contains(operand, "r8"):
		// relative jumps are shown with the address of the target
		if e.Defn.Category == instructions.Flow {
			target := e.Address + uint16(e.Defn.Bytes) + uint16(int8(imm8))
			return strings.Replace(operand, "r8", fmt.Sprintf("$%04x", target), 1)
		}
		return strings.Replace(operand, "r8", fmt.Sprintf("%+d", int8(imm8)), 1)
	}

	return operand
}

// Linear decodes instructions starting at from. Decoding stops at the first
// instruction that extends beyond the to address.
func Linear(mem Memory, from uint16, to uint16) []Entry {
	var entries []Entry

	address := uint32(from)
	for address <= uint32(to) {
		e := Decode(mem, uint16(address))
		if address+uint32(len(e.Bytes))-1 > uint32(to) {
			break
		}
		entries = append(entries, e)
		address += uint32(len(e.Bytes))
	}

	return entries
}
