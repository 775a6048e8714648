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

package execution

import (
	"fmt"
	"strings"

	"github.com/scimitar-emu/scimitar/hardware/cpu/instructions"
)

// Result records the state/result of the last CPU step.
type Result struct {
	// address of the opcode. for an interrupt this is the value of the
	// program counter when the interrupt was dispatched
	Address uint16

	OpCode   uint8
	Prefixed bool

	// the definition of the instruction. for prefixed instructions this is
	// the definition from the CB table. the zero value if no instruction was
	// executed (interrupt dispatch or halted)
	Defn instructions.Definition

	// number of bytes read while decoding the instruction, including the
	// opcode and any prefix
	ByteCount int

	// number of cycles consumed by the step
	Cycles uint16

	// whether the conditional instruction's branch was taken
	BranchTaken bool

	// interrupt vector if an interrupt was dispatched instead of an instruction
	Interrupt uint16

	// the CPU is in the halted or stopped state and did not execute an
	// instruction
	Halted bool

	// CPU bug triggered by the instruction
	CPUBug Bug
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Executed returns true if an instruction was executed during the step.
func (r Result) Executed() bool {
	return r.Defn.Defined
}

func (r Result) String() string {
	if r.Halted {
		return fmt.Sprintf("halted (%d cycles)", r.Cycles)
	}
	if r.Interrupt != 0 {
		return fmt.Sprintf("%04x: interrupt %04x (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x: ", r.Address))
	if r.Prefixed {
		s.WriteString("cb ")
	}
	s.WriteString(fmt.Sprintf("%02x %s (%d cycles)", r.OpCode, r.Defn.Mnemonic, r.Cycles))
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" [%s]", r.CPUBug))
	}
	return s.String()
}
