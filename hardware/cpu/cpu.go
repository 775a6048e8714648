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

package cpu

import (
	"fmt"

	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/cpu/execution"
	"github.com/scimitar-emu/scimitar/hardware/cpu/instructions"
	"github.com/scimitar-emu/scimitar/hardware/cpu/registers"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/hardware/model"
	"github.com/scimitar-emu/scimitar/logger"
)

// UndefinedOpcode is the error pattern used when the CPU fetches an opcode
// with no defined behaviour.
const UndefinedOpcode = "cpu: undefined opcode %#02x at %#04x"

// the number of cycles consumed by dispatching an interrupt.
const interruptCycles = 16 + 4

// the number of cycles consumed by a step while halted or stopped.
const idleCycles = 4

// the prefix byte for the extended opcode space.
const prefixCB = 0xcb

// CPU implements the SM83 CPU.
type CPU struct {
	A registers.Register
	F registers.Flags
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	// 16-bit views of the B, C, D, E, H and L registers
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	SP registers.Register16
	PC registers.Register16

	// interrupt master enable
	IME bool

	// the EI and DI instructions do not change IME immediately. imeDelay is
	// the number of instructions (including the EI or DI instruction itself)
	// to complete before IME takes the value of imeNext
	imeDelay int
	imeNext  bool

	// Halted is true after a HALT instruction and until an interrupt is
	// pending
	Halted bool

	// Stopped is true after a STOP instruction and until a joypad interrupt is
	// requested
	Stopped bool

	// the next opcode fetch will not increment the program counter
	haltBug bool

	mem cpubus.Memory

	// the 8-bit registers in the order of the three bit register field of an
	// opcode. index 6 is nil and refers to memory at (HL)
	r8 [8]*registers.Register

	// LastResult describes the most recent call to Step()
	LastResult execution.Result
}

// definitions of both opcode spaces. used to fill in the LastResult field.
var (
	definitions   = instructions.GetDefinitions()
	cbDefinitions = instructions.GetCBDefinitions()
)

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		A:   registers.NewRegister(0, "A"),
		B:   registers.NewRegister(0, "B"),
		C:   registers.NewRegister(0, "C"),
		D:   registers.NewRegister(0, "D"),
		E:   registers.NewRegister(0, "E"),
		H:   registers.NewRegister(0, "H"),
		L:   registers.NewRegister(0, "L"),
		SP:  registers.NewRegister16(0, "SP"),
		PC:  registers.NewRegister16(0, "PC"),
		mem: mem,
	}

	mc.BC = registers.NewPair(&mc.B, &mc.C)
	mc.DE = registers.NewPair(&mc.D, &mc.E)
	mc.HL = registers.NewPair(&mc.H, &mc.L)
	mc.r8 = [8]*registers.Register{&mc.B, &mc.C, &mc.D, &mc.E, &mc.H, &mc.L, nil, &mc.A}

	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s SP=%s A=%s F=%s BC=%s DE=%s HL=%s IME=%v",
		mc.PC, mc.SP, mc.A, mc.F, mc.BC, mc.DE, mc.HL, mc.IME)
}

// Reset the CPU to the state it is in at power on. If bootROM is false then
// the registers are set to the values the boot ROM of the model would leave
// behind.
func (mc *CPU) Reset(m model.Model, bootROM bool) {
	mc.LastResult.Reset()
	mc.IME = false
	mc.imeDelay = 0
	mc.imeNext = false
	mc.Halted = false
	mc.Stopped = false
	mc.haltBug = false

	if bootROM {
		mc.setAF(0)
		mc.BC.Load(0)
		mc.DE.Load(0)
		mc.HL.Load(0)
		mc.SP.Load(0)
		mc.PC.Load(0)
		return
	}

	r := m.PostBoot()
	mc.A.Load(r.A)
	mc.F.FromValue(r.F)
	mc.B.Load(r.B)
	mc.C.Load(r.C)
	mc.D.Load(r.D)
	mc.E.Load(r.E)
	mc.H.Load(r.H)
	mc.L.Load(r.L)
	mc.SP.Load(r.SP)
	mc.PC.Load(r.PC)
}

// AF returns the value of the A and F registers as a 16-bit value.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

func (mc *CPU) setAF(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.F.FromValue(uint8(v))
}

// Step executes the next instruction, or services a pending interrupt, and
// returns the number of cycles consumed.
func (mc *CPU) Step() (uint16, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	flags := mc.mem.ReadByte(cpubus.IF)
	pending := flags & mc.mem.ReadByte(cpubus.IE) & interrupt.Mask

	if mc.Stopped {
		if flags&interrupt.Joypad.Mask() == 0 {
			return mc.idle(), nil
		}
		mc.Stopped = false
	}

	if mc.Halted {
		if pending == 0 {
			return mc.idle(), nil
		}
		mc.Halted = false
	}

	if mc.IME && pending != 0 {
		return mc.dispatch(pending), nil
	}

	return mc.execute()
}

func (mc *CPU) idle() uint16 {
	mc.LastResult.Halted = true
	mc.LastResult.Cycles = idleCycles
	return idleCycles
}

// dispatch the highest priority interrupt in pending.
func (mc *CPU) dispatch(pending uint8) uint16 {
	k, _ := interrupt.Highest(pending)

	// a halt bug outstanding at dispatch returns to the HALT instruction
	if mc.haltBug {
		mc.haltBug = false
		mc.PC.Subtract(1)
		mc.LastResult.CPUBug = execution.HaltBug
	}

	mc.IME = false
	mc.mem.WriteByte(cpubus.IF, mc.mem.ReadByte(cpubus.IF)&^k.Mask())
	mc.push16(mc.PC.Address())
	mc.PC.Load(k.Vector())

	mc.LastResult.Interrupt = k.Vector()
	mc.LastResult.Cycles = interruptCycles

	return interruptCycles
}

func (mc *CPU) execute() (uint16, error) {
	address := mc.PC.Address()

	op := mc.mem.ReadByte(address)
	mc.LastResult.ByteCount++
	if mc.haltBug {
		mc.haltBug = false
		mc.LastResult.CPUBug = execution.HaltBug
	} else {
		mc.PC.Add(1)
	}

	mc.LastResult.OpCode = op
	cycles := instructions.CycleCounts[op]

	if op == prefixCB {
		op = mc.read8PC()
		mc.LastResult.OpCode = op
		mc.LastResult.Prefixed = true
		mc.LastResult.Defn = cbDefinitions[op]
		cycles += instructions.CBCycleCounts[op]
		mc.executeCB(op)
	} else {
		defn := definitions[op]
		if !defn.Defined {
			logger.Logf(logger.Allow, "cpu", "undefined opcode %#02x at %#04x", op, address)
			return 0, curated.Errorf(UndefinedOpcode, op, address)
		}

		mc.LastResult.Defn = defn
		if opcodes[op](mc) {
			mc.LastResult.BranchTaken = true
			cycles += defn.ExtraCycles
		}
	}

	mc.LastResult.Cycles = cycles

	if mc.imeDelay > 0 {
		mc.imeDelay--
		if mc.imeDelay == 0 {
			mc.IME = mc.imeNext
		}
	}

	return cycles, nil
}

// read8PC returns the byte at the program counter and advances the program
// counter.
func (mc *CPU) read8PC() uint8 {
	v := mc.mem.ReadByte(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16PC returns the little-endian halfword at the program counter and
// advances the program counter.
func (mc *CPU) read16PC() uint16 {
	lo := mc.read8PC()
	hi := mc.read8PC()
	return uint16(hi)<<8 | uint16(lo)
}

// push16 writes the high byte at SP-1 and the low byte at SP-2.
func (mc *CPU) push16(v uint16) {
	mc.SP.Subtract(1)
	mc.mem.WriteByte(mc.SP.Address(), uint8(v>>8))
	mc.SP.Subtract(1)
	mc.mem.WriteByte(mc.SP.Address(), uint8(v))
}

// pop16 reads the low byte at SP and the high byte at SP+1.
func (mc *CPU) pop16() uint16 {
	lo := mc.mem.ReadByte(mc.SP.Address())
	mc.SP.Add(1)
	hi := mc.mem.ReadByte(mc.SP.Address())
	mc.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo)
}

// getR returns the value of the register indexed by the three bit register
// field of an opcode.
func (mc *CPU) getR(r uint8) uint8 {
	if r == 6 {
		return mc.mem.ReadByte(mc.HL.Value())
	}
	return mc.r8[r].Value()
}

func (mc *CPU) setR(r uint8, v uint8) {
	if r == 6 {
		mc.mem.WriteByte(mc.HL.Value(), v)
		return
	}
	mc.r8[r].Load(v)
}

// getRP returns the value of the register pair indexed by the two bit
// register pair field of an opcode. SP is index 3.
func (mc *CPU) getRP(rp uint8) uint16 {
	switch rp {
	case 0:
		return mc.BC.Value()
	case 1:
		return mc.DE.Value()
	case 2:
		return mc.HL.Value()
	}
	return mc.SP.Address()
}

func (mc *CPU) setRP(rp uint8, v uint16) {
	switch rp {
	case 0:
		mc.BC.Load(v)
	case 1:
		mc.DE.Load(v)
	case 2:
		mc.HL.Load(v)
	default:
		mc.SP.Load(v)
	}
}

// condition returns the state of the condition indexed by the two bit
// condition field of an opcode. in order: NZ, Z, NC, C.
func (mc *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !mc.F.Zero
	case 1:
		return mc.F.Zero
	case 2:
		return !mc.F.Carry
	}
	return mc.F.Carry
}
