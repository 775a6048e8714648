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
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
)

// opcode is the implementation of a single instruction in the primary opcode
// space. conditional instructions return true if the condition was met.
type opcode func(mc *CPU) bool

// opcodes is indexed by opcode. the entries for the CB prefix and for
// the undefined opcodes are nil.
var opcodes [256]opcode

// the base of the high memory page used by LDH and LD (C).
const highPage = uint16(0xff00)

func init() {
	// instructions with a three bit register field
	for i := uint8(0); i < 8; i++ {
		r := i

		// INC r
		opcodes[0x04|r<<3] = func(mc *CPU) bool {
			mc.setR(r, mc.inc8(mc.getR(r)))
			return false
		}

		// DEC r
		opcodes[0x05|r<<3] = func(mc *CPU) bool {
			mc.setR(r, mc.dec8(mc.getR(r)))
			return false
		}

		// LD r,d8
		opcodes[0x06|r<<3] = func(mc *CPU) bool {
			v := mc.read8PC()
			mc.setR(r, v)
			return false
		}

		// ALU A,d8
		opcodes[0xc6|r<<3] = func(mc *CPU) bool {
			mc.alu(r, mc.read8PC())
			return false
		}

		// RST
		opcodes[0xc7|r<<3] = func(mc *CPU) bool {
			mc.push16(mc.PC.Address())
			mc.PC.Load(uint16(r) << 3)
			return false
		}
	}

	// LD r,r'
	for op := 0x40; op < 0x80; op++ {
		if op == 0x76 {
			continue
		}
		dst := uint8(op>>3) & 0x07
		src := uint8(op) & 0x07
		opcodes[op] = func(mc *CPU) bool {
			mc.setR(dst, mc.getR(src))
			return false
		}
	}

	// ALU A,r
	for op := 0x80; op < 0xc0; op++ {
		kind := uint8(op>>3) & 0x07
		src := uint8(op) & 0x07
		opcodes[op] = func(mc *CPU) bool {
			mc.alu(kind, mc.getR(src))
			return false
		}
	}

	// instructions with a two bit register pair field
	for i := uint8(0); i < 4; i++ {
		rp := i

		// LD rp,d16
		opcodes[0x01|rp<<4] = func(mc *CPU) bool {
			mc.setRP(rp, mc.read16PC())
			return false
		}

		// INC rp
		opcodes[0x03|rp<<4] = func(mc *CPU) bool {
			mc.setRP(rp, mc.getRP(rp)+1)
			return false
		}

		// ADD HL,rp
		opcodes[0x09|rp<<4] = func(mc *CPU) bool {
			mc.addHL(mc.getRP(rp))
			return false
		}

		// DEC rp
		opcodes[0x0b|rp<<4] = func(mc *CPU) bool {
			mc.setRP(rp, mc.getRP(rp)-1)
			return false
		}

		// POP rp. index 3 is AF rather than SP
		opcodes[0xc1|rp<<4] = func(mc *CPU) bool {
			v := mc.pop16()
			if rp == 3 {
				mc.setAF(v)
			} else {
				mc.setRP(rp, v)
			}
			return false
		}

		// PUSH rp. index 3 is AF rather than SP
		opcodes[0xc5|rp<<4] = func(mc *CPU) bool {
			if rp == 3 {
				mc.push16(mc.AF())
			} else {
				mc.push16(mc.getRP(rp))
			}
			return false
		}
	}

	// conditional instructions with a two bit condition field
	for i := uint8(0); i < 4; i++ {
		cc := i

		// JR cc,e
		opcodes[0x20|cc<<3] = func(mc *CPU) bool {
			e := mc.read8PC()
			if !mc.condition(cc) {
				return false
			}
			mc.PC.Add(uint16(int8(e)))
			return true
		}

		// RET cc
		opcodes[0xc0|cc<<3] = func(mc *CPU) bool {
			if !mc.condition(cc) {
				return false
			}
			mc.PC.Load(mc.pop16())
			return true
		}

		// JP cc,a16
		opcodes[0xc2|cc<<3] = func(mc *CPU) bool {
			a := mc.read16PC()
			if !mc.condition(cc) {
				return false
			}
			mc.PC.Load(a)
			return true
		}

		// CALL cc,a16
		opcodes[0xc4|cc<<3] = func(mc *CPU) bool {
			a := mc.read16PC()
			if !mc.condition(cc) {
				return false
			}
			mc.push16(mc.PC.Address())
			mc.PC.Load(a)
			return true
		}
	}

	// NOP
	opcodes[0x00] = func(mc *CPU) bool {
		return false
	}

	// indirect loads through BC and DE
	opcodes[0x02] = func(mc *CPU) bool {
		mc.mem.WriteByte(mc.BC.Value(), mc.A.Value())
		return false
	}
	opcodes[0x12] = func(mc *CPU) bool {
		mc.mem.WriteByte(mc.DE.Value(), mc.A.Value())
		return false
	}
	opcodes[0x0a] = func(mc *CPU) bool {
		mc.A.Load(mc.mem.ReadByte(mc.BC.Value()))
		return false
	}
	opcodes[0x1a] = func(mc *CPU) bool {
		mc.A.Load(mc.mem.ReadByte(mc.DE.Value()))
		return false
	}

	// indirect loads through HL with post increment/decrement
	opcodes[0x22] = func(mc *CPU) bool {
		hl := mc.HL.Value()
		mc.mem.WriteByte(hl, mc.A.Value())
		mc.HL.Load(hl + 1)
		return false
	}
	opcodes[0x32] = func(mc *CPU) bool {
		hl := mc.HL.Value()
		mc.mem.WriteByte(hl, mc.A.Value())
		mc.HL.Load(hl - 1)
		return false
	}
	opcodes[0x2a] = func(mc *CPU) bool {
		hl := mc.HL.Value()
		mc.A.Load(mc.mem.ReadByte(hl))
		mc.HL.Load(hl + 1)
		return false
	}
	opcodes[0x3a] = func(mc *CPU) bool {
		hl := mc.HL.Value()
		mc.A.Load(mc.mem.ReadByte(hl))
		mc.HL.Load(hl - 1)
		return false
	}

	// rotates of the A register
	opcodes[0x07] = func(mc *CPU) bool {
		mc.rotateA(0)
		return false
	}
	opcodes[0x0f] = func(mc *CPU) bool {
		mc.rotateA(1)
		return false
	}
	opcodes[0x17] = func(mc *CPU) bool {
		mc.rotateA(2)
		return false
	}
	opcodes[0x1f] = func(mc *CPU) bool {
		mc.rotateA(3)
		return false
	}

	// LD (a16),SP
	opcodes[0x08] = func(mc *CPU) bool {
		mc.mem.WriteHalfword(mc.read16PC(), mc.SP.Address())
		return false
	}

	// STOP. the second byte of the instruction is ignored
	opcodes[0x10] = func(mc *CPU) bool {
		_ = mc.read8PC()
		mc.Stopped = true
		return false
	}

	// JR e
	opcodes[0x18] = func(mc *CPU) bool {
		e := mc.read8PC()
		mc.PC.Add(uint16(int8(e)))
		return false
	}

	// DAA
	opcodes[0x27] = func(mc *CPU) bool {
		mc.daa()
		return false
	}

	// CPL
	opcodes[0x2f] = func(mc *CPU) bool {
		mc.A.Load(^mc.A.Value())
		mc.F.Subtract = true
		mc.F.HalfCarry = true
		return false
	}

	// SCF
	opcodes[0x37] = func(mc *CPU) bool {
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true
		return false
	}

	// CCF
	opcodes[0x3f] = func(mc *CPU) bool {
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry
		return false
	}

	// HALT
	opcodes[0x76] = func(mc *CPU) bool {
		pending := mc.mem.ReadByte(cpubus.IF) & mc.mem.ReadByte(cpubus.IE) & interrupt.Mask
		if !mc.IME && pending != 0 {
			mc.haltBug = true
		} else {
			mc.Halted = true
		}
		return false
	}

	// JP a16
	opcodes[0xc3] = func(mc *CPU) bool {
		mc.PC.Load(mc.read16PC())
		return false
	}

	// RET
	opcodes[0xc9] = func(mc *CPU) bool {
		mc.PC.Load(mc.pop16())
		return false
	}

	// CALL a16
	opcodes[0xcd] = func(mc *CPU) bool {
		a := mc.read16PC()
		mc.push16(mc.PC.Address())
		mc.PC.Load(a)
		return false
	}

	// RETI. interrupts are enabled immediately
	opcodes[0xd9] = func(mc *CPU) bool {
		mc.PC.Load(mc.pop16())
		mc.IME = true
		mc.imeDelay = 0
		return false
	}

	// LDH (a8),A
	opcodes[0xe0] = func(mc *CPU) bool {
		a := highPage | uint16(mc.read8PC())
		mc.mem.WriteByte(a, mc.A.Value())
		return false
	}

	// LDH A,(a8)
	opcodes[0xf0] = func(mc *CPU) bool {
		a := highPage | uint16(mc.read8PC())
		mc.A.Load(mc.mem.ReadByte(a))
		return false
	}

	// LD (C),A
	opcodes[0xe2] = func(mc *CPU) bool {
		mc.mem.WriteByte(highPage|uint16(mc.C.Value()), mc.A.Value())
		return false
	}

	// LD A,(C)
	opcodes[0xf2] = func(mc *CPU) bool {
		mc.A.Load(mc.mem.ReadByte(highPage | uint16(mc.C.Value())))
		return false
	}

	// ADD SP,e
	opcodes[0xe8] = func(mc *CPU) bool {
		mc.SP.Load(mc.addSP(mc.read8PC()))
		return false
	}

	// LD HL,SP+e
	opcodes[0xf8] = func(mc *CPU) bool {
		mc.HL.Load(mc.addSP(mc.read8PC()))
		return false
	}

	// JP (HL)
	opcodes[0xe9] = func(mc *CPU) bool {
		mc.PC.Load(mc.HL.Value())
		return false
	}

	// LD SP,HL
	opcodes[0xf9] = func(mc *CPU) bool {
		mc.SP.Load(mc.HL.Value())
		return false
	}

	// LD (a16),A
	opcodes[0xea] = func(mc *CPU) bool {
		mc.mem.WriteByte(mc.read16PC(), mc.A.Value())
		return false
	}

	// LD A,(a16)
	opcodes[0xfa] = func(mc *CPU) bool {
		mc.A.Load(mc.mem.ReadByte(mc.read16PC()))
		return false
	}

	// DI takes effect at the end of the instruction
	opcodes[0xf3] = func(mc *CPU) bool {
		mc.imeDelay = 1
		mc.imeNext = false
		return false
	}

	// EI takes effect at the end of the following instruction
	opcodes[0xfb] = func(mc *CPU) bool {
		mc.imeDelay = 2
		mc.imeNext = true
		return false
	}
}
