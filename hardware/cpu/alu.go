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

// the eight arithmetic and logic operations in the order of the three bit
// operation field of an opcode.
const (
	aluADD = iota
	aluADC
	aluSUB
	aluSBC
	aluAND
	aluXOR
	aluOR
	aluCP
)

// alu performs the operation on the A register and the value.
func (mc *CPU) alu(op uint8, v uint8) {
	switch op {
	case aluADD:
		mc.A.Load(mc.add8(mc.A.Value(), v, false))
	case aluADC:
		mc.A.Load(mc.add8(mc.A.Value(), v, mc.F.Carry))
	case aluSUB:
		mc.A.Load(mc.sub8(mc.A.Value(), v, false))
	case aluSBC:
		mc.A.Load(mc.sub8(mc.A.Value(), v, mc.F.Carry))
	case aluAND:
		mc.A.Load(mc.A.Value() & v)
		mc.F.Zero = mc.A.IsZero()
		mc.F.Subtract = false
		mc.F.HalfCarry = true
		mc.F.Carry = false
	case aluXOR:
		mc.A.Load(mc.A.Value() ^ v)
		mc.logicFlags()
	case aluOR:
		mc.A.Load(mc.A.Value() | v)
		mc.logicFlags()
	case aluCP:
		_ = mc.sub8(mc.A.Value(), v, false)
	}
}

func (mc *CPU) logicFlags() {
	mc.F.Zero = mc.A.IsZero()
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = false
}

// add8 returns a + b + carry and sets the flags.
func (mc *CPU) add8(a uint8, b uint8, carry bool) uint8 {
	var c uint8
	if carry {
		c = 1
	}

	r := uint16(a) + uint16(b) + uint16(c)

	mc.F.Zero = uint8(r) == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = a&0x0f+b&0x0f+c > 0x0f
	mc.F.Carry = r > 0xff

	return uint8(r)
}

// sub8 returns a - b - carry and sets the flags.
func (mc *CPU) sub8(a uint8, b uint8, carry bool) uint8 {
	var c uint8
	if carry {
		c = 1
	}

	r := int(a) - int(b) - int(c)

	mc.F.Zero = uint8(r) == 0
	mc.F.Subtract = true
	mc.F.HalfCarry = b&0x0f+c > a&0x0f
	mc.F.Carry = r < 0

	return uint8(r)
}

// inc8 returns v + 1. the carry flag is not affected.
func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = r&0x0f == 0x00
	return r
}

// dec8 returns v - 1. the carry flag is not affected.
func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	mc.F.Zero = r == 0
	mc.F.Subtract = true
	mc.F.HalfCarry = r&0x0f == 0x0f
	return r
}

// addHL adds v to HL. the zero flag is not affected.
func (mc *CPU) addHL(v uint16) {
	hl := mc.HL.Value()
	r := uint32(hl) + uint32(v)

	mc.F.Subtract = false
	mc.F.HalfCarry = hl&0x0fff+v&0x0fff > 0x0fff
	mc.F.Carry = r > 0xffff

	mc.HL.Load(uint16(r))
}

// addSP returns SP plus the signed offset. the half-carry and carry flags are
// taken from the unsigned addition of the low byte of SP and the offset.
func (mc *CPU) addSP(e uint8) uint16 {
	sp := mc.SP.Address()

	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = sp&0x000f+uint16(e&0x0f) > 0x000f
	mc.F.Carry = sp&0x00ff+uint16(e) > 0x00ff

	return sp + uint16(int8(e))
}

// daa adjusts the A register for BCD arithmetic.
func (mc *CPU) daa() {
	a := mc.A.Value()

	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			mc.F.Carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.F.Carry {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}

	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
}

// shift performs one of the eight rotate/shift operations of the CB opcode
// space. in order: RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL.
func (mc *CPU) shift(op uint8, v uint8) uint8 {
	var r uint8
	var carry bool

	switch op {
	case 0: // RLC
		r = v<<1 | v>>7
		carry = v&0x80 == 0x80
	case 1: // RRC
		r = v>>1 | v<<7
		carry = v&0x01 == 0x01
	case 2: // RL
		r = v << 1
		if mc.F.Carry {
			r |= 0x01
		}
		carry = v&0x80 == 0x80
	case 3: // RR
		r = v >> 1
		if mc.F.Carry {
			r |= 0x80
		}
		carry = v&0x01 == 0x01
	case 4: // SLA
		r = v << 1
		carry = v&0x80 == 0x80
	case 5: // SRA
		r = v>>1 | v&0x80
		carry = v&0x01 == 0x01
	case 6: // SWAP
		r = v<<4 | v>>4
	case 7: // SRL
		r = v >> 1
		carry = v&0x01 == 0x01
	}

	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = carry

	return r
}

// rotateA performs RLCA, RRCA, RLA or RRA. same as the CB equivalents except
// that the zero flag is always cleared.
func (mc *CPU) rotateA(op uint8) {
	mc.A.Load(mc.shift(op, mc.A.Value()))
	mc.F.Zero = false
}

// bit tests bit n of v. the carry flag is not affected.
func (mc *CPU) bit(n uint8, v uint8) {
	mc.F.Zero = v&(0x01<<n) == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = true
}
