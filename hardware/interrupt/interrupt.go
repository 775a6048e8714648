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

package interrupt

// Kind of interrupt. The value is the bit number in the IF and IE registers
// and is also the priority of the interrupt, lower values first.
type Kind uint8

// List of interrupt kinds.
const (
	VBlank Kind = iota
	LCDStat
	Timer
	Serial
	Joypad
)

// NumKinds is the number of interrupt kinds.
const NumKinds = 5

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Mask returns the bit representing the interrupt in the IF and IE registers.
func (k Kind) Mask() uint8 {
	return 0x01 << k
}

// Vector returns the address the CPU jumps to when servicing the interrupt.
func (k Kind) Vector() uint16 {
	return 0x0040 + uint16(k)*8
}

// Mask of the bits in the IF and IE registers that are meaningful.
const Mask = uint8(0x1f)

// unused bits of the IF and IE registers. these always read as set.
const unusedBits = ^Mask

// Accumulator collects interrupt requests raised by peripherals during a
// single step of the emulation.
type Accumulator struct {
	requests uint8
}

// Raise a request for the interrupt kind.
func (acc *Accumulator) Raise(k Kind) {
	acc.requests |= k.Mask()
}

// Value returns the requested interrupts as a bit mask.
func (acc Accumulator) Value() uint8 {
	return acc.requests
}

// Highest returns the interrupt kind with the highest priority in the value,
// which should be a bit mask of interrupt kinds. Returns false if no
// interrupts are in the value.
func Highest(v uint8) (Kind, bool) {
	for k := VBlank; k < NumKinds; k++ {
		if v&k.Mask() != 0 {
			return k, true
		}
	}
	return 0, false
}

// Registers are the interrupt flag (IF) and interrupt enable (IE) registers.
type Registers struct {
	flag   uint8
	enable uint8
}

// ReadFlag returns the value of the IF register as seen by the CPU.
func (r Registers) ReadFlag() uint8 {
	return r.flag | unusedBits
}

// WriteFlag sets the value of the IF register.
func (r *Registers) WriteFlag(v uint8) {
	r.flag = v & Mask
}

// ReadEnable returns the value of the IE register as seen by the CPU.
func (r Registers) ReadEnable() uint8 {
	return r.enable | unusedBits
}

// WriteEnable sets the value of the IE register.
func (r *Registers) WriteEnable(v uint8) {
	r.enable = v & Mask
}

// Merge the requests in the accumulator with the IF register.
func (r *Registers) Merge(acc Accumulator) {
	r.flag |= acc.requests & Mask
}

// Pending returns the interrupts that are both requested and enabled.
func (r Registers) Pending() uint8 {
	return r.flag & r.enable & Mask
}

// Reset the IF and IE registers.
func (r *Registers) Reset() {
	r.flag = 0
	r.enable = 0
}
