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

// executeCB executes an opcode from the CB-prefixed opcode space. every
// opcode in the space is defined.
func (mc *CPU) executeCB(op uint8) {
	r := op & 0x07
	n := (op >> 3) & 0x07

	switch op >> 6 {
	case 0:
		mc.setR(r, mc.shift(n, mc.getR(r)))
	case 1:
		mc.bit(n, mc.getR(r))
	case 2:
		mc.setR(r, mc.getR(r)&^(0x01<<n))
	case 3:
		mc.setR(r, mc.getR(r)|0x01<<n)
	}
}
