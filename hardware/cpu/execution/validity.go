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
	"github.com/scimitar-emu/scimitar/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Halted || r.Interrupt != 0 {
		return nil
	}

	if !r.Defn.Defined {
		return curated.Errorf("cpu: execution result has no defined instruction")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.BranchTaken {
		if !r.Defn.IsConditional() {
			return curated.Errorf("cpu: branch taken for unconditional opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
		}
		if r.Cycles != r.Defn.Cycles+r.Defn.ExtraCycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Mnemonic,
				r.Cycles,
				r.Defn.Cycles+r.Defn.ExtraCycles)
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
