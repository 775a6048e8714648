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

package cpu_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/cpu"
	"github.com/scimitar-emu/scimitar/hardware/cpu/execution"
	"github.com/scimitar-emu/scimitar/hardware/model"
	"github.com/scimitar-emu/scimitar/test"
)

// mockMem is a flat 64k memory with no memory mapped registers. the IF and IE
// registers are plain bytes.
type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) ReadByte(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) WriteByte(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) ReadHalfword(address uint16) uint16 {
	return uint16(mem.ReadByte(address)) | uint16(mem.ReadByte(address+1))<<8
}

func (mem *mockMem) WriteHalfword(address uint16, data uint16) {
	mem.WriteByte(address, uint8(data))
	mem.WriteByte(address+1, uint8(data>>8))
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.WriteByte(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.ReadByte(address)
	if d != value {
		t.Errorf("memory assertion failed (%02x  - wanted %02x at address %04x)", d, value, address)
	}
}

// newCPU returns a CPU in the DMG post-boot state: PC=0x0100, SP=0xfffe,
// flags ZnHC
func newCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset(model.DMG, false)
	return mc, mem
}

// step the CPU and check the result for consistency.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	_, err := mc.Step()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}
