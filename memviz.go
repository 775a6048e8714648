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

package main

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware"
)

// the parts of the machine included in the memviz graph. values are copied
// from the machine because following the CPU's reference to memory would
// include every RAM array in the graph.
type machineState struct {
	CPU        *cpuState
	Interrupts *interruptState
	DMA        string
	LastResult string
	Cycles     uint64
}

type cpuState struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	IME                    bool
	Halted                 bool
	Stopped                bool
}

type interruptState struct {
	IF, IE uint8
}

// writeMemviz writes the state of the Game Boy to a graphviz dot file.
func writeMemviz(filename string, gb *hardware.GameBoy) (rerr error) {
	irq := gb.Mem.Interrupts()

	state := &machineState{
		CPU: &cpuState{
			A: gb.CPU.A.Value(), F: gb.CPU.F.Value(),
			B: gb.CPU.B.Value(), C: gb.CPU.C.Value(),
			D: gb.CPU.D.Value(), E: gb.CPU.E.Value(),
			H: gb.CPU.H.Value(), L: gb.CPU.L.Value(),
			SP:      gb.CPU.SP.Address(),
			PC:      gb.CPU.PC.Address(),
			IME:     gb.CPU.IME,
			Halted:  gb.CPU.Halted,
			Stopped: gb.CPU.Stopped,
		},
		Interrupts: &interruptState{
			IF: irq.ReadFlag(),
			IE: irq.ReadEnable(),
		},
		DMA:        gb.Mem.DMAStatus().String(),
		LastResult: gb.CPU.LastResult.String(),
		Cycles:     gb.Cycles(),
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	memviz.Map(f, state)

	return nil
}
