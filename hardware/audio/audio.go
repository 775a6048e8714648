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

package audio

import (
	"fmt"

	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/hardware/memory/memorymap"
)

// SampleFreq is the frequency of the samples sent to the audio mixer.
const SampleFreq = 44100

// ClockFreq is the frequency at which the audio is stepped.
const ClockFreq = 4194304

// number of samples in each block sent to the audio mixer.
const blockSize = 1024

// bits that read as set for each register from NR10 to NR52. registers that
// do not exist read as 0xff.
var readMask = [cpubus.NR52 - cpubus.NR10 + 1]uint8{
	0x80, 0x3f, 0x00, 0xff, 0xbf,
	0xff, 0x3f, 0x00, 0xff, 0xbf,
	0x7f, 0xff, 0x9f, 0xff, 0xbf,
	0xff, 0xff, 0x00, 0x00, 0xbf,
	0x00, 0x00, 0x70,
}

// bit in NR52 that switches the sound circuits on.
const powerBit = uint8(0x80)

// Audio implements the chipbus.Peripheral interface.
type Audio struct {
	// value most recently written to each register
	regs [cpubus.NR52 - cpubus.NR10 + 1]uint8

	waveRAM [memorymap.MemtopWaveRAM - memorymap.OriginWaveRAM + 1]uint8

	ch1 square
	ch2 square
	ch3 wave

	power bool

	// cycles until the next clock of the frame sequencer and the step of the
	// sequencer that is next
	seqCycles int
	seqStep   int

	// used to produce samples at the SampleFreq
	sampleAcc int

	buffer []int16
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	au := &Audio{
		buffer: make([]int16, 0, blockSize),
	}
	au.Reset()
	return au
}

// Reset the sound circuits. The circuits are powered on with every channel
// silent.
func (au *Audio) Reset() {
	clear(au.regs[:])
	clear(au.waveRAM[:])
	au.ch1 = square{hasSweep: true}
	au.ch2 = square{}
	au.ch3 = wave{ram: &au.waveRAM}
	au.power = true
	au.regs[cpubus.NR52-cpubus.NR10] = powerBit
	au.seqCycles = frameSequencerCycles
	au.seqStep = 0
	au.sampleAcc = 0
	au.buffer = au.buffer[:0]
}

func (au *Audio) String() string {
	return fmt.Sprintf("NR50=%02x NR51=%02x NR52=%02x", au.regs[cpubus.NR50-cpubus.NR10], au.regs[cpubus.NR51-cpubus.NR10], au.ReadReg(cpubus.NR52))
}

// status of the channels as reported by the lower bits of NR52.
func (au *Audio) status() uint8 {
	var s uint8
	if au.ch1.enabled {
		s |= 0x01
	}
	if au.ch2.enabled {
		s |= 0x02
	}
	if au.ch3.enabled {
		s |= 0x04
	}
	return s
}

// ReadReg is an implementation of chipbus.Peripheral.
func (au *Audio) ReadReg(address uint16) uint8 {
	switch {
	case address >= memorymap.OriginWaveRAM && address <= memorymap.MemtopWaveRAM:
		return au.waveRAM[address-memorymap.OriginWaveRAM]
	case address == cpubus.NR52:
		v := readMask[len(readMask)-1] | au.status()
		if au.power {
			v |= powerBit
		}
		return v
	case address >= cpubus.NR10 && address < cpubus.NR52:
		i := address - cpubus.NR10
		return au.regs[i] | readMask[i]
	}
	return 0xff
}

// WriteReg is an implementation of chipbus.Peripheral. While the sound
// circuits are powered off only NR52 and wave RAM can be written.
func (au *Audio) WriteReg(address uint16, data uint8) {
	switch {
	case address >= memorymap.OriginWaveRAM && address <= memorymap.MemtopWaveRAM:
		au.waveRAM[address-memorymap.OriginWaveRAM] = data
		return
	case address == cpubus.NR52:
		au.writePower(data&powerBit == powerBit)
		return
	case address < cpubus.NR10 || address > cpubus.NR52:
		return
	}

	if !au.power {
		return
	}

	au.regs[address-cpubus.NR10] = data

	switch address {
	case cpubus.NR10:
		au.ch1.writeSweep(data)
	case cpubus.NR11:
		au.ch1.writeDuty(data)
	case cpubus.NR12:
		au.ch1.writeEnvelope(data)
	case cpubus.NR13:
		au.ch1.writeFreqLow(data)
	case cpubus.NR14:
		au.ch1.writeControl(data)
	case cpubus.NR21:
		au.ch2.writeDuty(data)
	case cpubus.NR22:
		au.ch2.writeEnvelope(data)
	case cpubus.NR23:
		au.ch2.writeFreqLow(data)
	case cpubus.NR24:
		au.ch2.writeControl(data)
	case cpubus.NR30:
		au.ch3.writeDAC(data)
	case cpubus.NR31:
		au.ch3.writeLength(data)
	case cpubus.NR32:
		au.ch3.writeLevel(data)
	case cpubus.NR33:
		au.ch3.writeFreqLow(data)
	case cpubus.NR34:
		au.ch3.writeControl(data)
	}
}

func (au *Audio) writePower(on bool) {
	if au.power == on {
		return
	}
	au.power = on

	if !on {
		clear(au.regs[:])
		au.ch1 = square{hasSweep: true}
		au.ch2 = square{}
		au.ch3 = wave{ram: &au.waveRAM}
		return
	}

	au.regs[cpubus.NR52-cpubus.NR10] = powerBit
	au.seqCycles = frameSequencerCycles
	au.seqStep = 0
}
