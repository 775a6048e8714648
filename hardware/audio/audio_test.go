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

package audio_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/audio"
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/test"
)

type mixer struct {
	device.Headless
	samples []int16
	blocks  int
}

func (m *mixer) SetAudio(samples []int16) error {
	m.samples = append(m.samples, samples...)
	m.blocks++
	return nil
}

func (m *mixer) EndMixing() error {
	return nil
}

func step(au *audio.Audio, dev device.Device, cycles int) {
	var irq interrupt.Accumulator
	for ; cycles > 0; cycles -= 4 {
		au.Step(4, dev, &irq)
	}
}

func TestReadMasks(t *testing.T) {
	au := audio.NewAudio()
	test.ExpectEquality(t, au.ReadReg(cpubus.NR10), uint8(0x80))
	test.ExpectEquality(t, au.ReadReg(cpubus.NR11), uint8(0x3f))
	test.ExpectEquality(t, au.ReadReg(cpubus.NR13), uint8(0xff))
	test.ExpectEquality(t, au.ReadReg(cpubus.NR30), uint8(0x7f))
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf0))
	test.ExpectEquality(t, au.ReadReg(0xff15), uint8(0xff))
	test.ExpectEquality(t, au.ReadReg(0xff27), uint8(0xff))

	au.WriteReg(cpubus.NR11, 0x80)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR11), uint8(0xbf))
	au.WriteReg(cpubus.NR12, 0x73)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR12), uint8(0x73))
	au.WriteReg(cpubus.NR32, 0x40)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR32), uint8(0xdf))
}

func TestWaveRAM(t *testing.T) {
	au := audio.NewAudio()
	for a := uint16(0xff30); a <= 0xff3f; a++ {
		au.WriteReg(a, uint8(a))
	}
	test.ExpectEquality(t, au.ReadReg(0xff30), uint8(0x30))
	test.ExpectEquality(t, au.ReadReg(0xff3f), uint8(0x3f))
}

func TestPower(t *testing.T) {
	au := audio.NewAudio()
	au.WriteReg(cpubus.NR12, 0xf0)
	au.WriteReg(cpubus.NR14, 0x80)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf1))

	au.WriteReg(cpubus.NR52, 0x00)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0x70))
	test.ExpectEquality(t, au.ReadReg(cpubus.NR12), uint8(0x00))

	// registers are not writable when powered off but wave RAM is
	au.WriteReg(cpubus.NR12, 0xf0)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR12), uint8(0x00))
	au.WriteReg(0xff30, 0x12)
	test.ExpectEquality(t, au.ReadReg(0xff30), uint8(0x12))

	au.WriteReg(cpubus.NR52, 0x80)
	au.WriteReg(cpubus.NR12, 0xf0)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR12), uint8(0xf0))
}

func TestChannelStatus(t *testing.T) {
	au := audio.NewAudio()

	// no DAC, no channel
	au.WriteReg(cpubus.NR24, 0x80)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf0))

	au.WriteReg(cpubus.NR22, 0xf0)
	au.WriteReg(cpubus.NR24, 0x80)
	au.WriteReg(cpubus.NR30, 0x80)
	au.WriteReg(cpubus.NR34, 0x80)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf6))

	// switching off the DAC disables the channel
	au.WriteReg(cpubus.NR30, 0x00)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf2))
}

func TestLength(t *testing.T) {
	au := audio.NewAudio()
	au.WriteReg(cpubus.NR12, 0xf0)
	au.WriteReg(cpubus.NR11, 0x3e)
	au.WriteReg(cpubus.NR14, 0xc0)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf1))

	// length of two expires on the second length clock
	step(au, nil, audio.ClockFreq/512)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf1))
	step(au, nil, audio.ClockFreq/512*2)
	test.ExpectEquality(t, au.ReadReg(cpubus.NR52), uint8(0xf0))
}

func TestSamples(t *testing.T) {
	au := audio.NewAudio()
	m := &mixer{}

	au.WriteReg(cpubus.NR50, 0x77)
	au.WriteReg(cpubus.NR51, 0xff)
	au.WriteReg(cpubus.NR21, 0x80)
	au.WriteReg(cpubus.NR22, 0xf0)
	au.WriteReg(cpubus.NR23, 0x00)
	au.WriteReg(cpubus.NR24, 0x87)

	const cycles = 419432
	step(au, m, cycles)
	test.ExpectEquality(t, m.blocks, 4)

	test.DemandSuccess(t, au.Flush(m))
	test.ExpectEquality(t, len(m.samples), cycles*audio.SampleFreq/audio.ClockFreq)

	var high, low bool
	for _, s := range m.samples {
		high = high || s > 0
		low = low || s < 0
	}
	test.ExpectSuccess(t, high)
	test.ExpectSuccess(t, low)
}

func TestNoMixer(t *testing.T) {
	au := audio.NewAudio()
	m := &mixer{}
	step(au, nil, 100000)
	test.DemandSuccess(t, au.Flush(m))
	test.ExpectEquality(t, len(m.samples), 0)
}
