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
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/logger"
)

// the frame sequencer is clocked at 512Hz.
const frameSequencerCycles = ClockFreq / 512

// Step is an implementation of chipbus.Peripheral. The audio never raises an
// interrupt.
func (au *Audio) Step(cycles uint16, dev device.Device, _ *interrupt.Accumulator) {
	mixer, _ := dev.(device.AudioMixer)

	for i := uint16(0); i < cycles; i++ {
		if au.power {
			au.tick()
		}

		if mixer == nil {
			continue
		}

		au.sampleAcc += SampleFreq
		if au.sampleAcc >= ClockFreq {
			au.sampleAcc -= ClockFreq
			au.buffer = append(au.buffer, au.sample())
			if len(au.buffer) == blockSize {
				if err := au.Flush(mixer); err != nil {
					logger.Log(logger.Allow, "audio", err)
				}
			}
		}
	}
}

func (au *Audio) tick() {
	au.ch1.tick()
	au.ch2.tick()
	au.ch3.tick()

	au.seqCycles--
	if au.seqCycles > 0 {
		return
	}
	au.seqCycles = frameSequencerCycles

	switch au.seqStep {
	case 0, 4:
		au.clockLength()
	case 2, 6:
		au.clockLength()
		au.ch1.clockSweep()
	case 7:
		au.ch1.clockEnvelope()
		au.ch2.clockEnvelope()
	}
	au.seqStep = (au.seqStep + 1) & 0x07
}

func (au *Audio) clockLength() {
	au.ch1.clockLength()
	au.ch2.clockLength()
	au.ch3.clockLength()
}

// sample mixes the channels into a single signed sample. channels that are
// not sent to either output terminal by NR51 are not heard.
func (au *Audio) sample() int16 {
	if !au.power {
		return 0
	}

	nr50 := au.regs[cpubus.NR50-cpubus.NR10]
	nr51 := au.regs[cpubus.NR51-cpubus.NR10]
	route := nr51 | nr51>>4

	var sum int32
	if route&0x01 == 0x01 && au.ch1.dacOn {
		sum += int32(au.ch1.output())*2 - 15
	}
	if route&0x02 == 0x02 && au.ch2.dacOn {
		sum += int32(au.ch2.output())*2 - 15
	}
	if route&0x04 == 0x04 && au.ch3.dacOn {
		sum += int32(au.ch3.output())*2 - 15
	}

	vol := int32(max(nr50>>4&0x07, nr50&0x07)) + 1

	return int16(sum * vol * 32767 / (45 * 8))
}

// Flush sends any buffered samples to the audio mixer.
func (au *Audio) Flush(mixer device.AudioMixer) error {
	if len(au.buffer) == 0 {
		return nil
	}
	err := mixer.SetAudio(au.buffer)
	au.buffer = au.buffer[:0]
	return err
}
