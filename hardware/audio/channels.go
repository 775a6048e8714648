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

// duty cycle patterns of the square channels, one bit for each of the eight
// steps.
var dutyPatterns = [4]uint8{0x01, 0x81, 0x87, 0x7e}

// square is a square wave channel. channel one also has a frequency sweep.
type square struct {
	enabled bool
	dacOn   bool

	duty    uint8
	dutyPos uint8

	length       int
	lengthEnable bool

	volume      uint8
	envInitial  uint8
	envIncrease bool
	envPeriod   uint8
	envTimer    uint8

	freq  uint16
	timer int

	hasSweep     bool
	sweepPeriod  uint8
	sweepNegate  bool
	sweepShift   uint8
	sweepTimer   uint8
	sweepEnabled bool
	shadow       uint16
}

func (ch *square) writeSweep(data uint8) {
	ch.sweepPeriod = (data >> 4) & 0x07
	ch.sweepNegate = data&0x08 == 0x08
	ch.sweepShift = data & 0x07
}

func (ch *square) writeDuty(data uint8) {
	ch.duty = data >> 6
	ch.length = 64 - int(data&0x3f)
}

func (ch *square) writeEnvelope(data uint8) {
	ch.envInitial = data >> 4
	ch.envIncrease = data&0x08 == 0x08
	ch.envPeriod = data & 0x07
	ch.dacOn = data&0xf8 != 0
	if !ch.dacOn {
		ch.enabled = false
	}
}

func (ch *square) writeFreqLow(data uint8) {
	ch.freq = ch.freq&0x0700 | uint16(data)
}

func (ch *square) writeControl(data uint8) {
	ch.freq = ch.freq&0x00ff | uint16(data&0x07)<<8
	ch.lengthEnable = data&0x40 == 0x40
	if data&0x80 == 0x80 {
		ch.trigger()
	}
}

func (ch *square) period() int {
	return (2048 - int(ch.freq)) * 4
}

func (ch *square) trigger() {
	ch.enabled = ch.dacOn
	if ch.length == 0 {
		ch.length = 64
	}
	ch.timer = ch.period()
	ch.volume = ch.envInitial
	ch.envTimer = ch.envPeriod

	if ch.hasSweep {
		ch.shadow = ch.freq
		ch.sweepTimer = ch.sweepPeriod
		if ch.sweepTimer == 0 {
			ch.sweepTimer = 8
		}
		ch.sweepEnabled = ch.sweepPeriod != 0 || ch.sweepShift != 0
		if ch.sweepShift != 0 {
			ch.sweepFreq()
		}
	}
}

// sweepFreq calculates the next frequency of the sweep. the channel is
// disabled if the frequency overflows.
func (ch *square) sweepFreq() uint16 {
	d := ch.shadow >> ch.sweepShift
	var f uint16
	if ch.sweepNegate {
		f = ch.shadow - d
	} else {
		f = ch.shadow + d
	}
	if f > 2047 {
		ch.enabled = false
	}
	return f
}

func (ch *square) tick() {
	ch.timer--
	if ch.timer <= 0 {
		ch.timer = ch.period()
		ch.dutyPos = (ch.dutyPos + 1) & 0x07
	}
}

func (ch *square) clockLength() {
	if ch.lengthEnable && ch.length > 0 {
		ch.length--
		if ch.length == 0 {
			ch.enabled = false
		}
	}
}

func (ch *square) clockEnvelope() {
	if ch.envPeriod == 0 {
		return
	}
	if ch.envTimer > 0 {
		ch.envTimer--
	}
	if ch.envTimer > 0 {
		return
	}
	ch.envTimer = ch.envPeriod
	if ch.envIncrease && ch.volume < 15 {
		ch.volume++
	} else if !ch.envIncrease && ch.volume > 0 {
		ch.volume--
	}
}

func (ch *square) clockSweep() {
	if !ch.hasSweep {
		return
	}
	if ch.sweepTimer > 0 {
		ch.sweepTimer--
	}
	if ch.sweepTimer > 0 {
		return
	}

	ch.sweepTimer = ch.sweepPeriod
	if ch.sweepTimer == 0 {
		ch.sweepTimer = 8
	}

	if !ch.sweepEnabled || ch.sweepPeriod == 0 {
		return
	}

	f := ch.sweepFreq()
	if f <= 2047 && ch.sweepShift != 0 {
		ch.shadow = f
		ch.freq = f
		ch.sweepFreq()
	}
}

// output returns the amplitude of the channel, between 0 and 15.
func (ch *square) output() uint8 {
	if !ch.enabled {
		return 0
	}
	if dutyPatterns[ch.duty]>>(7-ch.dutyPos)&0x01 == 0x01 {
		return ch.volume
	}
	return 0
}

// wave is the channel that plays the 32 samples in wave RAM.
type wave struct {
	enabled bool
	dacOn   bool

	length       int
	lengthEnable bool

	// zero is silent. otherwise the sample is shifted right by level-1
	level uint8

	freq  uint16
	timer int
	pos   uint8

	ram *[16]uint8
}

func (ch *wave) writeDAC(data uint8) {
	ch.dacOn = data&0x80 == 0x80
	if !ch.dacOn {
		ch.enabled = false
	}
}

func (ch *wave) writeLength(data uint8) {
	ch.length = 256 - int(data)
}

func (ch *wave) writeLevel(data uint8) {
	ch.level = (data >> 5) & 0x03
}

func (ch *wave) writeFreqLow(data uint8) {
	ch.freq = ch.freq&0x0700 | uint16(data)
}

func (ch *wave) writeControl(data uint8) {
	ch.freq = ch.freq&0x00ff | uint16(data&0x07)<<8
	ch.lengthEnable = data&0x40 == 0x40
	if data&0x80 == 0x80 {
		ch.trigger()
	}
}

func (ch *wave) period() int {
	return (2048 - int(ch.freq)) * 2
}

func (ch *wave) trigger() {
	ch.enabled = ch.dacOn
	if ch.length == 0 {
		ch.length = 256
	}
	ch.timer = ch.period()
	ch.pos = 0
}

func (ch *wave) tick() {
	ch.timer--
	if ch.timer <= 0 {
		ch.timer = ch.period()
		ch.pos = (ch.pos + 1) & 0x1f
	}
}

func (ch *wave) clockLength() {
	if ch.lengthEnable && ch.length > 0 {
		ch.length--
		if ch.length == 0 {
			ch.enabled = false
		}
	}
}

func (ch *wave) output() uint8 {
	if !ch.enabled || ch.level == 0 {
		return 0
	}
	s := ch.ram[ch.pos/2]
	if ch.pos&0x01 == 0 {
		s >>= 4
	}
	return (s & 0x0f) >> (ch.level - 1)
}
