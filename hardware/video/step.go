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

package video

import (
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
)

// Step is an implementation of chipbus.Peripheral.
func (vid *Video) Step(cycles uint16, dev device.Device, irq *interrupt.Accumulator) {
	if !vid.Enabled() {
		return
	}

	for i := uint16(0); i < cycles; i++ {
		vid.tick(dev, irq)
	}
}

func (vid *Video) tick(dev device.Device, irq *interrupt.Accumulator) {
	vid.dot++

	if vid.dot == CyclesPerLine {
		vid.dot = 0
		vid.ly++

		switch {
		case vid.ly == LinesPerFrame:
			vid.ly = 0
			vid.windowLine = 0
			vid.mode = OAMSearch
		case vid.ly == Height:
			vid.mode = VBlank
			irq.Raise(interrupt.VBlank)
			vid.Frames++
			if dev != nil {
				dev.SetFrameBuffer(vid.frame)
				dev.Update()
			}
		case vid.ly < Height:
			vid.mode = OAMSearch
		}
	} else if vid.ly < Height {
		switch vid.dot {
		case oamSearchCycles:
			vid.mode = Transfer
		case oamSearchCycles + transferCycles:
			vid.mode = HBlank
			vid.renderLine()
		}
	}

	vid.updateStatLine(irq)
}

// the STAT interrupt is requested when any of the enabled conditions become
// true while none of them were true.
func (vid *Video) updateStatLine(irq *interrupt.Accumulator) {
	line := false

	if vid.stat&statLYCInt == statLYCInt && vid.ly == vid.lyc {
		line = true
	}

	switch vid.mode {
	case HBlank:
		line = line || vid.stat&statHBlankInt == statHBlankInt
	case VBlank:
		line = line || vid.stat&statVBlankInt == statVBlankInt
	case OAMSearch:
		line = line || vid.stat&statOAMInt == statOAMInt
	}

	if line && !vid.statLine {
		irq.Raise(interrupt.LCDStat)
	}
	vid.statLine = line
}
