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

package video_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/interrupt"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/hardware/video"
	"github.com/scimitar-emu/scimitar/test"
)

// capture keeps a copy of the most recent frame.
type capture struct {
	device.Headless
	frame []uint32
}

func (c *capture) SetFrameBuffer(pixels []uint32) {
	c.Headless.SetFrameBuffer(pixels)
	c.frame = append(c.frame[:0], pixels...)
}

func step(vid *video.Video, dev device.Device, cycles int) interrupt.Accumulator {
	var irq interrupt.Accumulator
	for cycles > 0 {
		c := min(cycles, 4)
		vid.Step(uint16(c), dev, &irq)
		cycles -= c
	}
	return irq
}

func TestRegisters(t *testing.T) {
	vid := video.NewVideo()
	test.ExpectEquality(t, vid.ReadReg(cpubus.LCDC), uint8(0x91))
	test.ExpectEquality(t, vid.ReadReg(cpubus.STAT), uint8(0x86))
	test.ExpectEquality(t, vid.Width(), 160)
	test.ExpectEquality(t, vid.Height(), 144)

	// LY is read only
	step(vid, nil, video.CyclesPerLine*3)
	vid.WriteReg(cpubus.LY, 0x40)
	test.ExpectEquality(t, vid.ReadReg(cpubus.LY), uint8(3))

	// lower bits of STAT are read only
	vid.WriteReg(cpubus.STAT, 0xff)
	test.ExpectEquality(t, vid.ReadReg(cpubus.STAT)&0xf8, uint8(0xf8))
	test.ExpectEquality(t, vid.ReadReg(cpubus.STAT)&0x03, uint8(video.OAMSearch))

	vid.WriteReg(cpubus.SCX, 0x12)
	vid.WriteReg(cpubus.WX, 0x34)
	test.ExpectEquality(t, vid.ReadReg(cpubus.SCX), uint8(0x12))
	test.ExpectEquality(t, vid.ReadReg(cpubus.WX), uint8(0x34))

	// switching off the LCD resets LY
	vid.WriteReg(cpubus.LCDC, 0x11)
	test.ExpectEquality(t, vid.ReadReg(cpubus.LY), uint8(0))
	test.ExpectEquality(t, vid.Mode(), video.HBlank)
	step(vid, nil, video.CyclesPerFrame)
	test.ExpectEquality(t, vid.ReadReg(cpubus.LY), uint8(0))
}

func TestMemory(t *testing.T) {
	vid := video.NewVideo()
	vid.WriteVRAM(0x1fff, 0x42)
	test.ExpectEquality(t, vid.ReadVRAM(0x1fff), uint8(0x42))
	vid.WriteOAM(0x9f, 0x43)
	test.ExpectEquality(t, vid.ReadOAM(0x9f), uint8(0x43))
	test.ExpectEquality(t, vid.ReadOAM(0xa0), uint8(0xff))
}

func TestModes(t *testing.T) {
	vid := video.NewVideo()
	test.ExpectEquality(t, vid.Mode(), video.OAMSearch)

	step(vid, nil, 80)
	test.ExpectEquality(t, vid.Mode(), video.Transfer)
	step(vid, nil, 172)
	test.ExpectEquality(t, vid.Mode(), video.HBlank)
	step(vid, nil, 204)
	test.ExpectEquality(t, vid.Mode(), video.OAMSearch)
	test.ExpectEquality(t, vid.ReadReg(cpubus.LY), uint8(1))
}

func TestFrame(t *testing.T) {
	vid := video.NewVideo()
	dev := &capture{}

	irq := step(vid, dev, video.CyclesPerLine*video.Height-4)
	test.ExpectEquality(t, irq.Value(), uint8(0))
	test.ExpectEquality(t, dev.Frames, 0)

	irq = step(vid, dev, 4)
	test.ExpectEquality(t, irq.Value(), interrupt.VBlank.Mask())
	test.ExpectEquality(t, vid.Mode(), video.VBlank)
	test.ExpectEquality(t, dev.Frames, 1)
	test.ExpectEquality(t, len(dev.frame), video.Width*video.Height)

	step(vid, dev, video.CyclesPerLine*(video.LinesPerFrame-video.Height))
	test.ExpectEquality(t, vid.ReadReg(cpubus.LY), uint8(0))
	test.ExpectEquality(t, vid.Mode(), video.OAMSearch)

	step(vid, dev, video.CyclesPerFrame)
	test.ExpectEquality(t, dev.Frames, 2)
	test.ExpectEquality(t, vid.Frames, 2)
}

func TestStatInterrupts(t *testing.T) {
	vid := video.NewVideo()

	// coincidence
	vid.WriteReg(cpubus.LYC, 2)
	vid.WriteReg(cpubus.STAT, 0x40)
	irq := step(vid, nil, video.CyclesPerLine*2-4)
	test.ExpectEquality(t, irq.Value(), uint8(0))
	irq = step(vid, nil, 4)
	test.ExpectEquality(t, irq.Value(), interrupt.LCDStat.Mask())
	test.ExpectEquality(t, vid.ReadReg(cpubus.STAT)&0x04, uint8(0x04))

	// HBlank, once per line
	vid = video.NewVideo()
	vid.WriteReg(cpubus.STAT, 0x08)
	irq = step(vid, nil, 80+172-4)
	test.ExpectEquality(t, irq.Value(), uint8(0))
	irq = step(vid, nil, 4)
	test.ExpectEquality(t, irq.Value(), interrupt.LCDStat.Mask())
	irq = step(vid, nil, 200)
	test.ExpectEquality(t, irq.Value(), uint8(0))
}

// solid tile of colour 3 at tile number 1.
func solidTile(vid *video.Video) {
	for i := uint16(0x10); i < 0x20; i++ {
		vid.WriteVRAM(i, 0xff)
	}
}

func TestBackground(t *testing.T) {
	vid := video.NewVideo()
	dev := &capture{}
	solidTile(vid)
	vid.WriteVRAM(0x1800, 0x01)
	vid.WriteReg(cpubus.BGP, 0xe4)

	step(vid, dev, video.CyclesPerLine*video.Height)
	test.DemandEquality(t, dev.Frames, 1)

	for x := 0; x < 8; x++ {
		test.ExpectEquality(t, dev.frame[x], video.DefaultPalette[3])
	}
	test.ExpectEquality(t, dev.frame[8], video.DefaultPalette[0])

	// scrolled by four pixels
	vid.WriteReg(cpubus.SCX, 4)
	step(vid, dev, video.CyclesPerFrame)
	test.ExpectEquality(t, dev.frame[3], video.DefaultPalette[3])
	test.ExpectEquality(t, dev.frame[4], video.DefaultPalette[0])
}

func TestObjects(t *testing.T) {
	vid := video.NewVideo()
	dev := &capture{}
	solidTile(vid)
	vid.WriteReg(cpubus.LCDC, 0x93)
	vid.WriteReg(cpubus.OBP0, 0xe4)

	// object at the top left of the screen
	vid.WriteOAM(0, 16)
	vid.WriteOAM(1, 8)
	vid.WriteOAM(2, 1)
	vid.WriteOAM(3, 0)

	step(vid, dev, video.CyclesPerLine*video.Height)
	test.ExpectEquality(t, dev.frame[0], video.DefaultPalette[3])
	test.ExpectEquality(t, dev.frame[7], video.DefaultPalette[3])
	test.ExpectEquality(t, dev.frame[8], video.DefaultPalette[0])
	test.ExpectEquality(t, dev.frame[7*video.Width], video.DefaultPalette[3])
	test.ExpectEquality(t, dev.frame[8*video.Width], video.DefaultPalette[0])

	// objects disabled
	vid.WriteReg(cpubus.LCDC, 0x91)
	step(vid, dev, video.CyclesPerFrame)
	test.ExpectEquality(t, dev.frame[0], video.DefaultPalette[0])
}
