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

package hardware

import (
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/govern"
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/events"
	"github.com/scimitar-emu/scimitar/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The run ends when the
// continueCheck() function returns govern.Ending, when the device is no longer
// running or when an error occurs.
//
// Buffered audio is sent to the device, if it is an audio mixer, when the run
// ends.
func (gb *GameBoy) Run(dev device.Device, sink events.Sink, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	defer gb.flushAudio(dev)

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err = gb.Step(dev, sink)
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		if dev != nil && !dev.Running() {
			return nil
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the emulation for at least the number of cycles. The
// continueCheck function can be nil.
func (gb *GameBoy) RunForCycles(cycles uint64, dev device.Device, sink events.Sink, continueCheck func() (govern.State, error)) error {
	target := gb.cycles + cycles

	return gb.Run(dev, sink, func() (govern.State, error) {
		if gb.cycles >= target {
			return govern.Ending, nil
		}
		if continueCheck != nil {
			return continueCheck()
		}
		return govern.Running, nil
	})
}

// RunUntilOpcode runs the emulation until the next opcode to be executed is
// the one specified. An error is returned if the opcode is not reached within
// the number of cycles.
func (gb *GameBoy) RunUntilOpcode(opcode uint8, limit uint64, dev device.Device, sink events.Sink) error {
	target := gb.cycles + limit
	reached := gb.NextOpcode() == opcode && !gb.CPU.Halted

	if !reached {
		err := gb.Run(dev, sink, func() (govern.State, error) {
			if gb.NextOpcode() == opcode && !gb.CPU.Halted {
				reached = true
				return govern.Ending, nil
			}
			if gb.cycles >= target {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
		if err != nil {
			return err
		}
	}

	if !reached {
		return curated.Errorf("hardware: opcode %#02x not reached after %d cycles", opcode, limit)
	}

	return nil
}

func (gb *GameBoy) flushAudio(dev device.Device) {
	if mixer, ok := dev.(device.AudioMixer); ok {
		if err := gb.Audio.Flush(mixer); err != nil {
			logger.Log(logger.Allow, "hardware", err)
		}
	}
}
