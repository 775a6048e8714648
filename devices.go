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
	"io"
	"os"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/logger"
	"golang.org/x/term"
)

// host combines a device with an audio mixer. the emulation only produces
// audio for devices that implement the device.AudioMixer interface.
type host struct {
	device.Device
	device.AudioMixer
}

// mixers sends audio to more than one mixer.
type mixers []device.AudioMixer

// SetAudio implements the device.AudioMixer interface.
func (m mixers) SetAudio(samples []int16) error {
	for _, mx := range m {
		if err := mx.SetAudio(samples); err != nil {
			return err
		}
	}
	return nil
}

// EndMixing implements the device.AudioMixer interface. Every mixer is ended
// even if an earlier one fails. The first error is returned.
func (m mixers) EndMixing() error {
	var first error
	for _, mx := range m {
		if err := mx.EndMixing(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// setEcho sets the echo of the central logger. the echo is colourised if the
// output is a terminal.
func setEcho(output io.Writer, enable bool) {
	if !enable {
		logger.SetEcho(nil)
		return
	}

	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}

	logger.SetEcho(output)
}
