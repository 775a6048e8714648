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

// Package device defines the interface between the emulated hardware and the
// host: the display that receives rendered frames, the keys that drive the
// joypad and the optional audio mixer that receives sound samples.
//
// The Headless type is a Device that discards everything. It is useful for
// tests and for running the emulation without any output.
package device

// Key is a button on the Game Boy.
type Key int

// List of keys.
const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// NumKeys is the number of keys on the Game Boy.
const NumKeys = 8

func (k Key) String() string {
	switch k {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return "unknown key"
}

// Device is the host side of the emulation.
type Device interface {
	// Update is called once per frame, after SetFrameBuffer()
	Update()

	// SetFrameBuffer is called with every completed frame. Pixels are in
	// 0xRRGGBB format, arranged in rows. The slice should not be retained
	// beyond the call
	SetFrameBuffer(pixels []uint32)

	// KeyDown returns true if the key is currently pressed
	KeyDown(k Key) bool

	// Running returns false if the host wants the emulation to end
	Running() bool
}

// AudioMixer is implemented by devices that want to receive sound.
type AudioMixer interface {
	// SetAudio is called with a block of signed 16-bit mono samples
	SetAudio(samples []int16) error

	// the mixer should be considered unusable after EndMixing() has been
	// called
	EndMixing() error
}
