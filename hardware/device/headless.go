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

package device

// Headless is an implementation of Device that discards all output and never
// reports a key as pressed.
type Headless struct {
	// number of frames received
	Frames int

	// the emulation will end after this many frames. zero for no limit
	FrameLimit int
}

// Update implements the Device interface.
func (h *Headless) Update() {
}

// SetFrameBuffer implements the Device interface.
func (h *Headless) SetFrameBuffer(_ []uint32) {
	h.Frames++
}

// KeyDown implements the Device interface.
func (h *Headless) KeyDown(_ Key) bool {
	return false
}

// Running implements the Device interface.
func (h *Headless) Running() bool {
	return h.FrameLimit == 0 || h.Frames < h.FrameLimit
}
