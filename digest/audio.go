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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 2048 + sha1.Size

// to allow us to create digests on audio streams longer than
// audioBufferLength, we stuff the previous digest value into the first part
// of the buffer array and make sure we include it when we create the next
// digest value
const audioBufferStart = sha1.Size

// Audio implements the device.AudioMixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the device.AudioMixer interface.
func (dig *Audio) SetAudio(samples []int16) error {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = uint8(s)
		dig.buffer[dig.bufferCt+1] = uint8(s >> 8)
		dig.bufferCt += 2

		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// EndMixing implements the device.AudioMixer interface. Any partially filled
// buffer is added to the digest.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return nil
}
