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

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/video"
)

const pixelDepth = 3

// Video implements the device.Device interface. Calls are forwarded to the
// embedded device after the frame has been added to the digest.
type Video struct {
	device.Device
	digest [sha1.Size]byte
	pixels []byte

	// number of frames added to the digest
	Frames int
}

// NewVideo is the preferred method of initialisation for the Video type. For
// convenience, the device argument can be nil, in which case a headless
// device is used.
func NewVideo(dev device.Device) *Video {
	if dev == nil {
		dev = &device.Headless{}
	}

	// the head of the pixels array is reserved for the previous digest
	dig := &Video{
		Device: dev,
		pixels: make([]byte, sha1.Size+video.Width*video.Height*pixelDepth),
	}

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.Frames = 0
}

// SetFrameBuffer implements the device.Device interface.
func (dig *Video) SetFrameBuffer(pixels []uint32) {
	i := copy(dig.pixels, dig.digest[:])
	for _, p := range pixels {
		if i > len(dig.pixels)-pixelDepth {
			break
		}
		dig.pixels[i] = byte(p >> 16)
		dig.pixels[i+1] = byte(p >> 8)
		dig.pixels[i+2] = byte(p)
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.Frames++

	dig.Device.SetFrameBuffer(pixels)
}
