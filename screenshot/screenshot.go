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

package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/video"
	"github.com/scimitar-emu/scimitar/logger"
	"golang.org/x/image/draw"
)

// MaxScale is the largest scaling factor accepted by Save().
const MaxScale = 8

// Device implements the device.Device interface. Calls are forwarded to the
// embedded device.
type Device struct {
	device.Device
	frame *image.RGBA
	valid bool
}

// NewDevice is the preferred method of initialisation for the Device type. The
// device argument can be nil, in which case a headless device is used.
func NewDevice(dev device.Device) *Device {
	if dev == nil {
		dev = &device.Headless{}
	}
	return &Device{
		Device: dev,
		frame:  image.NewRGBA(image.Rect(0, 0, video.Width, video.Height)),
	}
}

// SetFrameBuffer implements the device.Device interface.
func (scr *Device) SetFrameBuffer(pixels []uint32) {
	for i, p := range pixels {
		if i >= video.Width*video.Height {
			break
		}
		scr.frame.SetRGBA(i%video.Width, i/video.Width, color.RGBA{
			R: uint8(p >> 16),
			G: uint8(p >> 8),
			B: uint8(p),
			A: 0xff,
		})
	}
	scr.valid = true
	scr.Device.SetFrameBuffer(pixels)
}

// Image returns the most recent frame scaled by the factor. Returns nil if no
// frame has been received.
func (scr *Device) Image(scale int) image.Image {
	if !scr.valid {
		return nil
	}
	if scale <= 1 {
		return scr.frame
	}

	b := scr.frame.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(img, img.Bounds(), scr.frame, b, draw.Src, nil)
	return img
}

// Save the most recent frame to the named file as a PNG image.
func (scr *Device) Save(filename string, scale int) (rerr error) {
	if scale < 1 || scale > MaxScale {
		return curated.Errorf("screenshot: scale must be between 1 and %d", MaxScale)
	}

	img := scr.Image(scale)
	if img == nil {
		return curated.Errorf("screenshot: no frame to save")
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved to %s", filename)

	return nil
}
