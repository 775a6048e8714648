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

package digest_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/scimitar-emu/scimitar/cartridgeloader"
	"github.com/scimitar-emu/scimitar/digest"
	"github.com/scimitar-emu/scimitar/hardware"
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/memory/cartridge"
	"github.com/scimitar-emu/scimitar/hardware/preferences"
	"github.com/scimitar-emu/scimitar/hardware/video"
	"github.com/scimitar-emu/scimitar/test"
)

var zeroHash = strings.Repeat("0", 40)

func frame(v uint32) []uint32 {
	f := make([]uint32, video.Width*video.Height)
	for i := range f {
		f[i] = v
	}
	return f
}

func TestVideo(t *testing.T) {
	var d digest.Digest

	a := digest.NewVideo(nil)
	d = a
	test.ExpectEquality(t, d.Hash(), zeroHash)

	b := digest.NewVideo(nil)

	a.SetFrameBuffer(frame(0xe0f8d0))
	b.SetFrameBuffer(frame(0xe0f8d0))
	test.ExpectInequality(t, a.Hash(), zeroHash)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// hashes are chained so the same frame produces a different hash
	h := a.Hash()
	a.SetFrameBuffer(frame(0xe0f8d0))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames, 2)

	b.SetFrameBuffer(frame(0x081820))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zeroHash)
	test.ExpectEquality(t, a.Frames, 0)
}

func TestVideoForwarding(t *testing.T) {
	dev := &device.Headless{FrameLimit: 1}
	dig := digest.NewVideo(dev)

	test.ExpectSuccess(t, dig.Running())
	dig.SetFrameBuffer(frame(0))
	test.ExpectEquality(t, dev.Frames, 1)
	test.ExpectFailure(t, dig.Running())
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	// short streams are added to the digest when mixing ends
	test.DemandSuccess(t, a.SetAudio([]int16{1, 2, 3}))
	test.ExpectEquality(t, a.Hash(), zeroHash)
	test.DemandSuccess(t, a.EndMixing())
	test.ExpectInequality(t, a.Hash(), zeroHash)

	test.DemandSuccess(t, b.SetAudio([]int16{1, 2, 3}))
	test.DemandSuccess(t, b.EndMixing())
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// long streams are digested as the buffer fills
	a.ResetDigest()
	test.DemandSuccess(t, a.SetAudio(make([]int16, 5000)))
	test.ExpectInequality(t, a.Hash(), zeroHash)
}

func run(t *testing.T) string {
	t.Helper()

	data := make([]uint8, 0x8000)
	copy(data[0x0100:], []uint8{0x18, 0xfe})
	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.FromBytes("digest.gb", data)))

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	gb, err := hardware.NewGameBoy(p, cart, nil)
	test.DemandSuccess(t, err)

	dig := digest.NewVideo(&device.Headless{FrameLimit: 2})
	test.DemandSuccess(t, gb.Run(dig, nil, nil))
	test.ExpectEquality(t, dig.Frames, 2)

	return dig.Hash()
}

func TestEmulationIsRepeatable(t *testing.T) {
	test.ExpectEquality(t, run(t), run(t))
}
