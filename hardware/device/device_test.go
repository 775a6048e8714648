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

package device_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/test"
)

func TestHeadless(t *testing.T) {
	var dev device.Device = &device.Headless{FrameLimit: 2}
	test.ExpectSuccess(t, dev.Running())
	test.ExpectFailure(t, dev.KeyDown(device.Start))

	dev.SetFrameBuffer(nil)
	test.ExpectSuccess(t, dev.Running())
	dev.SetFrameBuffer(nil)
	test.ExpectFailure(t, dev.Running())

	// unlimited
	dev = &device.Headless{}
	for i := 0; i < 100; i++ {
		dev.SetFrameBuffer(nil)
	}
	test.ExpectSuccess(t, dev.Running())
}

func TestKeyNames(t *testing.T) {
	test.ExpectEquality(t, device.Select.String(), "Select")
	test.ExpectEquality(t, device.Key(device.NumKeys).String(), "unknown key")
}
