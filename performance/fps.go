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

package performance

import (
	"github.com/scimitar-emu/scimitar/hardware/audio"
	"github.com/scimitar-emu/scimitar/hardware/video"
)

// RefreshRate is the number of frames per second produced by the LCD.
const RefreshRate = float64(audio.ClockFreq) / float64(video.CyclesPerFrame)

// CalcFPS takes the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as compared to the
// refresh rate of the LCD.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / RefreshRate
	return fps, accuracy
}
