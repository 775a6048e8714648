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
	"fmt"
	"io"
	"time"

	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/govern"
	"github.com/scimitar-emu/scimitar/hardware"
	"github.com/scimitar-emu/scimitar/hardware/device"
)

// Check the performance of the emulator. The Game Boy should have been reset
// with the cartridge attached.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, gb *hardware.GameBoy, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dev := &device.Headless{}

	startFrame := gb.Video.Frames
	startCycles := gb.Cycles()

	var elapsed time.Duration

	runner := func() error {
		start := time.Now()

		// only check for end of measurement period every PerformanceBrake
		// instructions. time.Since() is relatively expensive
		performanceBrake := 0

		err := gb.Run(dev, nil, func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				if time.Since(start) >= dur {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})

		elapsed = time.Since(start)
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := gb.Video.Frames - startFrame
	fps, accuracy := CalcFPS(numFrames, elapsed.Seconds())
	mhz := float64(gb.Cycles()-startCycles) / elapsed.Seconds() / 1000000

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%% [%.2fMHz]\n", fps, numFrames, elapsed.Seconds(), accuracy, mhz)

	return nil
}
