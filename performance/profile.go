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
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
)

// Profile specifies which profiling (if any) should be applied to the run
// function.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "NONE"
	}

	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "CPU")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "MEM")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "TRACE")
	}
	return strings.Join(s, ",")
}

// ParseProfileString converts a string to a Profile value. The string is a
// comma separated list of CPU, MEM, TRACE, ALL or NONE. Case insensitive.
func ParseProfileString(profile string) (Profile, error) {
	result := ProfileNone

	for _, p := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(p)) {
		case "", "NONE":
		case "CPU":
			result |= ProfileCPU
		case "MEM":
			result |= ProfileMem
		case "TRACE":
			result |= ProfileTrace
		case "ALL":
			result |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", p)
		}
	}

	return result, nil
}

// RunProfiler runs the supplied function "through" the requested Profile
// types. Files are named after filenameHeader with the suffix "_cpu.profile",
// "_mem.profile" or "_trace.profile".
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(filenameHeader + "_cpu.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(filenameHeader + "_trace.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(filenameHeader + "_mem.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
