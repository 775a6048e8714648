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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is implemented by the part of the emulation that counts cycles.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool

	// generator for NoRewind(). created on first use so that ZeroSeed can be
	// set after NewRandom()
	stream *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case the cycle count is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

func (rnd *Random) cycles() int64 {
	if rnd.clock == nil {
		return 0
	}
	return int64(rnd.clock.Cycles())
}

// Rewindable returns a number in the range [0,n) that depends only on the
// current cycle count.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + rnd.cycles())).Intn(n)
}

// NoRewind returns the next number in the range [0,n) from the generator.
func (rnd *Random) NoRewind(n int) int {
	if rnd.stream == nil {
		rnd.stream = rand.New(rand.NewSource(rnd.seed()))
	}
	return rnd.stream.Intn(n)
}

// Uint8 is a convenience function returning NoRewind(0x100) as a uint8.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.NoRewind(0x100))
}

// Uint16 is a convenience function returning NoRewind(0x10000) as a uint16.
func (rnd *Random) Uint16() uint16 {
	return uint16(rnd.NoRewind(0x10000))
}

// Bool is a convenience function returning a random boolean.
func (rnd *Random) Bool() bool {
	return rnd.NoRewind(2) == 1
}
