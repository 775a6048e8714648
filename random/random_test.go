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

package random_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/random"
	"github.com/scimitar-emu/scimitar/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRewindable(t *testing.T) {
	c := &clock{cycles: 70224}
	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestNoRewind(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, a.Uint16(), b.Uint16())
	}
}
