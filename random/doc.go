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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation, for example when filling
// work RAM with noise at power-on.
//
// There are two functions belonging to the Random type that return random
// numbers:
//
// Rewindable() returns numbers based on the current cycle count of the
// emulation. The number will always be the same for the same cycle count.
//
// NoRewind() returns successive numbers from a generator that is seeded once.
// The sequence does not depend on the state of the emulation.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before the first call. This is useful for testing purposes.
package random
