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

package execution

// Bug names a hardware quirk triggered by the instruction.
type Bug string

// List of CPU bugs.
const (
	NoBug Bug = ""

	// HALT executed with interrupts disabled and an interrupt pending. The
	// next opcode is read without the program counter being incremented.
	HaltBug Bug = "halt bug"
)
