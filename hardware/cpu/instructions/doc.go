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

// Package instructions defines the instruction set of the SM83 CPU. The
// CycleCounts and CBCycleCounts tables give the base number of clock cycles
// consumed by every opcode in the primary and CB-prefixed opcode spaces.
//
// The cycle tables are used by the CPU to count cycles. The Definition type is
// used for reference by other packages and by tests.
package instructions
