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

// Package hardware is the base package for the Game Boy emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GameBoy type is the root of the emulation and contains references to
// all the sub-systems. From here, the emulation can either be started to run
// continuously (with an optional callback to check for continuation) or it
// can be stepped one instruction at a time.
//
// Each step executes one CPU instruction, or services one interrupt, and then
// advances the memory system, and with it every peripheral, by the number of
// cycles consumed. A whole instruction completes before any peripheral is
// advanced.
package hardware
