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

// Package serial implements the SB and SC registers of the serial port.
//
// There is never anything connected to the other end of the link cable.
// Transfers with the internal clock complete after the eight bits have been
// shifted out and the value shifted in is always 0xff. Transfers that wait
// for an external clock never complete.
//
// Test ROMs commonly write their results to the serial port. The bytes
// transferred are kept and can be retrieved with Output().
package serial
