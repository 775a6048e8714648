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

// Package timer implements the divider and timer registers of the Game Boy.
//
// The DIV register is the upper byte of a 16-bit counter that increases every
// cycle. The TIMA register increases on the falling edge of one bit of that
// counter, selected by the TAC register, while the timer is enabled. When
// TIMA overflows it is reloaded from TMA four cycles later and the timer
// interrupt is requested at the same time.
//
// Because the increase of TIMA depends only on the falling edge, a write to
// DIV or to TAC can cause TIMA to increase.
package timer
