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

// Package video implements the display peripheral of the Game Boy. It owns
// video RAM and OAM and the LCD registers from LCDC to WX (with the exception
// of the DMA register, which belongs to the memory system).
//
// Every line of the display takes 456 cycles and there are 154 lines in a
// frame, the last ten of which are the vertical blank. Each visible line
// passes through the OAM search (mode 2), the pixel transfer (mode 3) and the
// horizontal blank (mode 0). The line is drawn into the frame buffer in one
// go at the start of the horizontal blank and the frame buffer is sent to the
// device when the vertical blank starts.
//
// CPU access to video RAM and OAM is not blocked during modes 2 and 3.
package video
