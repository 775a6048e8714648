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

// Package bootrom loads the boot ROM that is run by the Game Boy before the
// cartridge.
//
// The Lookup() function searches for a boot ROM file for each model in turn.
// The file names are decided by the model package. The search path is the
// bootroms directory in the resources path followed by the current working
// directory.
package bootrom
