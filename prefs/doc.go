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

// Package prefs facilitates the storing and loading of preferences to and
// from disk.
//
// Preference values are of the types Bool, String, Int and Generic. Values are
// registered with a Disk instance under a key and can then be saved to and
// loaded from the preferences file. The file is plain text with one key/value
// pair per line:
//
//	hardware.model :: DMG
//	hardware.randomState :: false
//
// Values can also be overridden from the command line, with a string of the
// form:
//
//	"hardware.model::MGB; hardware.useBootROM::true"
//
// See PushCommandLineStack() for details.
package prefs
