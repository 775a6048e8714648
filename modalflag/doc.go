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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(), which takes no arguments. This split allows parsing to proceed one
// mode at a time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		bootrom := md.AddBool("bootrom", false, "run the boot ROM before the cartridge")
//		p, err := md.Parse()
//		...
//	case "INFO":
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default. If the first
// non-flag argument does not name a sub-mode then the default is chosen and
// the argument is left for the mode to process. Sub-mode comparisons are case
// insensitive.
//
// Flags are added with the AddBool(), AddInt() and AddString() functions and
// apply to the next call to Parse() only. Non-flag arguments are available
// afterwards with RemainingArgs() and GetArg().
//
// The Path() function returns every mode encountered so far, separated by a
// forward slash. For example "RUN" or "INFO". This is used in the banner of
// help messages, which are printed to the Output field when -help is given.
package modalflag
