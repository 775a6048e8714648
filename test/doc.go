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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test harness.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when later parts of the test depend on the value being correct.
//
// Success and failure are defined according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CompareWriter.Compare() function can then be
// used to test for equality.
package test
