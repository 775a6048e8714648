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

package modalflag_test

import (
	"testing"

	"github.com/scimitar-emu/scimitar/modalflag"
	"github.com/scimitar-emu/scimitar/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-bootrom", "tetris.gb", "extra"})
	bootrom := md.AddBool("bootrom", false, "run boot rom")

	test.ExpectFailure(t, *bootrom)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *bootrom)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "tetris.gb")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"info", "tetris.gb"})
	md.AddSubModes("RUN", "INFO")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "tetris.gb")
	test.ExpectEquality(t, md.Path(), "INFO")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"tetris.gb"})
	md.AddSubModes("RUN", "INFO")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "tetris.gb")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("bootrom", true, "run boot rom")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -bootrom\n" +
		"    	run boot rom (default true)\n"

	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("bootrom", true, "run boot rom")
	md.AddSubModes("RUN", "INFO")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -bootrom\n" +
		"    	run boot rom (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, INFO\n" +
		"    default: RUN\n"

	test.ExpectEquality(t, tw.String(), expectedHelp)
}
