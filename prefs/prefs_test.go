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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scimitar-emu/scimitar/prefs"
	"github.com/scimitar-emu/scimitar/test"
)

// readFile returns the contents of the named file without the boilerplate.
func readFile(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	s, ok := strings.CutPrefix(string(b), prefs.WarningBoilerPlate+"\n")
	test.DemandSuccess(t, ok)
	return s
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectEquality(t, readFile(t, fn), "test :: true\ntestB :: false\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectEquality(t, readFile(t, fn), "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("0x20"))

	// string that is not a number
	test.ExpectFailure(t, w.Set("bad"))
	test.ExpectEquality(t, w.Get(), 32)

	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), "number :: 10\nnumberB :: 32\n")
}

func TestGeneric(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))
	w = 1
	h = 2
	test.ExpectSuccess(t, dsk.Save())

	w = 1000
	h = 2000
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var a prefs.Bool
	var b prefs.String
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set(true))
	test.ExpectSuccess(t, b.Set("hello"))
	test.ExpectSuccess(t, dskA.Save())
	test.ExpectSuccess(t, dskB.Save())

	// entries saved by dskA survive the save by dskB
	test.ExpectEquality(t, readFile(t, fn), "a :: true\nb :: hello\n")

	test.ExpectSuccess(t, a.Set(false))
	test.ExpectSuccess(t, dskA.Load())
	test.ExpectEquality(t, a.Get(), true)
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.ExpectSuccess(t, err)

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectFailure(t, dsk.Add("a", &b))
	test.ExpectFailure(t, dsk.Add("a :: b", &b))
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("model", &v))
	test.ExpectSuccess(t, v.Set("DMG"))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("model::MGB")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.String(), "MGB")

	// override has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), 5)
}

func TestMaxStringLength(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("123456789"))
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "12345")
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	test.ExpectEquality(t, v.String(), "abcde")
	v.SetMaxLen(0)
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	test.ExpectEquality(t, v.String(), "abcdefgh")
}
