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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scimitar-emu/scimitar/cartridgeloader"
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/test"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("abc"), 0644))

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.IsRecognised())
	test.ExpectEquality(t, cl.ShortName(), "test")

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())

	// sha1 of "abc"
	test.ExpectEquality(t, cl.Hash, "a9993e364706816aba3e25717850c26c9cd0d89d")
}

func TestHashMismatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("abc"), 0644))

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestFromBytes(t *testing.T) {
	cl := cartridgeloader.FromBytes("test", []byte("abc"))
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Hash, "a9993e364706816aba3e25717850c26c9cd0d89d")
	test.ExpectFailure(t, cl.IsRecognised())
}
