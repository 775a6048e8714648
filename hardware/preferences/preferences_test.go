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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scimitar-emu/scimitar/hardware/model"
	"github.com/scimitar-emu/scimitar/hardware/preferences"
	"github.com/scimitar-emu/scimitar/prefs"
	"github.com/scimitar-emu/scimitar/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.GetModel(), model.DMG)
	test.ExpectEquality(t, p.UseBootROM.Get().(bool), false)
	test.ExpectEquality(t, p.BootROM.String(), "")
	test.ExpectEquality(t, len(p.GetWatchpoints()), 0)
}

func TestModelValidation(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Model.Set("mgb"))
	test.ExpectEquality(t, p.GetModel(), model.MGB)

	test.ExpectFailure(t, p.Model.Set("GBC"))
	test.ExpectEquality(t, p.GetModel(), model.MGB)
}

func TestWatchpoints(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Watchpoints.Set("c000, 0xFF80 $dfff"))
	w := p.GetWatchpoints()
	test.DemandEquality(t, len(w), 3)
	test.ExpectEquality(t, w[0], uint16(0xc000))
	test.ExpectEquality(t, w[1], uint16(0xff80))
	test.ExpectEquality(t, w[2], uint16(0xdfff))
	test.ExpectEquality(t, p.Watchpoints.String(), "c000,ff80,dfff")

	test.ExpectFailure(t, p.Watchpoints.Set("c000,nothex"))
	test.ExpectEquality(t, len(p.GetWatchpoints()), 3)

	_, err = preferences.ParseAddresses("10000")
	test.ExpectFailure(t, err)
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Model.Set("SGB"))
	test.DemandSuccess(t, p.UseBootROM.Set(true))
	test.DemandSuccess(t, p.Watchpoints.Set("ff46"))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.model :: SGB\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.watchpoints :: ff46\n"))

	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.GetModel(), model.SGB)
	test.ExpectEquality(t, p.UseBootROM.Get().(bool), true)
	test.ExpectEquality(t, p.GetWatchpoints()[0], uint16(0xff46))

	// command line takes priority over the file
	prefs.PushCommandLineStack("hardware.model::DMG0")
	defer prefs.PopCommandLineStack()
	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.GetModel(), model.DMG0)
}
