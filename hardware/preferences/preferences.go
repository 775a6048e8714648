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

package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/model"
	"github.com/scimitar-emu/scimitar/prefs"
	"github.com/scimitar-emu/scimitar/resources"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the hardware model to emulate
	Model prefs.String

	// path to the boot ROM file. an empty value means that the boot ROM is
	// looked up in the resources directory
	BootROM prefs.String

	// run the boot ROM before the cartridge. if false the emulation starts at
	// the cartridge entry point with the registers set by the model
	UseBootROM prefs.Bool

	// initialise work RAM and high RAM to random values on reset
	RandomState prefs.Bool

	// addresses that raise an event when written to. comma separated hex
	// values
	Watchpoints *prefs.Generic

	watchpoints []uint16
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences file is in the resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit path to
// the preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Watchpoints = prefs.NewGeneric(
		func(s string) error {
			w, err := ParseAddresses(s)
			if err != nil {
				return err
			}
			p.watchpoints = w
			return nil
		},
		func() string {
			s := make([]string, 0, len(p.watchpoints))
			for _, a := range p.watchpoints {
				s = append(s, fmt.Sprintf("%04x", a))
			}
			return strings.Join(s, ",")
		},
	)

	// the empty string is allowed so that the value can be reset
	p.Model.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return nil
		}
		_, err := model.FromString(v.(string))
		return err
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.model", &p.Model)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.bootrom", &p.BootROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.useBootROM", &p.UseBootROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randomState", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.watchpoints", p.Watchpoints)
	if err != nil {
		return nil, err
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.dsk.Reset(); err != nil {
		return err
	}
	return p.Model.Set(model.DMG.String())
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// GetModel returns the model selected by the Model preference.
func (p *Preferences) GetModel() model.Model {
	// the value has been validated by the pre hook. the empty string
	// results in the default model
	m, _ := model.FromString(p.Model.String())
	return m
}

// GetWatchpoints returns the addresses in the Watchpoints preference.
func (p *Preferences) GetWatchpoints() []uint16 {
	return append([]uint16(nil), p.watchpoints...)
}

// ParseAddresses parses a list of hexadecimal addresses, separated by commas or
// spaces. Addresses can have an optional 0x or $ prefix.
func ParseAddresses(s string) ([]uint16, error) {
	var addrs []uint16

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	for _, f := range fields {
		f = strings.TrimPrefix(strings.ToLower(f), "0x")
		f = strings.TrimPrefix(f, "$")
		a, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, curated.Errorf("preferences: invalid address (%s)", f)
		}
		addrs = append(addrs, uint16(a))
	}

	return addrs, nil
}
