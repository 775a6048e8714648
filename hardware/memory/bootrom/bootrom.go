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

package bootrom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/model"
	"github.com/scimitar-emu/scimitar/logger"
	"github.com/scimitar-emu/scimitar/resources"
)

// Error patterns returned by the bootrom package.
const (
	NotFound    = "bootrom: no boot ROM found for %s"
	InvalidSize = "bootrom: invalid size (%d bytes)"
	LoadError   = "bootrom: %v"
)

// Size is the number of bytes in a boot ROM.
const Size = 256

// BootROM is the data of a boot ROM and the model it belongs to.
type BootROM struct {
	Model model.Model
	Path  string
	data  []uint8
}

// FromBytes creates a BootROM from data that has already been loaded.
func FromBytes(data []uint8) (*BootROM, error) {
	if len(data) != Size {
		return nil, curated.Errorf(InvalidSize, len(data))
	}
	b := &BootROM{
		Model: model.DMG,
		data:  make([]uint8, Size),
	}
	copy(b.data, data)
	return b, nil
}

// Load the boot ROM from the file.
func Load(path string) (*BootROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	b, err := FromBytes(data)
	if err != nil {
		return nil, err
	}
	b.Path = path
	return b, nil
}

// Data returns a copy of the boot ROM data.
func (b *BootROM) Data() []uint8 {
	d := make([]uint8, len(b.data))
	copy(d, b.data)
	return d
}

// Lookup searches the default directories for the boot ROM of each model in
// turn. If the models list is empty then model.DefaultPriority is used.
func Lookup(models []model.Model) (*BootROM, error) {
	var dirs []string

	if p, err := resources.JoinPath("bootroms", "."); err == nil {
		dirs = append(dirs, p)
	}
	if p, err := os.Getwd(); err == nil {
		dirs = append(dirs, p)
	}

	return LookupIn(dirs, models)
}

// LookupIn searches the listed directories for the boot ROM of each model in
// turn. All directories are searched for a model before the next model is
// tried.
func LookupIn(dirs []string, models []model.Model) (*BootROM, error) {
	if len(models) == 0 {
		models = model.DefaultPriority
	}

	for _, m := range models {
		for _, d := range dirs {
			p := filepath.Join(d, m.BootROMName())
			logger.Logf(logger.Allow, "bootrom", "scanning %s", p)

			b, err := Load(p)
			if err != nil {
				logger.Logf(logger.Allow, "bootrom", "%v", err)
				continue
			}

			b.Model = m
			logger.Logf(logger.Allow, "bootrom", "using %s boot ROM from %s", m, p)
			return b, nil
		}
	}

	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.String())
	}

	return nil, curated.Errorf(NotFound, strings.Join(names, ", "))
}
