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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the emulator is running ***"

// the separator between key and value on each line of the file.
const keySep = " :: "

// Disk is used to save and load preferences to disk. Preferences from more
// than one Disk instance can share the same file. Entries belonging to other
// instances are preserved on Save().
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from disk. The key
// must not contain the key/value separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file into a map of key to string value. a missing file
// is not an error.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() {
		return data, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: %s is not a preferences file", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return data, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, data[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the current command line group
// (see PushCommandLineStack()) take priority over the values on disk.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
			continue
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return nil
}

// Reset all values registered with the disk to their zero values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}
