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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the name of the resource directory in portable mode and in development
// builds.
const portablePath = ".scimitar"

// checkPortable returns true if the portable resource directory exists.
func checkPortable() bool {
	fi, err := os.Stat(portablePath)
	return err == nil && fi.IsDir()
}

// JoinPath prepends the supplied path with a with OS/build specific base
// paths, if required.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	var b string

	if checkPortable() {
		b = portablePath
	} else {
		var err error
		b, err = resourcePath()
		if err != nil {
			return "", err
		}
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
