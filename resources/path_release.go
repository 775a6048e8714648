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

//go:build release

package resources

import (
	"os"
	"path/filepath"
)

const releasePath = "scimitar"

func resourcePath() (string, error) {
	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cnf, releasePath), nil
}
