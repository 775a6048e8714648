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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
)

// LoadError is the error pattern for all errors returned by the
// cartridgeloader package.
const LoadError = "cartridgeloader: %v"

// Loader is used to specify the cartridge to use when Attach()ing to the
// Game Boy.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// FromBytes creates a Loader with data that has already been loaded. The hash
// of the data is created immediately.
func FromBytes(name string, data []byte) Loader {
	return Loader{
		Filename: name,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Data:     data,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsRecognised returns true if the filename has one of the extensions in the
// FileExtensions list. The test is case insensitive.
func (cl Loader) IsRecognised() bool {
	ext := strings.ToUpper(path.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf(LoadError, "empty file")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	// note generated hash
	cl.Hash = hash

	return nil
}
