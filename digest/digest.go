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

// Package digest contains implementations of the device.Device and
// device.AudioMixer interfaces such that a cryptographic hash is produced. The
// hash can then be used to compare the output from subsequent emulation
// executions. If a new hash differs from a previously recorded value then
// something has changed.
//
// Hashes are chained. The hash for a frame (or a block of audio) includes the
// hash of the previous frame, so the final hash covers the entire run.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
