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

// Package govern defines the states the emulation can be in. The values are
// returned by the continue-check callbacks passed to the Run() functions of
// the hardware package.
package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
const (
	// the emulation has been created but not yet started. Run() functions
	// return immediately if this state is returned by a continue check.
	Initialising State = iota

	// the emulation is executing instructions.
	Running

	// the emulation is not executing instructions but the run loop continues
	// to call the continue check.
	Paused

	// the run loop should return.
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Ending:
		return "Ending"
	}
	return "unknown state"
}
