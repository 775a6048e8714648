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

// Package audio implements the sound registers of the Game Boy and renders
// the two square wave channels and the wave channel into a stream of mono
// samples.
//
// Samples are only produced if the device passed to Step() implements the
// device.AudioMixer interface. The registers of the noise channel are
// implemented but the channel is never heard.
//
// The frame sequencer runs at 512Hz and clocks the length counters, the
// volume envelopes and the frequency sweep of channel one.
package audio
