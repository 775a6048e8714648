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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing ends. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/audio"
	"github.com/scimitar-emu/scimitar/logger"
)

// WavWriter implements the device.AudioMixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, audio.SampleFreq),
	}

	return aw, nil
}

// SetAudio implements the device.AudioMixer interface.
func (aw *WavWriter) SetAudio(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// Samples returns the number of samples buffered so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// EndMixing implements the device.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, audio.SampleFreq, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  audio.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
