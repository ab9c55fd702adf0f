// This file is part of Gopheroids.
//
// Gopheroids is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheroids is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheroids.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter records the mixed sound effect output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on End(). It is therefore probably only suitable for
// short sessions.
package wavwriter

import (
	"os"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/hardware/clocks"
	"github.com/hockleyj/gopheroids/logger"
	"github.com/hockleyj/gopheroids/soundbank"
	"github.com/youpy/go-wav"
)

// output sample rate in Hz.
const sampleRate = 44100

// the recording advances one frame's worth of samples per call to Queue().
const samplesPerFrame = sampleRate / clocks.FramesPerSecond

// WavWriter mixes sound effect commands into a buffer and writes the result
// to a WAV file when the session ends. The embedded Mixer means it
// implements the soundbank.Player interface.
type WavWriter struct {
	*soundbank.Mixer

	filename string
	mix      []float32
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(bank *soundbank.Bank, filename string) *WavWriter {
	return &WavWriter{
		Mixer:    soundbank.NewMixer(bank, sampleRate),
		filename: filename,
		mix:      make([]float32, samplesPerFrame),
		buffer:   make([]wav.Sample, 0),
	}
}

// Queue mixes one frame's worth of samples into the recording. Call it once
// per frame, in step with the display.
func (aw *WavWriter) Queue() error {
	aw.Mix(aw.mix)
	for _, v := range aw.mix {
		s := wav.Sample{}
		s.Values[0] = int(int16(v * 32767))
		aw.buffer = append(aw.buffer, s)
	}
	return nil
}

// End writes the buffered audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, sampleRate, 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
