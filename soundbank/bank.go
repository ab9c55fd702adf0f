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

package soundbank

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/logger"
)

const logTag = "soundbank"

// Bank is the set of decoded sound effect samples.
type Bank struct {
	samples [numSamples]*Sample
}

// Load is the preferred method of initialisation for the Bank type. The
// directory is searched for one file per effect, named after the SampleID
// with a .wav or .mp3 extension. Effects without a sample file are logged
// and stay silent, so the emulation runs fine with no assets at all.
func Load(dir string) (*Bank, error) {
	bnk := &Bank{}

	for id := SampleID(0); id < numSamples; id++ {
		smp, err := loadSample(dir, id)
		if err != nil {
			return nil, curated.Errorf("soundbank: %v", err)
		}
		if smp == nil {
			logger.Logf(logTag, "no sample file for %s effect", id)
			continue
		}
		bnk.samples[id] = smp
		logger.Logf(logTag, "%s: %d samples at %.0fHz", id, len(smp.Data), smp.Rate)
	}

	return bnk, nil
}

// Sample returns the decoded sample for an effect, or nil if no sample file
// was found for it.
func (bnk *Bank) Sample(id SampleID) *Sample {
	if id < 0 || id >= numSamples {
		return nil
	}
	return bnk.samples[id]
}

func loadSample(dir string, id SampleID) (*Sample, error) {
	if f, err := os.Open(filepath.Join(dir, id.String()+".wav")); err == nil {
		defer f.Close()
		return decodeWav(f, id)
	}

	if f, err := os.Open(filepath.Join(dir, id.String()+".mp3")); err == nil {
		defer f.Close()
		return decodeMp3(f, id)
	}

	return nil, nil
}

func decodeWav(f *os.File, id SampleID) (*Sample, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, curated.Errorf("wav: not a valid wav file (%s)", f.Name())
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf("wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	if dec.BitDepth == 0 || dec.NumChans == 0 {
		return nil, curated.Errorf("wav: malformed header (%s)", f.Name())
	}

	// AsFloat32Buffer() does not rescale, so the values are still in the
	// range of the source bit depth
	scale := float32(int(1) << (dec.BitDepth - 1))

	smp := &Sample{
		ID:   id,
		Rate: float64(dec.SampleRate),
		Data: make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans)),
	}

	// first channel only
	for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
		smp.Data = append(smp.Data, floatBuf.Data[i]/scale)
	}

	return smp, nil
}

func decodeMp3(f *os.File, id SampleID) (*Sample, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, curated.Errorf("mp3: %v", err)
	}

	smp := &Sample{
		ID:   id,
		Rate: float64(dec.SampleRate()),
	}

	// the decoded stream is always 16bit little-endian stereo, four bytes
	// per sample pair, whatever the channel count of the source
	chunk := make([]byte, 4096)
	err = nil
	for err != io.EOF {
		var chunkLen int
		chunkLen, err = dec.Read(chunk)
		if err != nil && err != io.EOF {
			return nil, curated.Errorf("mp3: %v", err)
		}

		for i := 0; i+1 < chunkLen; i += 4 {
			v := int(chunk[i]) | (int(chunk[i+1]) << 8)
			if v >= 32768 {
				v -= 65536
			}
			smp.Data = append(smp.Data, float32(v)/32768)
		}
	}

	return smp, nil
}
