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

import "math"

// voice is one playing instance of a sample.
type voice struct {
	smp  *Sample
	pos  float64
	step float64
	loop bool
}

// Mixer turns Play/Loop/Stop commands into a stream of mono samples. It
// implements the Player interface and is the engine behind every audio
// output.
//
// The type is not safe for concurrent use.
type Mixer struct {
	bank   *Bank
	rate   float64
	voices []*voice
}

// NewMixer is the preferred method of initialisation for the Mixer type.
// The rate argument is the output sample rate in Hz. Sample files recorded
// at a different rate are resampled, crudely, as they are mixed.
func NewMixer(bank *Bank, rate float64) *Mixer {
	return &Mixer{bank: bank, rate: rate}
}

// Play implements the Player interface.
func (mx *Mixer) Play(id SampleID) {
	mx.start(id, false)
}

// Loop implements the Player interface. A looping effect that is already
// sounding is never doubled up.
func (mx *Mixer) Loop(id SampleID) {
	for _, v := range mx.voices {
		if v.loop && v.smp.ID == id {
			return
		}
	}
	mx.start(id, true)
}

// Stop implements the Player interface. Only looping voices are stopped; a
// one-shot effect always runs to its end.
func (mx *Mixer) Stop(id SampleID) {
	keep := mx.voices[:0]
	for _, v := range mx.voices {
		if !(v.loop && v.smp.ID == id) {
			keep = append(keep, v)
		}
	}
	mx.voices = keep
}

func (mx *Mixer) start(id SampleID, loop bool) {
	smp := mx.bank.Sample(id)
	if smp == nil || len(smp.Data) == 0 {
		return
	}
	mx.voices = append(mx.voices, &voice{
		smp:  smp,
		step: smp.Rate / mx.rate,
		loop: loop,
	})
}

// Mix overwrites buf with the sum of the active voices, advancing their
// positions by len(buf) output samples. Values are clipped to the range
// -1.0 to 1.0. With no active voices the buffer is filled with silence.
func (mx *Mixer) Mix(buf []float32) {
	for i := range buf {
		var mix float32

		keep := mx.voices[:0]
		for _, v := range mx.voices {
			mix += v.smp.Data[int(v.pos)]
			v.pos += v.step
			if int(v.pos) >= len(v.smp.Data) {
				if !v.loop {
					continue
				}
				v.pos = math.Mod(v.pos, float64(len(v.smp.Data)))
			}
			keep = append(keep, v)
		}
		mx.voices = keep

		// hard clip. the effects are quiet enough that summed voices only
		// rarely exceed full scale
		if mix > 1.0 {
			mix = 1.0
		} else if mix < -1.0 {
			mix = -1.0
		}

		buf[i] = mix
	}
}
