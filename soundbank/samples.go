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

// SampleID identifies one of the cabinet's sound effects.
type SampleID int

// The full set of sound effects. Each value doubles as an index into the
// Bank and, through the String() function, as the base name of the sample
// file on disk.
const (
	Fire SampleID = iota
	Explosion
	SaucerBig
	SaucerSmall
	SaucerFire
	ExtraLife
	ThumpLow
	ThumpHigh
	Thrust
	numSamples
)

func (id SampleID) String() string {
	switch id {
	case Fire:
		return "fire"
	case Explosion:
		return "explosion"
	case SaucerBig:
		return "saucer_big"
	case SaucerSmall:
		return "saucer_small"
	case SaucerFire:
		return "saucer_fire"
	case ExtraLife:
		return "extra_life"
	case ThumpLow:
		return "thump_low"
	case ThumpHigh:
		return "thump_high"
	case Thrust:
		return "thrust"
	}
	return "unknown"
}

// Sample is one decoded sound effect.
type Sample struct {
	ID SampleID

	// sample rate of the source file in Hz
	Rate float64

	// mono PCM data in the range -1.0 to 1.0. stereo sources are reduced
	// to their left channel
	Data []float32
}
