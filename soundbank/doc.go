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

// Package soundbank loads the sound effect samples and decides when they
// should be heard.
//
// The cabinet generates its sound effects with discrete analogue circuitry
// driven by the latches emulated in the hardware/audio package. Rather than
// modelling the circuits, the emulation plays pre-recorded samples of each
// effect. The Bank type loads those samples from a directory of WAV or MP3
// files, one file per SampleID, decoded to mono float32 PCM.
//
// The Sequencer type implements audio.Tap and converts the raw register
// writes into Play/Loop/Stop commands for a Player. One-shot effects (ship
// fire, explosion, saucer fire, thump) trigger on the rising edge of their
// latch. Continuous effects (thrust, the two saucer warbles) loop while the
// latch is high. The extra life chime is rate-limited because the game
// holds its latch high for the duration of the award.
//
// Playback itself is left to the Player implementation. See the
// gui/sdlaudio package.
package soundbank
