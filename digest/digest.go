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

// Package digest contains implementations of the display Renderer and the
// audio Tap interfaces that reduce emulation output to a cryptographic
// hash. The hash can be compared with the hash of a later run: if the two
// differ then something about the emulation has changed. This is the basis
// of the regression tests.
//
// The hashes are chained: each frame's hash covers the previous hash as
// well as the frame's own content, so the final value fingerprints the
// whole run, in order, not just the last frame.
package digest

// Digest implementations return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface,
// display.Renderer in the case of Video and audio.Tap in the case of Audio.
type Digest interface {
	Hash() string
	ResetDigest()
}
