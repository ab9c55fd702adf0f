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

// Package audio latches the machine's sound register writes. The board
// generates all of its audio with discrete analogue circuits driven by a
// handful of write-only latches: explosion pitch and volume, the two-tone
// thump, and the on/off effects (saucer, saucer fire, ship fire, thrust,
// extra life). This package does not synthesise any of that. It records the
// latch state and streams the writes, with their exact ordering, to any
// attached Tap.
//
// A Tap is how sound actually gets made. The sdlaudio package attaches one
// and maps events onto sampled playback. Test code attaches one to assert
// on what the program wrote and when.
package audio
