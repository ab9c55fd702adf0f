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

// Package playmode ties the machine to an SDL window and audio device and
// runs it at the cabinet's frame rate.
//
// The emulation and every SDL call run on the goroutine that called Play(),
// which should be the main goroutine. Between frames the window's events
// are polled and folded into the switch snapshot for the next frame:
//
//	left/right     rotate ship
//	up             thrust
//	space          fire
//	left shift     hyperspace
//	s or 1         one player start
//	2              two player start
//	c              insert coin
//	f11            toggle fullscreen
//	escape         quit
//
// Because the snapshot is latched once per frame, a key press and release
// inside the same frame is lost. At sixty frames per second nobody's
// fingers are that fast.
package playmode
