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

// Package macro implements a scripted input system. A macro script changes
// the cabinet switches on a schedule measured in frames, which, because
// input is latched per frame, makes a script a perfectly repeatable player.
// The regression system uses scripts to drive the game into states that
// attract mode never reaches.
//
// A macro file begins with an identifying header line, "gopheroidsmacro",
// followed by a version line. After that, one instruction per line.
//
// The macro language is very simple and has no flow control except basic
// loops, which may be nested:
//
//	DO loopCt
//		...
//	LOOP
//
// The WAIT instruction pauses the script for the given number of frames,
// defaulting to 60:
//
//	WAIT [frames]
//
// The switch instructions close and open the cabinet switches:
//
//	LEFT RIGHT THRUST FIRE HYPERSPACE START1 START2 COIN SELFTEST
//
// prefixed with NO for the open position (NOLEFT, NOFIRE, ...). A switch
// instruction holds the script for a frame beyond the one it lands on, so
// consecutive instructions cannot outrun the per-frame input latch.
//
// The DIPS instruction sets the whole option switch bank at once, and POKE
// writes a value directly into RAM:
//
//	DIPS $c0
//	POKE $02f3 $04
//
// Values may be written as decimal or as hex with a $ or 0x prefix. QUIT
// ends the script early. Lines are commented by prefixing them with two
// dashes (--). Leading and trailing white space is ignored.
//
// Any error in a script results in a log entry and the termination of the
// script.
package macro
