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

// Package clocks defines the constant values that drive the timing of the
// emulated machine. The CPU and the vector generator share the 1.5MHz clock
// domain; everything else on the board is derived from it by division.
//
// Values taken from the schematics and the published hardware references.
package clocks

// CPU and vector generator clock in Hz.
const Master = 1500000

// FramesPerSecond is the nominal display refresh rate.
const FramesPerSecond = 60

// PerFrame is the number of CPU cycles in one video frame.
const PerFrame = Master / FramesPerSecond

// PerTick is the number of CPU cycles between updates of the 3kHz timer
// register.
const PerTick = 500

// PerNMI is the number of CPU cycles between periodic NMIs. The interrupt
// runs at 250Hz and is the heartbeat of the game program.
const PerNMI = 6000
