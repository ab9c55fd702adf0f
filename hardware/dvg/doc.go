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

// Package dvg emulates the digital vector generator, the coprocessor that
// draws the Asteroids screen. The generator is a small fetch-decode-execute
// machine of its own: the CPU assembles a display list of 16-bit words in
// vector memory and pokes the go register; the generator then walks the
// list, steering the display beam.
//
// The instruction set is tiny. VCTR draws a long vector from signed deltas,
// SVEC a short one from two bit deltas, LABS repositions the beam
// absolutely and sets the global binary scale, JSRL/RTSL/JMPL provide
// control flow over a four deep return stack, and HALT stops the show until
// the next trigger. Deltas are scaled by binary shifts only, a detail the
// game's visuals depend on, so the shifts here reproduce the hardware's
// truncation exactly.
//
// The generator runs under a cycle budget so the machine can interleave it
// with the CPU on the shared clock:
//
//	consumed, halted, err := vg.Run(budget)
//
// Budget exhaustion mid-list is invisible to the program: the generator
// picks up exactly where it left off on the next call. Each draw or move
// appends a display.Segment to an accumulation that the machine drains at
// the frame seam.
//
// Beam coordinates are display units in a nominal 1024x1024 space, but
// nothing clips the beam here. The game relies on excursions off the edge
// of the space and on the wrapping of the shift arithmetic; both behave as
// on the hardware.
package dvg
