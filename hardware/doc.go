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

// Package hardware assembles the complete machine from the components in
// its sub-packages: the 6502, the vector generator, the memory system, the
// cabinet switches and the sound latches.
//
// The Machine type is the root of the assembly. Everything on the board
// shares one 1.5MHz clock and the Machine is what turns that clock: Step()
// advances one CPU instruction with the vector generator interleaved cycle
// for cycle, and StepFrame() advances to the next 25000 cycle frame
// boundary, latching input on the way in and delivering the accumulated
// vector segments to the attached renderers on the way out.
//
// Timing is entirely counted, never measured. Running the same ROM with the
// same sequence of switch snapshots always produces the same sequence of
// frames, cycle for cycle, which is what the digest-based regression
// packages rely on. Throttling to wall-clock time is the business of the
// front end, not of this package.
package hardware
