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

// Package memorymap describes the address layout of the machine. The
// MapAddress() function classifies an address into one of the memory areas:
//
//	0x0000 to 0x03ff    game RAM (1K)
//	0x2000 to 0x2fff    input registers (switches, timer, status)
//	0x3000 to 0x3fff    output latches (triggers, lamps, sound)
//	0x4000 to 0x4fff    vector RAM (4K)
//	0x5000 to 0x57ff    vector ROM (2K)
//	0x6800 to 0x7fff    program ROM (6K)
//
// Addresses outside these areas are undefined and behave as open bus. The
// board only decodes fifteen address lines so, for example, the CPU's reset
// vector at 0xfffc reads from 0x7ffc at the top of program ROM.
package memorymap
