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

// Package romloader is used to specify the ROM image that is to be loaded
// into the emulated machine.
//
// An image is a single 8K file: the 2K vector ROM followed by the 6K
// program ROM, in address order. Dumps distributed as separate EPROM files
// need to be concatenated in that order first.
//
// The simplest use:
//
//	cl := romloader.NewLoader("roms/asteroids.bin")
//	err := cl.Load()
//
// After a successful Load() the Hash field holds the SHA1 of the image and
// the VectorROM() and ProgramROM() functions return the two pieces the
// memory system wants. A Loader with a Hash set before Load() will refuse
// an image that does not match, which is how the regression database pins
// its entries to the exact ROM they were recorded with.
package romloader
