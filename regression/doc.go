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

// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database, the tests can be rerun automatically
// and checked for consistency.
//
// The digest regression runs a ROM for a set number of frames, hashing the
// vector output and/or the sound output as it goes. Because the machine is
// deterministic the hash is too, and any change to the hash means the
// emulation has changed behaviour for that ROM.
//
// A digest regression can optionally be driven by a macro script. The script
// presses buttons and flips switches on a frame-by-frame schedule, so a test
// can reach beyond the attract mode and into the game proper. Scripts are
// copied into the regression scripts directory when the test is added and
// removed again when the test is deleted.
//
// Regression tests are run from the command line. For example, adding a test
// that runs a ROM for 1000 frames:
//
//	gopheroids regress add -frames 1000 roms/asteroids.bin
//
// And running all tests in the database:
//
//	gopheroids regress run
package regression
