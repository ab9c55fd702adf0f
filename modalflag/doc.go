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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes). Modes are implemented as the first argument after any flags
// for the previous mode.
//
// For example, a program invocation that plays a ROM might be:
//
//	gopheroids play -scale 2.0 roms/asteroids.bin
//
// While an invocation of the same program to run a regression test would be:
//
//	gopheroids regress run -verbose
//
// Here, "play" and "regress" are modes and "run" is a sub-mode of
// "regress". Flags between the mode and sub-mode belong to the mode;
// anything after the final mode that isn't a flag is a regular argument.
//
// A Modes instance is prepared with NewArgs(), usually with os.Args[1:].
// Flags and sub-modes are then added and the arguments parsed:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "PERFORMANCE", "REGRESS", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		...
//	}
//
// Each mode handler calls NewMode(), adds its own flags and sub-modes, and
// calls Parse() again. The process repeats for as long as there are
// sub-modes to descend into.
//
// Help is handled automatically: "-help" (or a flag error) prints the flag
// defaults and any sub-modes for the current point in the mode path.
package modalflag
