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

// Package memory implements the machine's memory bus. Every address the CPU
// or the vector generator can express resolves to exactly one of: game RAM,
// vector RAM, one of the two ROM areas, a device register, or open bus. The
// memorymap sub-package performs the classification; this package owns the
// backing stores and dispatches device-register access to handler functions
// registered by the machine at construction.
//
// The bus sub-package defines the interfaces through which the processors
// see memory. Neither processor ever references the other; writes to the
// vector generator's trigger register reach it only through a handler
// registered here.
package memory
