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

// Package registers implements the registers of the 6502: the general
// purpose 8 bit Register, the 16 bit ProgramCounter and the
// StatusRegister, whose flags are individually addressable booleans.
//
// Arithmetic operations on the Register type return carry and overflow
// information rather than setting flags directly; how flags change is the
// CPU's business, not the register's.
package registers
