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

// Package bus defines the memory bus concept. The CPU and the vector
// generator never hold references to one another; each sees only the bus
// interface it needs. The memory package implements all of them.
package bus

// CPUBus defines the operations for the memory system when accessed from
// the CPU. The memory system maps the address to the correct memory area or
// device register, meaning the CPU need not care what it is addressing.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// VectorBus defines the operations for the memory system when accessed from
// the vector generator. The vector generator addresses memory as 16-bit
// little-endian words, indexed from the base of vector RAM. Word addresses
// beyond the vector ROM read as open bus, like any unmapped access.
type VectorBus interface {
	ReadVector(address uint16) (uint16, error)
}

// DebugBus defines the meta-operations for the memory system. These
// operations are outside of the normal operation of the machine: they have
// no side effects and no timing consequences. Tests and diagnostic tools
// use these.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}
