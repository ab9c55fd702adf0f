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

package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Input:
		return "Input"
	case Output:
		return "Output"
	case VectorRAM:
		return "VectorRAM"
	case VectorROM:
		return "VectorROM"
	case ProgramROM:
		return "ProgramROM"
	}

	return "undefined"
}

// The different memory areas in the machine. Input covers the switch and
// status registers; Output covers the write-only latches.
const (
	Undefined Area = iota
	RAM
	Input
	Output
	VectorRAM
	VectorROM
	ProgramROM
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within, and forcing the address into the normalised range,
// is all handled by the MapAddress() function.
const (
	OriginRAM        = uint16(0x0000)
	MemtopRAM        = uint16(0x03ff)
	OriginInput      = uint16(0x2000)
	MemtopInput      = uint16(0x2fff)
	OriginOutput     = uint16(0x3000)
	MemtopOutput     = uint16(0x3fff)
	OriginVectorRAM  = uint16(0x4000)
	MemtopVectorRAM  = uint16(0x4fff)
	OriginVectorROM  = uint16(0x5000)
	MemtopVectorROM  = uint16(0x57ff)
	OriginProgramROM = uint16(0x6800)
	MemtopProgramROM = uint16(0x7fff)
)

// Memtop is the topmost address of the bus. The address bus is 15 bits
// wide; the CPU's sixteenth address bit is not decoded by the board.
const Memtop = uint16(0x7fff)

// The CPU's interrupt and reset vectors. After masking, these land in the
// top six bytes of program ROM.
const (
	VectorNMI   = uint16(0xfffa)
	VectorReset = uint16(0xfffc)
	VectorIRQ   = uint16(0xfffe)
)

// MapAddress translates the address argument to its normalised range and
// identifies the memory area it belongs to. An address should be passed
// through this function before accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	address &= Memtop

	switch {
	case address <= MemtopRAM:
		return address, RAM
	case address >= OriginInput && address <= MemtopInput:
		return address, Input
	case address >= OriginOutput && address <= MemtopOutput:
		return address, Output
	case address >= OriginVectorRAM && address <= MemtopVectorRAM:
		return address, VectorRAM
	case address >= OriginVectorROM && address <= MemtopVectorROM:
		return address, VectorROM
	case address >= OriginProgramROM:
		return address, ProgramROM
	}

	return address, Undefined
}
