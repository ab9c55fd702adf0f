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

package memory

import (
	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/hardware/memory/memorymap"
)

// Error patterns for the DebugBus operations.
const (
	UnpeekableAddress = "memory: address (%#04x) is not peekable"
	UnpokeableAddress = "memory: address (%#04x) is not pokeable"
)

// OpenBus is the value returned by a read that no memory area or device
// register claims. On this board the floating bus reads as zero.
const OpenBus = uint8(0x00)

// ReadRegister functions service CPU reads of a single device register.
type ReadRegister func(address uint16) uint8

// WriteRegister functions service CPU writes to a single device register.
type WriteRegister func(address uint16, data uint8)

// Memory is the machine's memory subsystem. It owns the RAM and ROM
// contents outright. Device registers are serviced by handler functions
// registered by the machine at construction; Memory holds no other
// reference to the devices behind them.
type Memory struct {
	ram        []uint8
	vectorRAM  []uint8
	vectorROM  []uint8
	programROM []uint8

	readRegisters  map[uint16]ReadRegister
	writeRegisters map[uint16]WriteRegister
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The ROM arguments are copied; the caller's slices are not retained.
func NewMemory(vectorROM []uint8, programROM []uint8) *Memory {
	mem := &Memory{
		ram:            make([]uint8, memorymap.MemtopRAM-memorymap.OriginRAM+1),
		vectorRAM:      make([]uint8, memorymap.MemtopVectorRAM-memorymap.OriginVectorRAM+1),
		vectorROM:      make([]uint8, memorymap.MemtopVectorROM-memorymap.OriginVectorROM+1),
		programROM:     make([]uint8, memorymap.MemtopProgramROM-memorymap.OriginProgramROM+1),
		readRegisters:  make(map[uint16]ReadRegister),
		writeRegisters: make(map[uint16]WriteRegister),
	}

	copy(mem.vectorROM, vectorROM)
	copy(mem.programROM, programROM)

	return mem
}

// Reset returns both RAM areas to their power-on state. ROM contents and
// register mappings are unaffected.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0x00
	}
	for i := range mem.vectorRAM {
		mem.vectorRAM[i] = 0x00
	}
}

// MapReadRegister registers the handler for reads of the device register at
// the specified address.
func (mem *Memory) MapReadRegister(address uint16, f ReadRegister) {
	ma, _ := memorymap.MapAddress(address)
	mem.readRegisters[ma] = f
}

// MapWriteRegister registers the handler for writes to the device register
// at the specified address.
func (mem *Memory) MapWriteRegister(address uint16, f WriteRegister) {
	ma, _ := memorymap.MapAddress(address)
	mem.writeRegisters[ma] = f
}

// Read is an implementation of the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[ma], nil

	case memorymap.Input:
		if f, ok := mem.readRegisters[ma]; ok {
			return f(ma), nil
		}

	case memorymap.VectorRAM:
		return mem.vectorRAM[ma^memorymap.OriginVectorRAM], nil

	case memorymap.VectorROM:
		return mem.vectorROM[ma^memorymap.OriginVectorROM], nil

	case memorymap.ProgramROM:
		return mem.programROM[ma-memorymap.OriginProgramROM], nil
	}

	return OpenBus, nil
}

// Write is an implementation of the bus.CPUBus interface. Writes to ROM and
// to the input area are silently rejected, as on the hardware.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.ram[ma] = data

	case memorymap.Output:
		if f, ok := mem.writeRegisters[ma]; ok {
			f(ma, data)
		}

	case memorymap.VectorRAM:
		mem.vectorRAM[ma^memorymap.OriginVectorRAM] = data
	}

	return nil
}

// ReadVector is an implementation of the bus.VectorBus interface. The
// address argument is a word index from the base of vector RAM; the two
// bytes of the word are read through the normal address mapping, so a word
// address beyond the end of vector ROM reads as open bus.
func (mem *Memory) ReadVector(address uint16) (uint16, error) {
	ba := memorymap.OriginVectorRAM + (address << 1)

	lo, err := mem.Read(ba)
	if err != nil {
		return 0, err
	}

	hi, err := mem.Read(ba + 1)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// Peek is an implementation of the bus.DebugBus interface. Device registers
// cannot be peeked; peeking must never trigger a read side effect.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.ram[ma], nil

	case memorymap.VectorRAM:
		return mem.vectorRAM[ma^memorymap.OriginVectorRAM], nil

	case memorymap.VectorROM:
		return mem.vectorROM[ma^memorymap.OriginVectorROM], nil

	case memorymap.ProgramROM:
		return mem.programROM[ma-memorymap.OriginProgramROM], nil
	}

	return 0, curated.Errorf(UnpeekableAddress, address)
}

// Poke is an implementation of the bus.DebugBus interface. Only the RAM
// areas can be poked; ROM contents are immutable once loaded.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.ram[ma] = data
		return nil

	case memorymap.VectorRAM:
		mem.vectorRAM[ma^memorymap.OriginVectorRAM] = data
		return nil
	}

	return curated.Errorf(UnpokeableAddress, address)
}
