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

// Package cpu emulates the MOS 6502 as fitted to the Asteroids PCB. Create
// an instance of the CPU with NewCPU(), loading the reset vector with
// LoadPCIndirect() as required:
//
//	mc := cpu.NewCPU(mem)
//	mc.LoadPCIndirect(memorymap.VectorReset)
//
// Note that the CPU does not touch the program counter on Reset(). This is
// because some testing contexts prefer to load the PC explicitly. The
// hardware package drives the sequence above and charges the documented
// reset cycles itself.
//
// The main event of the package is the ExecuteInstruction() function. This
// will execute exactly one instruction, or service exactly one pending
// interrupt, returning control to the caller afterwards. The supplied
// callback function is run after every consumed cycle, which is how the
// rest of the machine keeps step with the CPU.
//
// Interrupts are raised with RaiseNMI(), which latches the edge until
// serviced, and SignalIRQ(), which sets the level of the maskable line.
// Both are polled at the top of ExecuteInstruction() before any opcode is
// fetched.
//
// The emulation is cycle accurate for the documented instruction set,
// including phantom bus accesses and the extra cycles charged when
// indexing or branching crosses a page boundary. Opcodes outside the
// documented set cause ExecuteInstruction() to fail with a decode fault;
// the Asteroids program never executes them, so any occurrence indicates
// emulation drift and is better caught loudly than guessed at.
//
// Detailed results of each instruction can be found in the LastResult
// field. For interrupts, the Defn field of the result is nil. See the
// execution package for more details.
package cpu
