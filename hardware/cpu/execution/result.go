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

package execution

import (
	"github.com/hockleyj/gopheroids/hardware/cpu/instructions"
)

// Result records the state of the last instruction executed by the CPU.
type Result struct {
	// a reference to the instruction definition. nil when the result
	// describes an interrupt rather than an instruction
	Defn *instructions.Definition

	// the address at which the instruction began
	Address uint16

	// instruction data is the operand of the instruction. for branch
	// instructions it is the unextended offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but may differ because of page faults and branches
	Cycles int

	// whether an extra cycle was required because of 8bit adder overflow
	PageFault bool

	// whether a branch instruction test passed (ie. branched). testing of
	// this field should be done in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// number of bytes read during instruction decode
	ByteCount int

	// whether this data has been finalised. some fields in this struct are
	// undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Defn = nil
	r.Address = 0
	r.InstructionData = 0
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.ByteCount = 0
	r.Final = false
}
