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

package dvg

import (
	"fmt"

	"github.com/hockleyj/gopheroids/display"
	"github.com/hockleyj/gopheroids/hardware/memory/bus"
)

// Opcodes occupy the top nibble of the first instruction word. Values 0x0
// to 0x9 all decode to VCTR, with the value doubling as the draw's own
// scale field.
const (
	opLABS = 0xa
	opHALT = 0xb
	opJSRL = 0xc
	opRTSL = 0xd
	opJMPL = 0xe
	opSVEC = 0xf
)

// every instruction word fetched from vector memory costs eight cycles of
// the 1.5MHz clock. draws cost extra, depending on beam travel
const cyclesPerWord = 8

// DVG emulates the digital vector generator. It is a state machine in its
// own right, fetching instruction words from vector memory and moving the
// display beam around the screen.
type DVG struct {
	mem bus.VectorBus

	// program counter, in words from the base of vector RAM
	PC uint16

	// beam position in display units
	X int16
	Y int16

	// global binary scale from the most recent LABS, expressed as a shift
	// distance. positive distances divide, negative multiply
	Scale int16

	// the return stack. the stack pointer is two bits wide on the
	// hardware, so both overflow and underflow simply wrap
	Stack [4]uint16
	SP    uint8

	// the generator idles once it has fetched a HALT, until the next call
	// to Trigger()
	halted bool

	// cycles still owed for the most recently executed instruction. the
	// instruction's effects are applied on fetch and the time cost is paid
	// off as the budget allows
	pending int

	// segments emitted since the last call to ResetSegments()
	segments []display.Segment
}

// NewDVG is the preferred method of initialisation for the DVG type. The
// generator begins halted, awaiting a trigger.
func NewDVG(mem bus.VectorBus) *DVG {
	return &DVG{
		mem:      mem,
		halted:   true,
		segments: make([]display.Segment, 0, 256),
	}
}

func (vg *DVG) String() string {
	return fmt.Sprintf("PC=%#04x X=%d Y=%d SCALE=%d SP=%d", vg.PC, vg.X, vg.Y, vg.Scale, vg.SP)
}

// Reset returns the generator to its power-on state.
func (vg *DVG) Reset() {
	vg.PC = 0
	vg.X = 0
	vg.Y = 0
	vg.Scale = 0
	vg.Stack = [4]uint16{}
	vg.SP = 0
	vg.halted = true
	vg.pending = 0
	vg.segments = vg.segments[:0]
}

// Trigger starts a vector list run from the specified word address. Beam
// position, scale and the return stack are reset, as they are by the
// hardware's go signal.
func (vg *DVG) Trigger(address uint16) {
	vg.PC = address & 0x0fff
	vg.X = 0
	vg.Y = 0
	vg.Scale = 0
	vg.Stack = [4]uint16{}
	vg.SP = 0
	vg.halted = false
	vg.pending = 0
}

// Halted is true once a fetched HALT instruction has run its course. The
// machine's status register reflects this value.
func (vg *DVG) Halted() bool {
	return vg.halted && vg.pending == 0
}

// Segments returns the segments emitted since the last call to
// ResetSegments(). The returned slice remains valid until the generator
// next runs after a ResetSegments().
func (vg *DVG) Segments() []display.Segment {
	return vg.segments
}

// ResetSegments begins a new segment accumulation.
func (vg *DVG) ResetSegments() {
	vg.segments = vg.segments[:0]
}

// Run advances the generator by no more than cycleBudget cycles, returning
// the number of cycles actually consumed and whether the generator is
// halted. A run interrupted by budget exhaustion resumes exactly on the
// next call.
func (vg *DVG) Run(cycleBudget int) (int, bool, error) {
	consumed := 0

	for consumed < cycleBudget {
		// pay off the cost of the most recent instruction before anything
		// else
		if vg.pending > 0 {
			n := vg.pending
			if n > cycleBudget-consumed {
				n = cycleBudget - consumed
			}
			vg.pending -= n
			consumed += n
			continue
		}

		if vg.halted {
			break
		}

		cost, err := vg.executeInstruction()
		if err != nil {
			return consumed, vg.Halted(), err
		}
		vg.pending = cost
	}

	return consumed, vg.Halted(), nil
}

// fetch the word at the program counter, incrementing the counter. the
// counter is twelve bits wide and wraps.
func (vg *DVG) fetch() (uint16, error) {
	w, err := vg.mem.ReadVector(vg.PC)
	if err != nil {
		return 0, err
	}
	vg.PC = (vg.PC + 1) & 0x0fff
	return w, nil
}

// executeInstruction fetches and performs one instruction, returning its
// cost in cycles.
func (vg *DVG) executeInstruction() (int, error) {
	w1, err := vg.fetch()
	if err != nil {
		return 0, err
	}

	op := w1 >> 12

	switch op {
	case opLABS:
		w2, err := vg.fetch()
		if err != nil {
			return 0, err
		}

		// beam coordinates are eleven bit two's complement, low ten bits
		// of each word plus a sign bit
		y := decodeAbsolute(w1)
		x := decodeAbsolute(w2)

		// the global scale is a four bit binary exponent. low values
		// multiply, high values divide
		sf := int16((w2 & 0xf000) >> 12)
		if sf&0x8 == 0x0 {
			vg.Scale = -sf
		} else {
			vg.Scale = 16 - sf
		}

		// reposition with the pen up
		vg.line(x, y, 0)

		return 2 * cyclesPerWord, nil

	case opHALT:
		vg.halted = true
		return cyclesPerWord, nil

	case opJSRL:
		vg.Stack[vg.SP] = vg.PC
		vg.SP = (vg.SP + 1) & 0x3
		vg.PC = w1 & 0x0fff
		return cyclesPerWord, nil

	case opRTSL:
		vg.SP = (vg.SP - 1) & 0x3
		vg.PC = vg.Stack[vg.SP]
		return cyclesPerWord, nil

	case opJMPL:
		vg.PC = w1 & 0x0fff
		return cyclesPerWord, nil

	case opSVEC:
		// the short vector squeezes everything into one word. deltas are
		// two bits, placed so that the common shifter logic applies; the
		// local scale field is split across bits 11 and 3
		sf := int16((w1&0x0800)>>11 + (w1&0x0008)>>2)
		dy := w1 & 0x0300
		ys := w1&0x0400 == 0x0400
		dx := (w1 & 0x0003) << 8
		xs := w1&0x0004 == 0x0004
		z := uint8((w1 & 0x00f0) >> 4)

		dist := 7 - sf + vg.Scale
		mx := shift(dx, dist)
		my := shift(dy, dist)
		vg.line(applyDelta(vg.X, mx, xs), applyDelta(vg.Y, my, ys), z)

		return cyclesPerWord + travel(mx, my), nil

	default: // VCTR
		w2, err := vg.fetch()
		if err != nil {
			return 0, err
		}

		dy := w1 & 0x03ff
		ys := w1&0x0400 == 0x0400
		dx := w2 & 0x03ff
		xs := w2&0x0400 == 0x0400
		z := uint8((w2 & 0xf000) >> 12)

		// the opcode nibble is the draw's own scale, on top of the global
		// scale
		dist := 9 - int16(op) + vg.Scale
		mx := shift(dx, dist)
		my := shift(dy, dist)
		vg.line(applyDelta(vg.X, mx, xs), applyDelta(vg.Y, my, ys), z)

		return 2*cyclesPerWord + travel(mx, my), nil
	}
}

// line emits a segment from the current beam position to (x,y) and moves
// the beam there. A zero z is a pen-up move.
func (vg *DVG) line(x int16, y int16, z uint8) {
	vg.segments = append(vg.segments, display.Segment{
		X0: vg.X, Y0: vg.Y,
		X1: x, Y1: y,
		Z: z,
	})
	vg.X = x
	vg.Y = y
}

// decodeAbsolute converts the eleven bit two's complement coordinate field
// of a LABS word.
func decodeAbsolute(w uint16) int16 {
	v := w & 0x03ff
	if w&0x0400 == 0x0400 {
		return -int16((v ^ 0x03ff) + 1)
	}
	return int16(v)
}

// shift applies a signed binary shift distance to a delta magnitude.
// positive distances divide, negative multiply.
func shift(v uint16, dist int16) uint16 {
	if dist >= 0 {
		return v >> uint16(dist)
	}
	return v << uint16(-dist)
}

// applyDelta moves a beam coordinate by a shifted magnitude in the
// direction of the sign bit.
func applyDelta(pos int16, mag uint16, neg bool) int16 {
	if neg {
		return pos - int16(mag)
	}
	return pos + int16(mag)
}

// travel is the beam movement cost of a draw. the beam covers one display
// unit per clock on its dominant axis.
func travel(mx uint16, my uint16) int {
	if mx > my {
		return int(mx)
	}
	return int(my)
}
