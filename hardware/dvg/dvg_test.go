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

package dvg_test

import (
	"testing"

	"github.com/hockleyj/gopheroids/display"
	"github.com/hockleyj/gopheroids/hardware/dvg"
	"github.com/hockleyj/gopheroids/test"
)

// mockVectorMem is a flat word-addressed memory, enough for the generator
// to fetch from
type mockVectorMem struct {
	words []uint16
}

func newMockVectorMem() *mockVectorMem {
	return &mockVectorMem{words: make([]uint16, 0x1000)}
}

func (mem *mockVectorMem) ReadVector(address uint16) (uint16, error) {
	if int(address) >= len(mem.words) {
		return 0, nil
	}
	return mem.words[address], nil
}

func (mem *mockVectorMem) put(origin uint16, words ...uint16) uint16 {
	for i, w := range words {
		mem.words[origin+uint16(i)] = w
	}
	return origin + uint16(len(words))
}

// word builders, for legible test programs

func vctr(scale uint16, dx int16, dy int16, z uint8) (uint16, uint16) {
	w1 := scale << 12
	if dy < 0 {
		w1 |= 0x0400
		dy = -dy
	}
	w1 |= uint16(dy) & 0x03ff

	w2 := uint16(z) << 12
	if dx < 0 {
		w2 |= 0x0400
		dx = -dx
	}
	w2 |= uint16(dx) & 0x03ff

	return w1, w2
}

func labs(x int16, y int16, scale uint16) (uint16, uint16) {
	w1 := 0xa000 | (uint16(y) & 0x07ff)
	w2 := (scale << 12) | (uint16(x) & 0x07ff)
	return w1, w2
}

func svec(scale uint16, dx int16, dy int16, z uint8) uint16 {
	w := uint16(0xf000)
	w |= (scale & 0x1) << 11
	w |= (scale & 0x2) << 2
	if dy < 0 {
		w |= 0x0400
		dy = -dy
	}
	w |= (uint16(dy) & 0x3) << 8
	if dx < 0 {
		w |= 0x0004
		dx = -dx
	}
	w |= uint16(dx) & 0x3
	w |= (uint16(z) & 0xf) << 4
	return w
}

func jsrl(address uint16) uint16 {
	return 0xc000 | (address & 0x0fff)
}

func rtsl() uint16 {
	return 0xd000
}

func jmpl(address uint16) uint16 {
	return 0xe000 | (address & 0x0fff)
}

func halt() uint16 {
	return 0xb000
}

// run to completion, failing the test on error or budget exhaustion
func runList(t *testing.T, vg *dvg.DVG) int {
	t.Helper()
	consumed, halted, err := vg.Run(100000)
	if err != nil {
		t.Fatal(err)
	}
	if !halted {
		t.Fatal("vector list did not halt")
	}
	return consumed
}

func TestDrawList(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	// reposition to the middle of the screen, draw a short horizontal
	// line, halt
	origin := uint16(1)
	origin = mem.put(origin, 0xa200, 0x0200) // LABS y=512 x=512 scale=0
	origin = mem.put(origin, 0x6000, 0xf100) // VCTR dy=0 dx=+256 scale=6 z=15
	mem.put(origin, halt())

	vg.Trigger(1)
	consumed := runList(t, vg)

	// 16 for the LABS; 16 for the VCTR plus 32 cycles of beam travel; 8
	// for the HALT
	test.Equate(t, consumed, 72)
	test.Equate(t, vg.PC, 6)
	test.Equate(t, vg.X, 544)
	test.Equate(t, vg.Y, 512)

	segs := vg.Segments()
	test.Equate(t, len(segs), 2)

	test.Equate(t, segs[0].Drawn(), false)
	test.Equate(t, segs[0].X0, 0)
	test.Equate(t, segs[0].Y0, 0)
	test.Equate(t, segs[0].X1, 512)
	test.Equate(t, segs[0].Y1, 512)

	test.Equate(t, segs[1].Drawn(), true)
	test.Equate(t, segs[1].X0, 512)
	test.Equate(t, segs[1].Y0, 512)
	test.Equate(t, segs[1].X1, 544)
	test.Equate(t, segs[1].Y1, 512)
	test.Equate(t, segs[1].Z, 15)

	// nothing more to do until the next trigger
	consumed, halted, err := vg.Run(1000)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, consumed, 0)
	test.Equate(t, halted, true)
}

func TestNegativeDeltas(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	origin := uint16(1)
	w1, w2 := vctr(9, -64, -32, 0)
	origin = mem.put(origin, w1, w2)
	mem.put(origin, halt())

	vg.Trigger(1)
	consumed := runList(t, vg)

	// beam travel is counted on the dominant axis
	test.Equate(t, consumed, 88)
	test.Equate(t, vg.X, -64)
	test.Equate(t, vg.Y, -32)

	segs := vg.Segments()
	test.Equate(t, len(segs), 1)
	test.Equate(t, segs[0].Drawn(), false)
}

func TestBudgetResume(t *testing.T) {
	mem := newMockVectorMem()

	origin := uint16(1)
	origin = mem.put(origin, 0xa200, 0x0200)
	origin = mem.put(origin, 0x6000, 0xf100)
	mem.put(origin, halt())

	// run once without interruption for reference
	vg := dvg.NewDVG(mem)
	vg.Trigger(1)
	runList(t, vg)
	reference := make([]display.Segment, len(vg.Segments()))
	copy(reference, vg.Segments())

	// run again in small instalments
	vg = dvg.NewDVG(mem)
	vg.Trigger(1)

	consumed, halted, err := vg.Run(20)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, consumed, 20)
	test.Equate(t, halted, false)

	consumed, halted, err = vg.Run(40)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, consumed, 40)
	test.Equate(t, halted, false)

	consumed, halted, err = vg.Run(100)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, consumed, 12)
	test.Equate(t, halted, true)

	// the interrupted run must produce exactly the same segments
	segs := vg.Segments()
	test.Equate(t, len(segs), len(reference))
	for i := range segs {
		if segs[i] != reference[i] {
			t.Errorf("segment %d differs after budget split (%s - wanted %s)", i, segs[i], reference[i])
		}
	}
}

func TestSubroutines(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	mem.put(1, jsrl(16))
	mem.put(2, halt())
	mem.put(16, 0x9004, 0xa004, rtsl()) // VCTR dy=+4 dx=+4 scale=9 z=10

	vg.Trigger(1)
	consumed := runList(t, vg)

	test.Equate(t, consumed, 44)
	test.Equate(t, vg.SP, 0)
	test.Equate(t, vg.PC, 3)

	segs := vg.Segments()
	test.Equate(t, len(segs), 1)
	test.Equate(t, segs[0].X1, 4)
	test.Equate(t, segs[0].Y1, 4)
	test.Equate(t, segs[0].Z, 10)
}

func TestJump(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	mem.put(1, jmpl(8))
	mem.put(8, halt())

	vg.Trigger(1)
	consumed := runList(t, vg)

	test.Equate(t, consumed, 16)
	test.Equate(t, vg.PC, 9)
}

func TestReturnStackWrap(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	// five nested calls. the stack is four deep with a two bit pointer,
	// so the fifth push overwrites the first
	mem.put(1, jsrl(16))
	mem.put(16, jsrl(32))
	mem.put(32, jsrl(48))
	mem.put(48, jsrl(64))
	mem.put(64, jsrl(80))
	mem.put(80, halt())

	vg.Trigger(1)
	consumed := runList(t, vg)

	test.Equate(t, consumed, 48)
	test.Equate(t, vg.SP, 1)
	if vg.Stack != [4]uint16{65, 17, 33, 49} {
		t.Errorf("unexpected stack contents after overflow wrap: %v", vg.Stack)
	}

	// a return with nothing on the stack wraps the pointer the other way
	mem = newMockVectorMem()
	vg = dvg.NewDVG(mem)

	mem.put(0, halt())
	mem.put(1, rtsl())

	vg.Trigger(1)
	consumed = runList(t, vg)

	test.Equate(t, consumed, 16)
	test.Equate(t, vg.SP, 3)
	test.Equate(t, vg.PC, 1)
}

func TestShortVectors(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	origin := uint16(1)
	origin = mem.put(origin, svec(0, 1, 1, 12))
	origin = mem.put(origin, svec(3, -2, 0, 5))
	mem.put(origin, halt())

	vg.Trigger(1)
	consumed := runList(t, vg)

	// 8+2 for the first draw, 8+32 for the second, 8 for the HALT
	test.Equate(t, consumed, 58)

	segs := vg.Segments()
	test.Equate(t, len(segs), 2)

	// a short vector delta unit is two display units at scale zero
	test.Equate(t, segs[0].X1, 2)
	test.Equate(t, segs[0].Y1, 2)
	test.Equate(t, segs[0].Z, 12)

	test.Equate(t, segs[1].X1, -30)
	test.Equate(t, segs[1].Y1, 2)
	test.Equate(t, segs[1].Z, 5)
}

func TestGlobalScale(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	origin := uint16(1)

	// scale one doubles every delta
	w1, w2 := labs(0, 0, 1)
	origin = mem.put(origin, w1, w2)
	w1, w2 = vctr(9, 16, 0, 15)
	origin = mem.put(origin, w1, w2)

	// scale fifteen halves every delta
	w1, w2 = labs(0, 0, 15)
	origin = mem.put(origin, w1, w2)
	w1, w2 = vctr(9, 16, 0, 15)
	origin = mem.put(origin, w1, w2)

	// absolute coordinates are eleven bit two's complement
	w1, w2 = labs(-100, -1, 0)
	origin = mem.put(origin, w1, w2)

	mem.put(origin, halt())

	vg.Trigger(1)
	consumed := runList(t, vg)

	test.Equate(t, consumed, 128)
	test.Equate(t, vg.Scale, 0)
	test.Equate(t, vg.X, -100)
	test.Equate(t, vg.Y, -1)

	segs := vg.Segments()
	test.Equate(t, len(segs), 5)
	test.Equate(t, segs[1].X1, 32)
	test.Equate(t, segs[3].X1, 8)
	test.Equate(t, segs[4].X1, -100)
	test.Equate(t, segs[4].Y1, -1)
}

func TestTrigger(t *testing.T) {
	mem := newMockVectorMem()
	vg := dvg.NewDVG(mem)

	// a fresh generator idles
	consumed, halted, err := vg.Run(1000)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, consumed, 0)
	test.Equate(t, halted, true)

	origin := uint16(1)
	origin = mem.put(origin, 0xa200, 0x0200)
	origin = mem.put(origin, 0x6000, 0xf100)
	mem.put(origin, halt())

	vg.Trigger(1)
	test.Equate(t, vg.Halted(), false)
	runList(t, vg)

	// a second trigger resets beam, scale and stack and the list runs
	// identically
	first := make([]display.Segment, len(vg.Segments()))
	copy(first, vg.Segments())

	vg.ResetSegments()
	vg.Trigger(1)
	test.Equate(t, vg.X, 0)
	test.Equate(t, vg.Y, 0)
	test.Equate(t, vg.Scale, 0)
	test.Equate(t, vg.SP, 0)
	test.Equate(t, vg.PC, 1)

	runList(t, vg)
	segs := vg.Segments()
	test.Equate(t, len(segs), len(first))
	for i := range segs {
		if segs[i] != first[i] {
			t.Errorf("segment %d differs after retrigger (%s - wanted %s)", i, segs[i], first[i])
		}
	}
}
