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

package cpu_test

import (
	"testing"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/hardware/cpu"
	"github.com/hockleyj/gopheroids/test"
)

// mockMem is a simple flat memory space with no mirroring. the CPU tests
// do not need the full machine address map, just somewhere to put
// instructions and data
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{}
	mem.internal = make([]uint8, 0x10000)
	return mem
}

// Clear sets all memory locations to zero
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

// putInstructions is a generalised function for loading bytes into memory,
// returning the address of the next unused location
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// assert checks the value of a memory location
func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.internal[address]
	if d != value {
		t.Errorf("memory assertion failed (%#04x = %#02x, wanted %#02x)", address, d, value)
	}
}

// step executes one instruction and checks the result for consistency.
// not suitable for interrupt steps, which have no instruction definition
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	origin := uint16(0)
	mem.putInstructions(origin, 0x38, 0x18, 0xf8, 0xd8, 0x78, 0x58)

	// SEC
	step(t, mc)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.LastResult.Cycles, 2)

	// CLC
	step(t, mc)
	test.Equate(t, mc.Status.Carry, false)

	// SED
	step(t, mc)
	test.Equate(t, mc.Status.DecimalMode, true)

	// CLD
	step(t, mc)
	test.Equate(t, mc.Status.DecimalMode, false)

	// SEI
	step(t, mc)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// CLI
	step(t, mc)
	test.Equate(t, mc.Status.InterruptDisable, false)
}

func testRegisterInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa9, 0x00, // LDA #$00
		0xa2, 0x80, // LDX #$80
		0xa0, 0x7f, // LDY #$7f
		0xa9, 0x80, // LDA #$80
		0xaa,       // TAX
		0x9a,       // TXS
		0xa2, 0x05, // LDX #$05
		0xba, // TSX
		0x98, // TYA
		0x8a, // TXA
		0xa8, // TAY
		0xe8, // INX
		0xc8, // INY
		0xca, // DEX
		0x88, // DEY
	)

	// LDA #$00
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Sign, false)
	test.Equate(t, mc.LastResult.Cycles, 2)

	// LDX #$80
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x80)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Sign, true)

	// LDY #$7f
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x7f)
	test.Equate(t, mc.Status.Sign, false)

	// LDA #$80, TAX
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x80)
	test.Equate(t, mc.Status.Sign, true)

	// TXS. the stack pointer takes the value of X but the status register
	// is unaffected
	mc.Status.Sign = false
	step(t, mc)
	test.Equate(t, mc.SP.Value(), 0x80)
	test.Equate(t, mc.Status.Sign, false)

	// LDX #$05, TSX
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x80)
	test.Equate(t, mc.Status.Sign, true)

	// TYA
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x7f)

	// TXA
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x80)

	// TAY
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x80)

	// INX, INY
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x81)
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x81)

	// DEX, DEY
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x80)
	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x80)
}

func testArithmeticInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	origin := uint16(0)
	mem.putInstructions(origin,
		0x18,       // CLC
		0xa9, 0x01, // LDA #$01
		0x69, 0x01, // ADC #$01
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #$01
		0xb8,       // CLV
		0x38,       // SEC
		0xa9, 0x08, // LDA #$08
		0xe9, 0x02, // SBC #$02
		0x18,       // CLC
		0xa9, 0x08, // LDA #$08
		0xe9, 0x02, // SBC #$02
		0x38,       // SEC
		0xa9, 0x00, // LDA #$00
		0xe9, 0x01, // SBC #$01
	)

	// CLC, LDA #$01, ADC #$01
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Overflow, false)

	// LDA #$7f, ADC #$01. two positive operands summing to a negative
	// result means overflow
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x80)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.Carry, false)

	// CLV
	step(t, mc)
	test.Equate(t, mc.Status.Overflow, false)

	// SEC, LDA #$08, SBC #$02
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x06)
	test.Equate(t, mc.Status.Carry, true)

	// CLC, LDA #$08, SBC #$02. a clear carry means an extra borrow
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x05)
	test.Equate(t, mc.Status.Carry, true)

	// SEC, LDA #$00, SBC #$01
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	origin := uint16(0)
	mem.putInstructions(origin,
		0xf8,       // SED
		0x38,       // SEC
		0xa9, 0x20, // LDA #$20
		0xe9, 0x01, // SBC #$01
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
		0x18,       // CLC
		0xa9, 0x99, // LDA #$99
		0x69, 0x01, // ADC #$01
		0x38,       // SEC
		0xa9, 0x00, // LDA #$00
		0xe9, 0x01, // SBC #$01
		0xd8, // CLD
	)

	// SED, SEC, LDA #$20, SBC #$01. the subtraction borrows through both
	// digits
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x19)
	test.Equate(t, mc.Status.Carry, true)

	// CLC, ADC #$01
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x20)
	test.Equate(t, mc.Status.Carry, false)

	// CLC, LDA #$99, ADC #$01. note that the zero flag reflects the
	// binary sum before decimal adjustment, which is how the NMOS part
	// behaves
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, false)

	// SEC, LDA #$00, SBC #$01
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x99)
	test.Equate(t, mc.Status.Carry, false)

	// CLD
	step(t, mc)
	test.Equate(t, mc.Status.DecimalMode, false)
}

func testBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0080, 0xc0)

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa9, 0x21, // LDA #$21
		0x29, 0x01, // AND #$01
		0x09, 0xfe, // ORA #$fe
		0x49, 0xff, // EOR #$ff
		0xa9, 0x0f, // LDA #$0f
		0x24, 0x80, // BIT $80
	)

	// LDA #$21, AND #$01
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)

	// ORA #$fe
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
	test.Equate(t, mc.Status.Sign, true)

	// EOR #$ff
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Zero, true)

	// LDA #$0f, BIT $80. sign and overflow come from the memory operand;
	// zero from the AND of operand and accumulator. the accumulator itself
	// is unchanged
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x0f)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.LastResult.Cycles, 3)
}

func testShiftInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0090, 0x81)

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa9, 0xff, // LDA #$ff
		0x0a,       // ASL A
		0x4a,       // LSR A
		0x2a,       // ROL A
		0x6a,       // ROR A
		0x06, 0x90, // ASL $90
		0x66, 0x90, // ROR $90
		0xe6, 0x90, // INC $90
		0xc6, 0x90, // DEC $90
		0xa2, 0x01, // LDX #$01
		0xfe, 0xff, 0x03, // INC $03ff,X
	)

	// LDA #$ff, ASL A
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xfe)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.LastResult.Cycles, 2)

	// LSR A
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x7f)
	test.Equate(t, mc.Status.Carry, false)

	// ROL A
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xfe)
	test.Equate(t, mc.Status.Carry, false)

	// ROR A
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x7f)
	test.Equate(t, mc.Status.Carry, false)

	// ASL $90
	step(t, mc)
	mem.assert(t, 0x0090, 0x02)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// ROR $90. the carry from the previous shift rotates into the top bit
	step(t, mc)
	mem.assert(t, 0x0090, 0x81)
	test.Equate(t, mc.Status.Carry, false)

	// INC $90, DEC $90
	step(t, mc)
	mem.assert(t, 0x0090, 0x82)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.LastResult.Cycles, 5)
	step(t, mc)
	mem.assert(t, 0x0090, 0x81)

	// LDX #$01, INC $03ff,X. indexed read-modify-write instructions
	// always pay the full cycle price
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0400, 0x01)
	test.Equate(t, mc.LastResult.Cycles, 7)
}

func testCompareInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa9, 0x40, // LDA #$40
		0xc9, 0x40, // CMP #$40
		0xc9, 0x41, // CMP #$41
		0xc9, 0x3f, // CMP #$3f
		0xa2, 0x10, // LDX #$10
		0xe0, 0x10, // CPX #$10
		0xa0, 0x08, // LDY #$08
		0xc0, 0x09, // CPY #$09
	)

	// LDA #$40, CMP #$40
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Sign, false)

	// CMP #$41
	step(t, mc)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)

	// CMP #$3f
	step(t, mc)
	test.Equate(t, mc.Status.Carry, true)
	test.Equate(t, mc.Status.Zero, false)

	// the accumulator is not disturbed by comparison
	test.Equate(t, mc.A.Value(), 0x40)

	// LDX #$10, CPX #$10
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)

	// LDY #$08, CPY #$09
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)
}

func testAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0034, 0x56)
	mem.putInstructions(0x0070, 0x7a, 0x33)

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa5, 0x34, // LDA $34
		0xa2, 0xf0, // LDX #$f0
		0xb5, 0x80, // LDA $80,X
		0xa0, 0x02, // LDY #$02
		0xb6, 0x6f, // LDX $6f,Y
	)

	// LDA $34
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x56)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// LDX #$f0, LDA $80,X. the indexed address wraps around the zero page
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x7a)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDY #$02, LDX $6f,Y
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x33)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// absolute addressing, with and without page crossing
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x1234, 0x99)
	mem.putInstructions(0x10f5, 0x01)
	mem.putInstructions(0x1110, 0x02)

	origin = 0
	mem.putInstructions(origin,
		0xad, 0x34, 0x12, // LDA $1234
		0xa2, 0x05, // LDX #$05
		0xbd, 0xf0, 0x10, // LDA $10f0,X
		0xa2, 0x20, // LDX #$20
		0xbd, 0xf0, 0x10, // LDA $10f0,X
		0xa0, 0x20, // LDY #$20
		0xb9, 0xf0, 0x10, // LDA $10f0,Y
	)

	// LDA $1234
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x99)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX #$05, LDA $10f0,X. no page crossing
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX #$20, LDA $10f0,X. indexing crosses into the next page,
	// costing a cycle
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// LDY #$20, LDA $10f0,Y
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// indirect addressing
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0024, 0x00, 0x30)
	mem.putInstructions(0x3000, 0x44)
	mem.putInstructions(0x0040, 0xf0, 0x10)
	mem.putInstructions(0x10f5, 0x01)
	mem.putInstructions(0x1110, 0x02)

	origin = 0
	mem.putInstructions(origin,
		0xa2, 0x04, // LDX #$04
		0xa1, 0x20, // LDA ($20,X)
		0xa0, 0x05, // LDY #$05
		0xb1, 0x40, // LDA ($40),Y
		0xa0, 0x20, // LDY #$20
		0xb1, 0x40, // LDA ($40),Y
	)

	// LDX #$04, LDA ($20,X)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x44)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// LDY #$05, LDA ($40),Y. no page crossing
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x01)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// LDY #$20, LDA ($40),Y. page crossing costs a cycle
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 6)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0050, 0x00, 0x05)

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa9, 0xaa, // LDA #$aa
		0x85, 0x30, // STA $30
		0x8d, 0x00, 0x04, // STA $0400
		0xa2, 0x10, // LDX #$10
		0x9d, 0x00, 0x04, // STA $0400,X
		0xa0, 0x04, // LDY #$04
		0x91, 0x50, // STA ($50),Y
		0x86, 0x31, // STX $31
		0x96, 0x40, // STX $40,Y
		0x84, 0x32, // STY $32
		0x94, 0x60, // STY $60,X
		0x8e, 0x00, 0x05, // STX $0500
		0x8c, 0x01, 0x05, // STY $0501
	)

	// LDA #$aa, STA $30
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0030, 0xaa)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// STA $0400
	step(t, mc)
	mem.assert(t, 0x0400, 0xaa)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// LDX #$10, STA $0400,X. stores never benefit from the page crossing
	// discount
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0410, 0xaa)
	test.Equate(t, mc.LastResult.Cycles, 5)

	// LDY #$04, STA ($50),Y
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0504, 0xaa)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// STX $31
	step(t, mc)
	mem.assert(t, 0x0031, 0x10)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// STX $40,Y
	step(t, mc)
	mem.assert(t, 0x0044, 0x10)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// STY $32
	step(t, mc)
	mem.assert(t, 0x0032, 0x04)

	// STY $60,X
	step(t, mc)
	mem.assert(t, 0x0070, 0x04)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// STX $0500, STY $0501
	step(t, mc)
	mem.assert(t, 0x0500, 0x10)
	test.Equate(t, mc.LastResult.Cycles, 4)
	step(t, mc)
	mem.assert(t, 0x0501, 0x04)
	test.Equate(t, mc.LastResult.Cycles, 4)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0000,
		0xa9, 0x01, // LDA #$01
		0xf0, 0x02, // BEQ +2 (not taken)
		0xd0, 0x02, // BNE +2 (taken)
		0xa9, 0xff, // LDA #$ff (skipped)
		0xa9, 0x00, // LDA #$00
		0x4c, 0xf0, 0x00, // JMP $00f0
	)
	mem.putInstructions(0x00f0,
		0xf0, 0x1e, // BEQ +$1e (taken, crosses to $0110)
	)
	mem.putInstructions(0x00fe,
		0xa9, 0x42, // LDA #$42
	)
	mem.putInstructions(0x0110,
		0xf0, 0xec, // BEQ -$14 (taken, crosses back to $00fe)
	)

	// LDA #$01, BEQ +2. branch not taken costs nothing extra
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.PC.Address(), 0x0004)

	// BNE +2. branch taken within the same page costs one extra cycle
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.PC.Address(), 0x0008)

	// LDA #$00, JMP $00f0
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x00f0)

	// BEQ +$1e. branch taken across a page boundary costs two extra
	// cycles
	step(t, mc)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.PC.Address(), 0x0110)

	// BEQ -$14. crossing on a backward branch costs the same
	step(t, mc)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.PC.Address(), 0x00fe)

	// LDA #$42
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x42)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0000,
		0x4c, 0x10, 0x00, // JMP $0010
	)
	mem.putInstructions(0x0010,
		0x6c, 0x00, 0x03, // JMP ($0300)
	)
	mem.putInstructions(0x0300, 0x20, 0x00)

	// JMP $0010
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0010)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// JMP ($0300)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0020)
	test.Equate(t, mc.LastResult.Cycles, 5)
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0000,
		0x20, 0x10, 0x00, // JSR $0010
		0xa9, 0x05, // LDA #$05
	)
	mem.putInstructions(0x0010,
		0x60, // RTS
	)

	// JSR $0010. the address of the final byte of the JSR instruction is
	// pushed, not the address of the next instruction
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0010)
	test.Equate(t, mc.SP.Value(), 0xfb)
	test.Equate(t, mc.LastResult.Cycles, 6)
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)

	// RTS. the popped address is corrected on the way out
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0003)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// LDA #$05
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x05)
}

func testStackInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	origin := uint16(0)
	mem.putInstructions(origin,
		0xa9, 0xaa, // LDA #$aa
		0x48,       // PHA
		0xa9, 0x00, // LDA #$00
		0x68, // PLA
		0x08, // PHP
		0x38, // SEC
		0x28, // PLP
	)

	// LDA #$aa, PHA
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x01fd, 0xaa)
	test.Equate(t, mc.SP.Value(), 0xfc)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// LDA #$00, PLA
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xaa)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.Zero, false)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// PHP. the sign flag is set from the PLA above; the interrupt disable
	// flag from reset. the break and the unused bit are always set in the
	// pushed byte
	step(t, mc)
	mem.assert(t, 0x01fd, 0xb4)
	test.Equate(t, mc.LastResult.Cycles, 3)

	// SEC, PLP. the restored flags overwrite the carry set in between
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.InterruptDisable, true)
	test.Equate(t, mc.LastResult.Cycles, 4)
}

func testBrkInstruction(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0xfffe, 0x80, 0x00)
	mem.putInstructions(0x0000,
		0x00, 0x00, // BRK (with padding byte)
		0xea, // NOP
	)
	mem.putInstructions(0x0080,
		0x40, // RTI
	)

	// BRK. the program counter is advanced past the padding byte before
	// being pushed, and the pushed status byte has the break bit set
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0080)
	test.Equate(t, mc.SP.Value(), 0xfa)
	test.Equate(t, mc.LastResult.Cycles, 7)
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x34)
	test.Equate(t, mc.Status.Break, true)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// RTI
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0002)
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.LastResult.Cycles, 6)

	// NOP
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0003)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testRegisterInstructions(t, mc, mem)
	testArithmeticInstructions(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testBitwiseInstructions(t, mc, mem)
	testShiftInstructions(t, mc, mem)
	testCompareInstructions(t, mc, mem)
	testAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testStackInstructions(t, mc, mem)
	testBrkInstruction(t, mc, mem)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0xfffa, 0x00, 0x10)
	mem.putInstructions(0x1000,
		0xa9, 0x55, // LDA #$55
	)

	// the NMI is serviced before the next instruction is fetched
	mc.RaiseNMI()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}

	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.LastResult.Final, true)
	if mc.LastResult.Defn != nil {
		t.Errorf("interrupt service should have no instruction definition")
	}
	test.Equate(t, mc.PC.Address(), 0x1000)
	test.Equate(t, mc.SP.Value(), 0xfa)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// pushed program counter and status. the break bit is clear in the
	// pushed byte, distinguishing the interrupt from a BRK instruction
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x00)
	mem.assert(t, 0x01fb, 0x24)

	// the edge is latched once. with no new edge the next step executes
	// normally
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x55)
}

func TestIRQ(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0xfffe, 0x00, 0x20)
	mem.putInstructions(0x0000,
		0x58,       // CLI
		0xa9, 0x07, // LDA #$07
	)
	mem.putInstructions(0x2000,
		0x40, // RTI
	)

	// the line is high but masked by the interrupt disable flag, so the
	// CLI executes normally
	mc.SignalIRQ(true)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0001)
	test.Equate(t, mc.Status.InterruptDisable, false)

	// now unmasked, the interrupt is serviced
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.PC.Address(), 0x2000)
	test.Equate(t, mc.Status.InterruptDisable, true)
	mem.assert(t, 0x01fd, 0x00)
	mem.assert(t, 0x01fc, 0x01)
	mem.assert(t, 0x01fb, 0x20)

	// RTI restores the clear interrupt disable flag
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0001)
	test.Equate(t, mc.Status.InterruptDisable, false)

	// the line is level sensitive. still high, it interrupts again
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.PC.Address(), 0x2000)

	// return and lower the line. the interrupted instruction finally runs
	step(t, mc)
	mc.SignalIRQ(false)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x07)
}

func TestInterruptPriority(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0xfffa, 0x00, 0x10)
	mem.putInstructions(0xfffe, 0x00, 0x20)
	mem.putInstructions(0x0000,
		0x58, // CLI
	)

	// both lines are raised. the NMI wins and the service sequence masks
	// the IRQ
	step(t, mc)
	mc.SignalIRQ(true)
	mc.RaiseNMI()

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mc.PC.Address(), 0x1000)
	test.Equate(t, mc.Status.InterruptDisable, true)
}

func TestDecodeFault(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000,
		0x02, // not part of the documented instruction set
		0xea, // NOP
	)

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if !test.ExpectedFailure(t, err) {
		return
	}
	if !curated.Is(err, cpu.UndecodedOpcode) {
		t.Errorf("expected undecoded opcode error, got: %v", err)
	}
	test.Equate(t, mc.LastResult.ByteCount, 1)
	test.Equate(t, mc.LastResult.Final, true)

	// the fault is not sticky. execution can continue from the next
	// address
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0002)
}

func TestCycleCallback(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()

	mem.putInstructions(0x0000,
		0xa9, 0x01, // LDA #$01
		0x8d, 0x00, 0x04, // STA $0400
	)

	cycles := 0
	callback := func() error {
		cycles++
		return nil
	}

	// LDA #$01
	err := mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 2)
	test.Equate(t, mc.LastResult.Cycles, 2)

	// STA $0400
	cycles = 0
	err = mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 4)
	test.Equate(t, mc.LastResult.Cycles, 4)

	// the callback is also run for every cycle of an interrupt service
	cycles = 0
	mem.putInstructions(0xfffa, 0x00, 0x10)
	mc.RaiseNMI()
	err = mc.ExecuteInstruction(callback)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, cycles, 7)
}
