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

package registers

// The decimal functions return zero and sign information in addition to
// carry and overflow. Binary addition/subtraction only returns carry and
// overflow; the CPU derives the other flags from the result. In decimal
// mode the flags are decided at specific points in the adjustment process.
//
// Details taken from "Flags on Decimal mode in the NMOS 6502" v1.0 by
// Jorge Cwik. The game keeps its scores in BCD so decimal addition is
// well exercised.

func addDigits(a, b uint8, carry bool) (uint8, bool) {
	r := a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds value to the register with both values treated as binary
// coded decimal. Returns carry, zero, overflow and sign information.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var zero, overflow, sign bool
	var ucarry, tcarry bool

	// binary addition of units and tens digits
	units := r.value & 0x0f
	vunits := val & 0x0f
	units, ucarry = addDigits(units, vunits, carry)

	tens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	tens, tcarry = addDigits(tens, vtens, ucarry)

	// the zero flag is computed before performing any decimal adjustment
	zero = units == 0x00 && tens == 0x00

	// decimal correction for units digit
	if ucarry {
		units -= 10
	}

	// the sign and overflow flags are computed after the decimal adjustment
	// of the units digit but before adjusting the tens digit; the tens
	// value has not been shifted into the upper nibble at this point
	overflow = tens&0x04 == 0x04
	sign = tens&0x08 == 0x08

	// decimal correction for tens digit
	if tcarry {
		tens -= 10
	}

	r.value = (tens << 4) | (units & 0x0f)

	return tcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from the register with both values
// treated as binary coded decimal. On the NMOS 6502 the flags after a
// decimal subtraction are those of the equivalent binary subtraction; only
// the stored result is decimal adjusted. Returns carry, zero, overflow and
// sign information.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	v := r.value

	// digit borrows, accounting for the incoming carry. the 6502 uses the
	// carry flag opposite to what you might expect when subtracting
	borrow := 1
	if carry {
		borrow = 0
	}
	lowBorrow := int(v&0x0f)-int(val&0x0f)-borrow < 0

	// binary subtraction decides every flag
	rcarry, overflow := r.Add(^val, carry)
	zero := r.IsZero()
	sign := r.IsNegative()

	// decimal correction of the stored result
	if lowBorrow {
		r.value -= 0x06
	}
	if !rcarry {
		r.value -= 0x60
	}

	return rcarry, zero, overflow, sign
}
