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

package input

import (
	"github.com/hockleyj/gopheroids/hardware/memory/addresses"
)

// Switches is a snapshot of every player and cabinet switch, plus the dip
// switch bank. The zero value has every switch open.
//
// Switches is a plain value. The machine latches one snapshot per frame so
// the program sees stable input for the whole frame.
type Switches struct {
	// player controls
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Fire        bool
	Hyperspace  bool

	// cabinet switches
	Player1Start bool
	Player2Start bool
	CoinLeft     bool
	CoinCenter   bool
	CoinRight    bool
	Slam         bool

	// service switches
	SelfTest bool
	DiagStep bool

	// the eight option switches, packed into one byte. bit 7 is switch
	// one on the option block. read two bits at a time through the dip
	// registers
	Dips uint8
}

// Read returns the register value for any switch address. A closed switch
// reads 0xff, an open switch 0x00, matching what the input multiplexer
// places on the bus. Addresses that are not switch registers read as zero.
func (sw Switches) Read(address uint16) uint8 {
	if address >= addresses.OriginDipSwitches && address <= addresses.MemtopDipSwitches {
		shift := 6 - 2*(address-addresses.OriginDipSwitches)
		return (sw.Dips >> shift) & 0x03
	}

	switch address {
	case addresses.Hyperspace:
		return line(sw.Hyperspace)
	case addresses.Fire:
		return line(sw.Fire)
	case addresses.DiagStep:
		return line(sw.DiagStep)
	case addresses.Slam:
		return line(sw.Slam)
	case addresses.SelfTest:
		return line(sw.SelfTest)
	case addresses.CoinLeft:
		return line(sw.CoinLeft)
	case addresses.CoinCenter:
		return line(sw.CoinCenter)
	case addresses.CoinRight:
		return line(sw.CoinRight)
	case addresses.Player1Start:
		return line(sw.Player1Start)
	case addresses.Player2Start:
		return line(sw.Player2Start)
	case addresses.Thrust:
		return line(sw.Thrust)
	case addresses.RotateRight:
		return line(sw.RotateRight)
	case addresses.RotateLeft:
		return line(sw.RotateLeft)
	}

	return 0x00
}

func line(closed bool) uint8 {
	if closed {
		return 0xff
	}
	return 0x00
}
