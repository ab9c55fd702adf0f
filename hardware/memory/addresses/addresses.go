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

// Package addresses names the machine's device registers. The names follow
// the labels used on the schematics and in the published memory maps.
package addresses

// Read registers in the input area. The switch registers report their line
// in bit 7: 0xff for a closed (pressed) switch, 0x00 for open.
const (
	Clock3kHz    = uint16(0x2001)
	VgHalt       = uint16(0x2002)
	Hyperspace   = uint16(0x2003)
	Fire         = uint16(0x2004)
	DiagStep     = uint16(0x2005)
	Slam         = uint16(0x2006)
	SelfTest     = uint16(0x2007)
	CoinLeft     = uint16(0x2400)
	CoinCenter   = uint16(0x2401)
	CoinRight    = uint16(0x2402)
	Player1Start = uint16(0x2403)
	Player2Start = uint16(0x2404)
	Thrust       = uint16(0x2405)
	RotateRight  = uint16(0x2406)
	RotateLeft   = uint16(0x2407)
)

// The dip switch bank. Each of the four addresses reads two of the eight
// option switches in bits 1 and 0, highest pair first.
const (
	OriginDipSwitches = uint16(0x2800)
	MemtopDipSwitches = uint16(0x2803)
)

// Write registers in the output area. DmaGo starts the vector generator.
const (
	DmaGo            = uint16(0x3000)
	Lamps            = uint16(0x3200)
	WatchdogClear    = uint16(0x3400)
	SoundExplosion   = uint16(0x3600)
	SoundThump       = uint16(0x3a00)
	SoundSaucer      = uint16(0x3c00)
	SoundSaucerFire  = uint16(0x3c01)
	SoundSaucerSel   = uint16(0x3c02)
	SoundThrust      = uint16(0x3c03)
	SoundFire        = uint16(0x3c04)
	SoundBonus       = uint16(0x3c05)
	SoundNoiseReset  = uint16(0x3e00)
)

// ReadSymbols is the canonical name for every read register.
var ReadSymbols = map[uint16]string{
	Clock3kHz:    "CLCK3KHZ",
	VgHalt:       "HALT",
	Hyperspace:   "HYPSPC",
	Fire:         "FIRE",
	DiagStep:     "DIAGST",
	Slam:         "SLAM",
	SelfTest:     "TEST",
	CoinLeft:     "LEFTCOIN",
	CoinCenter:   "CENTERCOIN",
	CoinRight:    "RIGHTCOIN",
	Player1Start: "1STARTSW",
	Player2Start: "2STARTSW",
	Thrust:       "THRUSTSW",
	RotateRight:  "ROTRIGHT",
	RotateLeft:   "ROTLEFT",
	0x2800:       "DSW1",
	0x2801:       "DSW2",
	0x2802:       "DSW3",
	0x2803:       "DSW4",
}

// WriteSymbols is the canonical name for every write register.
var WriteSymbols = map[uint16]string{
	DmaGo:           "DMAGO",
	Lamps:           "LMPLATCH",
	WatchdogClear:   "WDCLR",
	SoundExplosion:  "EXPAUDIO",
	SoundThump:      "THUMPAUDIO",
	SoundSaucer:     "SAUCRAUDIO",
	SoundSaucerFire: "SFIREAUDIO",
	SoundSaucerSel:  "SAUCRSEL",
	SoundThrust:     "THRUSTAUDIO",
	SoundFire:       "FIREAUDIO",
	SoundBonus:      "LIFEAUDIO",
	SoundNoiseReset: "NOISERESET",
}

// SoundRegisters lists the write registers that drive the audio circuits,
// in address order.
var SoundRegisters = []uint16{
	SoundExplosion,
	SoundThump,
	SoundSaucer,
	SoundSaucerFire,
	SoundSaucerSel,
	SoundThrust,
	SoundFire,
	SoundBonus,
	SoundNoiseReset,
}
