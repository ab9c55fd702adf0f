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

package macro

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/hardware/input"
	"github.com/hockleyj/gopheroids/logger"
)

// Poker is the piece of the machine a script can poke directly: the debug
// bus of the memory system.
type Poker interface {
	Poke(address uint16, data uint8) error
}

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "gopheroidsmacro"

// the number of extra frames a switch command holds the script for, so the
// input is latched and seen by the program before the next command runs
const settleFrames = 1

type loop struct {
	line int

	// loop counters count upwards because it is more natural when reading
	// a script to think of the counter that way
	count    int
	countEnd int
}

// Macro is a scripted sequence of switch changes, played into the machine
// one frame at a time. The driving loop calls Step() once per frame and
// forwards Switches() to the machine.
type Macro struct {
	filename     string
	instructions []string

	mem Poker

	line     int
	waiting  int
	loops    []loop
	switches input.Switches
	done     bool
}

// NewMacro is the preferred method of initialisation for the Macro type.
// The mem argument may be nil, in which case the POKE command is an error.
func NewMacro(filename string, mem Poker) (*Macro, error) {
	mcr := &Macro{
		filename: filename,
		mem:      mem,
	}

	buffer, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("macro: %v", err)
	}

	mcr.instructions = strings.Split(string(buffer), "\n")
	if len(mcr.instructions) < headerNumLines {
		return nil, curated.Errorf("macro: %v", fmt.Sprintf("%s: not a macro file", filename))
	}
	if strings.TrimSpace(mcr.instructions[headerLineID]) != headerID {
		return nil, curated.Errorf("macro: %v", fmt.Sprintf("%s: not a macro file", filename))
	}

	// ignore version string for now

	// we no longer need the header
	mcr.instructions = mcr.instructions[headerNumLines:]

	return mcr, nil
}

// Switches returns the switch snapshot the script has built so far.
func (mcr *Macro) Switches() input.Switches {
	return mcr.switches
}

// Done reports whether the script has run out of instructions or stopped
// on an error or a QUIT.
func (mcr *Macro) Done() bool {
	return mcr.done
}

// Step advances the script by one frame. Commands that take no time (loop
// bookkeeping, comments) are processed until one that does: a WAIT, or a
// switch change with its settle time.
func (mcr *Macro) Step() {
	if mcr.done {
		return
	}

	if mcr.waiting > 0 {
		mcr.waiting--
		return
	}

	fail := func(ln int, msg string) {
		logger.Logf("macro", "%s: %d: %s", mcr.filename, ln+headerNumLines+1, msg)
		mcr.done = true
	}

	// set a switch line and hold the script for the settle time
	set := func(sw *bool, pressed bool) {
		*sw = pressed
		mcr.waiting = settleFrames
	}

	for mcr.line < len(mcr.instructions) {
		ln := mcr.line
		toks := strings.Fields(mcr.instructions[ln])
		mcr.line++

		if len(toks) == 0 {
			continue // for loop
		}

		switch toks[0] {
		default:
			fail(ln, fmt.Sprintf("unrecognised command: %s", toks[0]))
			return

		case "--":
			// ignore comment lines

		case "DO":
			if len(toks) != 2 {
				fail(ln, "DO wants a loop count")
				return
			}
			ct, err := strconv.Atoi(toks[1])
			if err != nil {
				fail(ln, err.Error())
				return
			}
			mcr.loops = append(mcr.loops, loop{
				line:     mcr.line,
				countEnd: ct,
			})

		case "LOOP":
			idx := len(mcr.loops) - 1
			if idx == -1 {
				fail(ln, "LOOP without a DO")
				return
			}
			lp := &mcr.loops[idx]
			lp.count++
			if lp.count < lp.countEnd {
				mcr.line = lp.line
			} else {
				mcr.loops = mcr.loops[:idx]
			}

		case "WAIT":
			// default to 60 frames
			w := 60
			if len(toks) == 2 {
				var err error
				w, err = strconv.Atoi(toks[1])
				if err != nil {
					fail(ln, err.Error())
					return
				}
			}
			if w > 0 {
				mcr.waiting = w - 1
				return
			}

		case "QUIT":
			mcr.done = true
			return

		case "LEFT":
			set(&mcr.switches.RotateLeft, true)
			return
		case "NOLEFT":
			set(&mcr.switches.RotateLeft, false)
			return
		case "RIGHT":
			set(&mcr.switches.RotateRight, true)
			return
		case "NORIGHT":
			set(&mcr.switches.RotateRight, false)
			return
		case "THRUST":
			set(&mcr.switches.Thrust, true)
			return
		case "NOTHRUST":
			set(&mcr.switches.Thrust, false)
			return
		case "FIRE":
			set(&mcr.switches.Fire, true)
			return
		case "NOFIRE":
			set(&mcr.switches.Fire, false)
			return
		case "HYPERSPACE":
			set(&mcr.switches.Hyperspace, true)
			return
		case "NOHYPERSPACE":
			set(&mcr.switches.Hyperspace, false)
			return
		case "START1":
			set(&mcr.switches.Player1Start, true)
			return
		case "NOSTART1":
			set(&mcr.switches.Player1Start, false)
			return
		case "START2":
			set(&mcr.switches.Player2Start, true)
			return
		case "NOSTART2":
			set(&mcr.switches.Player2Start, false)
			return
		case "COIN":
			set(&mcr.switches.CoinLeft, true)
			return
		case "NOCOIN":
			set(&mcr.switches.CoinLeft, false)
			return
		case "SELFTEST":
			set(&mcr.switches.SelfTest, true)
			return
		case "NOSELFTEST":
			set(&mcr.switches.SelfTest, false)
			return

		case "DIPS":
			if len(toks) != 2 {
				fail(ln, "DIPS wants a value")
				return
			}
			v, err := convertValue(toks[1])
			if err != nil {
				fail(ln, fmt.Sprintf("cannot use value for DIPS: %s", toks[1]))
				return
			}
			mcr.switches.Dips = v

		case "POKE":
			if len(toks) != 3 {
				fail(ln, "POKE wants an address and a value")
				return
			}
			if mcr.mem == nil {
				fail(ln, "POKE is not available")
				return
			}
			addr, err := convertAddress(toks[1])
			if err != nil {
				fail(ln, fmt.Sprintf("unrecognised address for POKE: %s", toks[1]))
				return
			}
			val, err := convertValue(toks[2])
			if err != nil {
				fail(ln, fmt.Sprintf("cannot use value for POKE: %s", toks[2]))
				return
			}
			if err := mcr.mem.Poke(addr, val); err != nil {
				fail(ln, err.Error())
				return
			}
		}
	}

	mcr.done = true
}

func convertAddress(s string) (uint16, error) {
	// convert hex indicator to one that ParseUint can deal with
	if s[0] == '$' {
		s = fmt.Sprintf("0x%s", s[1:])
	}

	a, err := strconv.ParseUint(s, 0, 16)
	return uint16(a), err
}

func convertValue(s string) (uint8, error) {
	if s[0] == '$' {
		s = fmt.Sprintf("0x%s", s[1:])
	}

	v, err := strconv.ParseUint(s, 0, 8)
	return uint8(v), err
}
