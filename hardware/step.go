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

package hardware

import (
	"github.com/hockleyj/gopheroids/hardware/clocks"
)

func nullCycleCallback() error {
	return nil
}

// Step the machine one CPU instruction, or through the servicing of one
// interrupt. The cycleCallback function, if not nil, provides an additional
// callback point on every CPU cycle.
func (mch *Machine) Step(cycleCallback func() error) error {
	if cycleCallback == nil {
		cycleCallback = nullCycleCallback
	}

	// machineCycle defines what the rest of the board does during each CPU
	// cycle. the CPU emulation calls it after every cycle of the
	// instruction it is working through.
	//
	// on the real board the CPU and the vector generator run from the same
	// 1.5MHz clock and take turns on the bus naturally. in this emulation
	// the CPU drives: whenever the generator has been started it is given
	// one cycle of work for every CPU cycle, which keeps the two in
	// lockstep without a second goroutine or any buffering between them.
	//
	// the state machine timing of the generator means it finishes drawing
	// at exactly the same total cycle count as it would running free. when
	// it reaches its halt state the interrupt line to the CPU goes up, and
	// stays up until the program starts the generator again.
	machineCycle := func() error {
		mch.totalCycles++

		if !mch.VG.Halted() {
			_, halted, err := mch.VG.Run(1)
			if err != nil {
				return err
			}
			if halted {
				mch.CPU.SignalIRQ(true)
			}
		}

		return cycleCallback()
	}

	err := mch.CPU.ExecuteInstruction(machineCycle)
	if err != nil {
		return err
	}

	// the periodic NMI is raised at the instruction boundary, which is
	// where the CPU polls its interrupt lines anyway
	if mch.totalCycles >= mch.nextNMI {
		mch.CPU.RaiseNMI()
		mch.nextNMI += clocks.PerNMI
	}

	return nil
}
