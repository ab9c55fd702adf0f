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
	"github.com/hockleyj/gopheroids/display"
	"github.com/hockleyj/gopheroids/hardware/clocks"
)

// StepFrame runs the machine up to the next frame boundary and hands the
// frame's vector segments to the attached renderers.
func (mch *Machine) StepFrame() error {
	// input is latched once per frame so the program reads stable switch
	// values for the whole frame
	mch.Switches = mch.pending

	// frame boundaries sit on the 25000 cycle grid. an instruction that
	// straddles a boundary donates the overrun to the next frame, so the
	// grid never drifts
	target := (mch.totalCycles/clocks.PerFrame + 1) * clocks.PerFrame

	for mch.totalCycles < target {
		if err := mch.Step(nil); err != nil {
			return err
		}
	}

	mch.frameNum++

	info := display.FrameInfo{
		FrameNum: mch.frameNum,
		Cycles:   mch.totalCycles,
	}

	segments := mch.VG.Segments()
	for _, rend := range mch.renderers {
		if err := rend.NewFrame(segments, info); err != nil {
			return err
		}
	}
	mch.VG.ResetSegments()

	return nil
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is consulted after every frame; the run ends when it returns
// false.
func (mch *Machine) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := mch.StepFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount runs the emulation for the specified number of frames.
// Useful for FPS measurement and regression tests.
func (mch *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	target := mch.frameNum + numFrames

	for mch.frameNum < target {
		if err := mch.StepFrame(); err != nil {
			return err
		}

		cont, err := continueCheck(mch.frameNum)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
