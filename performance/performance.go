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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/hardware"
	"github.com/hockleyj/gopheroids/romloader"
)

// leadtime gives the host a chance to settle down before measurement begins.
const leadTime = 2 * time.Second

// Check the performance of the emulation using the supplied ROM.
//
// The machine runs uncapped for the specified duration. If the profile flag
// is set a CPU profile is gathered over the run and a memory profile is
// written at the end of it.
func Check(output io.Writer, profile bool, loader romloader.Loader, runTime string) error {
	mch, err := hardware.NewMachine(loader)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer mch.End()

	// parse supplied duration
	dur, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// frame number at the start of the measurement period. reassigned once
	// the leadtime has concluded
	startFrame := mch.Frame()

	run := func() error {
		// timerChan signals false at the end of the leadtime and true at
		// the end of the measurement period
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// run until the measurement period elapses. the continueCheck runs
		// on this goroutine so reading the frame number is safe
		return mch.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					return false, nil
				}
				startFrame = mch.Frame()
			default:
			}
			return true, nil
		})
	}

	// launch run function directly or through the profiler, depending on
	// supplied arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", run)
		if err == nil {
			err = ProfileMem("performance.mem.profile")
		}
	} else {
		err = run()
	}
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := mch.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
