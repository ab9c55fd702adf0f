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

package playmode

import (
	"os"
	"os/signal"
	"strconv"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/gui"
	"github.com/hockleyj/gopheroids/gui/sdlaudio"
	"github.com/hockleyj/gopheroids/gui/sdlplay"
	"github.com/hockleyj/gopheroids/hardware"
	"github.com/hockleyj/gopheroids/hardware/clocks"
	"github.com/hockleyj/gopheroids/hardware/input"
	"github.com/hockleyj/gopheroids/logger"
	"github.com/hockleyj/gopheroids/performance/limiter"
	"github.com/hockleyj/gopheroids/romloader"
	"github.com/hockleyj/gopheroids/soundbank"
	"github.com/hockleyj/gopheroids/wavwriter"
)

const logTag = "playmode"

// Play runs the machine in an SDL window at the cabinet's frame rate.
//
// The dips argument is the option switch block as two hexadecimal digits,
// most significant switch first. The samples argument is the directory the
// sound effect samples are loaded from. If wavFile is not empty the sound
// effect mix is also recorded to that file.
//
// The function returns when the window is closed, the escape key is
// pressed or the process is interrupted.
func Play(loader romloader.Loader, scale float32, fpsCap bool, dips string, samples string, wavFile string) error {
	d, err := strconv.ParseUint(dips, 16, 8)
	if err != nil {
		return curated.Errorf("playmode: invalid dip switch setting (%s)", dips)
	}

	mch, err := hardware.NewMachine(loader)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer mch.End()

	scr, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// the machine closes the window, along with any other renderer, on End()
	mch.AttachRenderer(scr)

	bnk, err := soundbank.Load(samples)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	aud, err := sdlaudio.NewAudio(bnk)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer aud.End()
	mch.Audio.Attach(soundbank.NewSequencer(aud))

	// the wav writer runs its own sequencer and mixer so the recording does
	// not depend on the state of the SDL audio device
	var wavw *wavwriter.WavWriter
	if wavFile != "" {
		wavw = wavwriter.New(bnk, wavFile)
		mch.Audio.Attach(soundbank.NewSequencer(wavw))
		defer func() {
			if err := wavw.End(); err != nil {
				logger.Logf(logTag, "%v", err)
			}
		}()
	}

	lmtr, err := limiter.NewFPSLimiter(clocks.FramesPerSecond)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	sw := input.Switches{Dips: uint8(d)}
	mch.SetSwitches(sw)

	// quit cleanly on ctrl-c so the deferred teardown runs and the wav
	// recording, if there is one, is written out
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = mch.Run(func() (bool, error) {
		if err := aud.Queue(); err != nil {
			return false, err
		}
		if wavw != nil {
			if err := wavw.Queue(); err != nil {
				return false, err
			}
		}

		if fpsCap {
			if lmtr.HasWaited() {
				logger.Log(logTag, "frame overrun")
			} else {
				lmtr.Wait()
			}
		}

		select {
		case <-intChan:
			return false, nil
		default:
		}

		for _, ev := range scr.Service() {
			switch ev.ID {
			case gui.EventQuit:
				return false, nil
			case gui.EventKeyboard:
				if keyboardEvent(ev.Data.(gui.EventDataKeyboard), &sw) {
					return false, nil
				}
			}
		}
		mch.SetSwitches(sw)

		return true, nil
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
