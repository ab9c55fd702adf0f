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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The emulation itself runs as fast as it can; it is the play
// loop that uses a limiter to pin the frame rate to the cabinet's 60Hz.
//
// A new FpsLimiter can be created with (error handling removed for
// clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderFrame()
//	}
//
// Alternatively, HasWaited() can be polled when blocking is not wanted. This
// is useful for once-a-second progress messages in an otherwise flat-out
// loop.
package limiter

import (
	"time"

	"github.com/hockleyj/gopheroids/curated"
)

// FpsLimiter triggers at a fixed number of frames per second.
type FpsLimiter struct {
	framesPerSecond int
	tick            *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf("limiter: invalid rate (%d fps)", framesPerSecond)
	}

	lim := &FpsLimiter{framesPerSecond: framesPerSecond}
	lim.tick = time.NewTicker(time.Second / time.Duration(framesPerSecond))

	return lim, nil
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: invalid rate (%d fps)", framesPerSecond)
	}

	lim.framesPerSecond = framesPerSecond
	lim.tick.Reset(time.Second / time.Duration(framesPerSecond))

	return nil
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick.C
}

// HasWaited returns true if the trigger has already happened and false if it
// is still to come. It never blocks.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick.C:
		return true
	default:
		return false
	}
}
