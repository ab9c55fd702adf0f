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

// Package sdlplay provides the game window. Completed frames are drawn into
// it as alpha-blended line segments, which is about as close to the glow of
// the vector monitor as a raster display can get.
package sdlplay

import (
	"runtime"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/display"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// SdlPlay is the SDL implementation of the display.Renderer interface.
//
// All functions must be called from the main goroutine, as required by SDL.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	fullScreen bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. The window is sized to the vector coordinate space multiplied by
// scale, and is shown immediately.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{}

	// SDL requires the same OS thread for every call. the sdl package
	// locks it during initialisation but locking again does no harm
	runtime.LockOSThread()

	var err error

	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	w := int32(float32(display.Width) * scale)
	h := int32(float32(display.Height) * scale)

	scr.window, err = sdl.CreateWindow("Gopheroids",
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		w, h,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// NewFrame implements the display.Renderer interface. The frame's segments
// are drawn to the window immediately.
func (scr *SdlPlay) NewFrame(segments []display.Segment, _ display.FrameInfo) error {
	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	w, h, err := scr.renderer.GetOutputSize()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	for _, seg := range segments {
		if !seg.Drawn() {
			continue
		}

		// scale to the window and flip y. the origin of the vector space
		// is the bottom left corner of the screen
		x0 := int32(seg.X0) * w / display.Width
		y0 := h - int32(seg.Y0)*h/display.Height
		x1 := int32(seg.X1) * w / display.Width
		y1 := h - int32(seg.Y1)*h/display.Height

		// the four bit brightness maps neatly onto the eight bit alpha
		// channel
		alpha := seg.Z * 17

		if seg.X0 == seg.X1 && seg.Y0 == seg.Y1 {
			// a stationary beam is a single point. on the real monitor
			// these can be dazzlingly bright
			gfx.PixelRGBA(scr.renderer, x0, y0, 255, 255, 255, alpha)
		} else {
			gfx.LineRGBA(scr.renderer, x0, y0, x1, y1, 255, 255, 255, alpha)
		}
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the display.Renderer interface. The window is
// destroyed.
func (scr *SdlPlay) EndRendering() error {
	scr.renderer.Destroy()
	return scr.window.Destroy()
}
