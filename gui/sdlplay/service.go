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

package sdlplay

import (
	"github.com/hockleyj/gopheroids/gui"
	"github.com/hockleyj/gopheroids/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Service polls for pending SDL events and translates them for the caller.
// The F11 key is handled here, toggling the window in and out of
// fullscreen, and is not passed on.
//
// Must be called regularly or the window becomes unresponsive.
func (scr *SdlPlay) Service() []gui.Event {
	var events []gui.Event

	for sdlEvent := sdl.PollEvent(); sdlEvent != nil; sdlEvent = sdl.PollEvent() {
		switch sdlEvent := sdlEvent.(type) {
		case *sdl.QuitEvent:
			events = append(events, gui.Event{ID: gui.EventQuit})

		case *sdl.KeyboardEvent:
			if sdlEvent.Repeat != 0 {
				continue
			}

			key := sdl.GetKeyName(sdlEvent.Keysym.Sym)

			switch sdlEvent.Type {
			case sdl.KEYDOWN:
				if key == "F11" {
					scr.toggleFullScreen()
					continue
				}
				events = append(events, gui.Event{
					ID:   gui.EventKeyboard,
					Data: gui.EventDataKeyboard{Key: key, Down: true}})

			case sdl.KEYUP:
				events = append(events, gui.Event{
					ID:   gui.EventKeyboard,
					Data: gui.EventDataKeyboard{Key: key, Down: false}})
			}
		}
	}

	return events
}

func (scr *SdlPlay) toggleFullScreen() {
	var err error
	if scr.fullScreen {
		err = scr.window.SetFullscreen(0)
	} else {
		err = scr.window.SetFullscreen(uint32(sdl.WINDOW_FULLSCREEN_DESKTOP))
	}
	if err != nil {
		logger.Logf("sdlplay", "fullscreen: %v", err)
		return
	}
	scr.fullScreen = !scr.fullScreen
}
