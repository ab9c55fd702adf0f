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

// Package gui defines the events that flow from the window to the play
// loop. The SDL implementation of the window is in the sdlplay package;
// keeping the event types separate means consumers of the events do not
// need to know anything about SDL.
package gui

// EventID identifies the type of event taking place.
type EventID int

// List of valid events.
const (
	// the window has been asked to close
	EventQuit EventID = iota

	// a key has been pressed or released. Data is EventDataKeyboard
	EventKeyboard
)

// EventData is the data that is associated with an event.
type EventData interface{}

// Event is returned by the window's Service() function.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events. Key
// is the SDL name for the key.
type EventDataKeyboard struct {
	Key  string
	Down bool
}
