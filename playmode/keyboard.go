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
	"github.com/hockleyj/gopheroids/gui"
	"github.com/hockleyj/gopheroids/hardware/input"
)

// keyboardEvent applies a key change to the switch snapshot. The returned
// flag indicates that the user has asked to quit.
func keyboardEvent(ev gui.EventDataKeyboard, sw *input.Switches) bool {
	switch ev.Key {
	case "Escape":
		return ev.Down
	case "Space":
		sw.Fire = ev.Down
	case "Left":
		sw.RotateLeft = ev.Down
	case "Right":
		sw.RotateRight = ev.Down
	case "Up":
		sw.Thrust = ev.Down
	case "Left Shift":
		sw.Hyperspace = ev.Down
	case "S", "1":
		sw.Player1Start = ev.Down
	case "2":
		sw.Player2Start = ev.Down
	case "C":
		sw.CoinLeft = ev.Down
	}

	return false
}
