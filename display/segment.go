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

package display

import "fmt"

// The vector generator's coordinate space. Origin is the bottom-left of the
// screen with Y increasing upwards, as on the hardware. The beam can be
// driven outside of this space; clipping is the renderer's responsibility.
const (
	Width  = 1024
	Height = 1024
)

// MaxBrightness is the brightest value of a Segment's Z field.
const MaxBrightness = 15

// Segment is a single movement of the beam: a line from (X0,Y0) to (X1,Y1)
// at brightness Z. A Z value of zero is a pen-up move; a segment with equal
// start and end points and a non-zero Z is a single lit point.
type Segment struct {
	X0, Y0 int16
	X1, Y1 int16
	Z      uint8
}

// Drawn is true if the segment leaves a visible trace on the screen.
func (s Segment) Drawn() bool {
	return s.Z > 0
}

func (s Segment) String() string {
	if !s.Drawn() {
		return fmt.Sprintf("(%d,%d) move (%d,%d)", s.X0, s.Y0, s.X1, s.Y1)
	}
	return fmt.Sprintf("(%d,%d) draw (%d,%d) z=%d", s.X0, s.Y0, s.X1, s.Y1, s.Z)
}
