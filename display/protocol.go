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

// FrameInfo accompanies every completed frame handed to a Renderer.
type FrameInfo struct {
	// FrameNum counts frames from machine reset.
	FrameNum int

	// Cycles is the machine's total CPU cycle count at the frame seam.
	Cycles uint64
}

// Renderer implementations display, or otherwise work with, the vector
// segments of a completed frame. For example digest.Video, which reduces
// frames to a hash, or sdlplay, which draws them into a window.
//
// Segments arrive in the order the vector generator emitted them. The slice
// is only valid for the duration of the NewFrame() call; implementations
// that need the segments afterwards must copy them.
type Renderer interface {
	NewFrame(segments []Segment, info FrameInfo) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the Renderer should be considered unusable after
	// EndRendering() has been called.
	EndRendering() error
}
