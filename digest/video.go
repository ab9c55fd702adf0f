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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/hockleyj/gopheroids/display"
)

// Video is a display.Renderer that reduces each frame to a running SHA1
// hash. The hash covers the segment geometry and the frame's position on
// the cycle grid, so it catches timing changes as well as drawing changes.
type Video struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		buffer: make([]byte, 0, 4096),
	}
}

// Hash implements the digest.Digest interface.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// NewFrame implements the display.Renderer interface.
func (dig *Video) NewFrame(segments []display.Segment, info display.FrameInfo) error {
	// chain fingerprints by hashing the previous fingerprint along with
	// the new frame data
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)

	dig.buffer = append(dig.buffer,
		byte(info.FrameNum>>24), byte(info.FrameNum>>16),
		byte(info.FrameNum>>8), byte(info.FrameNum),
		byte(info.Cycles>>56), byte(info.Cycles>>48),
		byte(info.Cycles>>40), byte(info.Cycles>>32),
		byte(info.Cycles>>24), byte(info.Cycles>>16),
		byte(info.Cycles>>8), byte(info.Cycles),
	)

	for _, seg := range segments {
		dig.buffer = append(dig.buffer,
			byte(uint16(seg.X0)>>8), byte(seg.X0),
			byte(uint16(seg.Y0)>>8), byte(seg.Y0),
			byte(uint16(seg.X1)>>8), byte(seg.X1),
			byte(uint16(seg.Y1)>>8), byte(seg.Y1),
			seg.Z,
		)
	}

	dig.digest = sha1.Sum(dig.buffer)

	return nil
}

// EndRendering implements the display.Renderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
