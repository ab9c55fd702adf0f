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

	"github.com/hockleyj/gopheroids/hardware/audio"
)

// Audio is an audio.Tap that reduces the stream of sound register writes to
// a running SHA1 hash. The hash is order sensitive: the same writes in a
// different order produce a different value.
type Audio struct {
	digest [sha1.Size]byte
	buffer [sha1.Size + 3]byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// Hash implements the digest.Digest interface.
func (dig Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// AudioEvent implements the audio.Tap interface.
func (dig *Audio) AudioEvent(ev audio.Event) {
	copy(dig.buffer[:], dig.digest[:])
	dig.buffer[sha1.Size] = byte(ev.Register >> 8)
	dig.buffer[sha1.Size+1] = byte(ev.Register)
	dig.buffer[sha1.Size+2] = ev.Value
	dig.digest = sha1.Sum(dig.buffer[:])
}
