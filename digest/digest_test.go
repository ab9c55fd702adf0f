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

package digest_test

import (
	"testing"

	"github.com/hockleyj/gopheroids/digest"
	"github.com/hockleyj/gopheroids/display"
	"github.com/hockleyj/gopheroids/hardware/audio"
	"github.com/hockleyj/gopheroids/hardware/memory/addresses"
	"github.com/hockleyj/gopheroids/test"
)

func TestVideoDigest(t *testing.T) {
	segments := []display.Segment{
		{X0: 0, Y0: 0, X1: 100, Y1: 50, Z: 15},
		{X0: 100, Y0: 50, X1: 100, Y1: 0, Z: 7},
	}
	info := display.FrameInfo{FrameNum: 1, Cycles: 25000}

	dig := digest.NewVideo()
	zero := dig.Hash()
	test.Equate(t, len(zero), 40)

	err := dig.NewFrame(segments, info)
	test.ExpectedSuccess(t, err)
	one := dig.Hash()
	if one == zero {
		t.Fatal("hash did not change on new frame")
	}

	// identical runs hash identically
	dig2 := digest.NewVideo()
	err = dig2.NewFrame(segments, info)
	test.ExpectedSuccess(t, err)
	test.Equate(t, dig2.Hash(), one)

	// ordering matters
	swapped := []display.Segment{segments[1], segments[0]}
	dig3 := digest.NewVideo()
	err = dig3.NewFrame(swapped, info)
	test.ExpectedSuccess(t, err)
	if dig3.Hash() == one {
		t.Fatal("segment order not reflected in hash")
	}

	// the hash chains from frame to frame
	err = dig.NewFrame(segments, display.FrameInfo{FrameNum: 2, Cycles: 50000})
	test.ExpectedSuccess(t, err)
	if dig.Hash() == one {
		t.Fatal("hash did not chain on second frame")
	}

	// timing is part of the fingerprint
	dig4 := digest.NewVideo()
	err = dig4.NewFrame(segments, display.FrameInfo{FrameNum: 1, Cycles: 25002})
	test.ExpectedSuccess(t, err)
	if dig4.Hash() == one {
		t.Fatal("cycle count not reflected in hash")
	}

	dig.ResetDigest()
	test.Equate(t, dig.Hash(), zero)
}

func TestAudioDigest(t *testing.T) {
	dig := digest.NewAudio()
	zero := dig.Hash()

	dig.AudioEvent(audio.Event{Register: addresses.SoundFire, Value: 0x80})
	one := dig.Hash()
	if one == zero {
		t.Fatal("hash did not change on event")
	}

	dig.AudioEvent(audio.Event{Register: addresses.SoundThump, Value: 0x13})
	two := dig.Hash()

	// replay in the same order matches
	rep := digest.NewAudio()
	rep.AudioEvent(audio.Event{Register: addresses.SoundFire, Value: 0x80})
	rep.AudioEvent(audio.Event{Register: addresses.SoundThump, Value: 0x13})
	test.Equate(t, rep.Hash(), two)

	// replay in a different order does not
	ooo := digest.NewAudio()
	ooo.AudioEvent(audio.Event{Register: addresses.SoundThump, Value: 0x13})
	ooo.AudioEvent(audio.Event{Register: addresses.SoundFire, Value: 0x80})
	if ooo.Hash() == two {
		t.Fatal("event order not reflected in hash")
	}
}
