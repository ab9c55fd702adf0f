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

// Package sdlaudio plays the mixed sound effect output through SDL.
package sdlaudio

import (
	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/hardware/clocks"
	"github.com/hockleyj/gopheroids/soundbank"
	"github.com/veandco/go-sdl2/sdl"
)

// playback frequency. sample files are resampled to this rate as they are
// mixed.
const sampleFreq = 44100

// one queued buffer holds a frame's worth of samples, so the mixing cadence
// matches the display.
const samplesPerQueue = sampleFreq / clocks.FramesPerSecond

// the most buffers allowed to sit in the device queue. any more than this
// and the sound lags noticeably behind the display.
const maxQueuedBuffers = 4

// Audio plays sound effect samples through an SDL audio device. The
// embedded Mixer means it implements the soundbank.Player interface.
//
// The type is not safe for concurrent use. All functions are expected on
// the emulation goroutine.
type Audio struct {
	*soundbank.Mixer

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// reused between calls to Queue()
	mix    []float32
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(bank *soundbank.Bank) (*Audio, error) {
	aud := &Audio{
		mix:    make([]float32, samplesPerQueue),
		buffer: make([]byte, samplesPerQueue*2),
	}

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(samplesPerQueue),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	aud.Mixer = soundbank.NewMixer(bank, float64(aud.spec.Freq))

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Queue mixes one frame's worth of samples and queues the result on the
// device. Call it once per frame. If the device is already holding enough
// audio the call does nothing, so a fast caller cannot run away from the
// loudspeaker.
func (aud *Audio) Queue() error {
	if sdl.GetQueuedAudioSize(aud.id) >= uint32(maxQueuedBuffers*len(aud.buffer)) {
		return nil
	}

	aud.Mix(aud.mix)

	for i, v := range aud.mix {
		s := int16(v * 32767)
		aud.buffer[i*2] = uint8(s)
		aud.buffer[i*2+1] = uint8(s >> 8)
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// End stops playback and closes the audio device.
func (aud *Audio) End() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
