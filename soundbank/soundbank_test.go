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

package soundbank_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hockleyj/gopheroids/hardware/audio"
	"github.com/hockleyj/gopheroids/hardware/memory/addresses"
	"github.com/hockleyj/gopheroids/soundbank"
	"github.com/hockleyj/gopheroids/test"
)

// mockPlayer records the commands it receives in order.
type mockPlayer struct {
	commands []string
}

func (p *mockPlayer) Play(id soundbank.SampleID) {
	p.commands = append(p.commands, "play "+id.String())
}

func (p *mockPlayer) Loop(id soundbank.SampleID) {
	p.commands = append(p.commands, "loop "+id.String())
}

func (p *mockPlayer) Stop(id soundbank.SampleID) {
	p.commands = append(p.commands, "stop "+id.String())
}

func (p *mockPlayer) log() string {
	return strings.Join(p.commands, ";")
}

func TestSequencerOneShots(t *testing.T) {
	ply := &mockPlayer{}
	seq := soundbank.NewSequencer(ply)

	ev := func(reg uint16, value uint8) {
		seq.AudioEvent(audio.Event{Register: reg, Value: value})
	}

	// rising edge sounds the effect, holding the latch high does not
	ev(addresses.SoundFire, 0x80)
	ev(addresses.SoundFire, 0x80)
	test.Equate(t, ply.log(), "play fire")

	// release and fire again
	ev(addresses.SoundFire, 0x00)
	ev(addresses.SoundFire, 0x80)
	test.Equate(t, ply.log(), "play fire;play fire")

	ev(addresses.SoundSaucerFire, 0x80)
	test.Equate(t, ply.log(), "play fire;play fire;play saucer_fire")
}

func TestSequencerExplosionMask(t *testing.T) {
	ply := &mockPlayer{}
	seq := soundbank.NewSequencer(ply)

	ev := func(value uint8) {
		seq.AudioEvent(audio.Event{Register: addresses.SoundExplosion, Value: value})
	}

	ev(0x3f)
	test.Equate(t, ply.log(), "play explosion")

	// the pitch select bits change over the course of the explosion. the
	// volume is unchanged so the sample must not retrigger
	ev(0x7f)
	ev(0xff)
	test.Equate(t, ply.log(), "play explosion")

	// volume off then a new explosion
	ev(0x00)
	ev(0x3f)
	test.Equate(t, ply.log(), "play explosion;play explosion")
}

func TestSequencerSaucer(t *testing.T) {
	ply := &mockPlayer{}
	seq := soundbank.NewSequencer(ply)

	ev := func(reg uint16, value uint8) {
		seq.AudioEvent(audio.Event{Register: reg, Value: value})
	}

	// select the big saucer warble before raising the saucer latch
	ev(addresses.SoundSaucerSel, 0xa0)
	ev(addresses.SoundSaucer, 0x80)
	test.Equate(t, ply.log(), "loop saucer_big")

	// lowering the latch stops both warbles
	ev(addresses.SoundSaucer, 0x00)
	test.Equate(t, ply.log(), "loop saucer_big;stop saucer_big;stop saucer_small")

	// any other select value means the small saucer
	ev(addresses.SoundSaucerSel, 0x00)
	ev(addresses.SoundSaucer, 0x80)
	test.Equate(t, ply.log(),
		"loop saucer_big;stop saucer_big;stop saucer_small;loop saucer_small")
}

func TestSequencerBonusCooldown(t *testing.T) {
	ply := &mockPlayer{}
	seq := soundbank.NewSequencer(ply)

	ev := func(value uint8) {
		seq.AudioEvent(audio.Event{Register: addresses.SoundBonus, Value: value})
	}

	// repeated writes during the award period sound the chime only once
	ev(0x80)
	ev(0x00)
	ev(0x80)
	test.Equate(t, ply.log(), "play extra_life")

	// with the cooldown disabled every raised write chimes
	seq.BonusCooldown = 0
	time.Sleep(time.Millisecond)
	ev(0x80)
	test.Equate(t, ply.log(), "play extra_life;play extra_life")
}

func TestSequencerThump(t *testing.T) {
	ply := &mockPlayer{}
	seq := soundbank.NewSequencer(ply)

	ev := func(value uint8) {
		seq.AudioEvent(audio.Event{Register: addresses.SoundThump, Value: value})
	}

	// enable bit with the lowest pitch
	ev(0x10)
	ev(0x00)
	test.Equate(t, ply.log(), "play thump_low")

	// any higher pitch uses the other sample
	ev(0x1f)
	test.Equate(t, ply.log(), "play thump_low;play thump_high")

	// no retrigger until the register drops back
	ev(0x10)
	test.Equate(t, ply.log(), "play thump_low;play thump_high")
}

func TestSequencerThrust(t *testing.T) {
	ply := &mockPlayer{}
	seq := soundbank.NewSequencer(ply)

	ev := func(value uint8) {
		seq.AudioEvent(audio.Event{Register: addresses.SoundThrust, Value: value})
	}

	ev(0x80)
	ev(0x80)
	test.Equate(t, ply.log(), "loop thrust")

	ev(0x00)
	test.Equate(t, ply.log(), "loop thrust;stop thrust")
}

func writeWav(t *testing.T, path string, rate int, numChans int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	test.ExpectedSuccess(t, err)

	enc := wav.NewEncoder(f, rate, 16, numChans, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: numChans, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           data,
	})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, enc.Close())
	test.ExpectedSuccess(t, f.Close())
}

func TestBankLoad(t *testing.T) {
	dir := t.TempDir()

	// a short stereo file for the fire effect. the left channel carries
	// the values of interest
	writeWav(t, filepath.Join(dir, "fire.wav"), 22050, 2,
		[]int{16384, 0, -16384, 0, 8192, 0, 0, 0})

	bnk, err := soundbank.Load(dir)
	test.ExpectedSuccess(t, err)

	smp := bnk.Sample(soundbank.Fire)
	if smp == nil {
		t.Fatalf("fire sample has not been loaded")
	}

	test.Equate(t, smp.Rate, 22050.0)
	test.Equate(t, len(smp.Data), 4)
	test.Equate(t, float64(smp.Data[0]), 0.5)
	test.Equate(t, float64(smp.Data[1]), -0.5)
	test.Equate(t, float64(smp.Data[2]), 0.25)
	test.Equate(t, float64(smp.Data[3]), 0.0)

	// effects without a sample file are simply absent
	if bnk.Sample(soundbank.Thrust) != nil {
		t.Fatalf("unexpected sample for effect with no file")
	}
}

func TestMixer(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "fire.wav"), 22050, 1,
		[]int{16384, -16384, 8192, 0})

	bnk, err := soundbank.Load(dir)
	test.ExpectedSuccess(t, err)

	// output rate matches the file so every source sample appears once
	mx := soundbank.NewMixer(bnk, 22050)
	buf := make([]float32, 6)

	// silence with no voices
	mx.Mix(buf)
	for i := range buf {
		test.Equate(t, float64(buf[i]), 0.0)
	}

	// a one-shot runs to the end and then falls silent
	mx.Play(soundbank.Fire)
	mx.Mix(buf)
	test.Equate(t, float64(buf[0]), 0.5)
	test.Equate(t, float64(buf[1]), -0.5)
	test.Equate(t, float64(buf[2]), 0.25)
	test.Equate(t, float64(buf[3]), 0.0)
	test.Equate(t, float64(buf[4]), 0.0)
	test.Equate(t, float64(buf[5]), 0.0)

	// playing an effect with no sample is quietly ignored
	mx.Play(soundbank.Thrust)
	mx.Mix(buf)
	test.Equate(t, float64(buf[0]), 0.0)

	// a looping voice wraps around until it is stopped
	mx.Loop(soundbank.Fire)
	mx.Mix(buf)
	test.Equate(t, float64(buf[3]), 0.0)
	test.Equate(t, float64(buf[4]), 0.5)
	test.Equate(t, float64(buf[5]), -0.5)

	mx.Stop(soundbank.Fire)
	mx.Mix(buf)
	test.Equate(t, float64(buf[0]), 0.0)
}

func TestMixerClipping(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, "fire.wav"), 22050, 1,
		[]int{16384, -16384, 8192, 0})

	bnk, err := soundbank.Load(dir)
	test.ExpectedSuccess(t, err)

	mx := soundbank.NewMixer(bnk, 22050)

	// three simultaneous voices sum past full scale
	mx.Play(soundbank.Fire)
	mx.Play(soundbank.Fire)
	mx.Play(soundbank.Fire)

	buf := make([]float32, 4)
	mx.Mix(buf)
	test.Equate(t, float64(buf[0]), 1.0)
	test.Equate(t, float64(buf[1]), -1.0)
	test.Equate(t, float64(buf[2]), 0.75)
	test.Equate(t, float64(buf[3]), 0.0)
}

func TestBankLoadMissingDirectory(t *testing.T) {
	bnk, err := soundbank.Load(filepath.Join(t.TempDir(), "no-such-dir"))
	test.ExpectedSuccess(t, err)

	for _, id := range []soundbank.SampleID{soundbank.Fire, soundbank.Thrust, soundbank.ExtraLife} {
		if bnk.Sample(id) != nil {
			t.Fatalf("unexpected sample in empty bank")
		}
	}
}
