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

package soundbank

import (
	"time"

	"github.com/hockleyj/gopheroids/hardware/audio"
	"github.com/hockleyj/gopheroids/hardware/memory/addresses"
)

// default minimum interval between extra life chimes.
const bonusCooldown = 3 * time.Second

// Player is the playback device the Sequencer drives. Play sounds an effect
// once. Loop sounds it repeatedly until Stop. All three must cope with
// effects that have no sample loaded.
type Player interface {
	Play(SampleID)
	Loop(SampleID)
	Stop(SampleID)
}

// Sequencer converts sound register writes into commands for a Player. It
// implements the audio.Tap interface and is attached to the machine with
// Machine.Audio.Attach().
type Sequencer struct {
	player Player

	// most recent value seen for each sound register. the explosion entry
	// stores the masked value
	prev map[uint16]uint8

	// time of the last extra life chime. the game holds the bonus latch
	// high for the whole award, so the chime must not retrigger on every
	// write
	lastBonus time.Time

	// BonusCooldown is the minimum interval between extra life chimes.
	BonusCooldown time.Duration
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type.
func NewSequencer(player Player) *Sequencer {
	return &Sequencer{
		player:        player,
		prev:          make(map[uint16]uint8, len(addresses.SoundRegisters)),
		BonusCooldown: bonusCooldown,
	}
}

// AudioEvent implements the audio.Tap interface.
func (sq *Sequencer) AudioEvent(ev audio.Event) {
	value := ev.Value

	switch ev.Register {
	case addresses.SoundFire:
		if value > sq.prev[ev.Register] {
			sq.player.Play(Fire)
		}

	case addresses.SoundExplosion:
		// low six bits are the volume. the pitch select bits above them
		// change during the explosion and must not retrigger the sample
		value &= 0x3f
		if value > sq.prev[ev.Register] {
			sq.player.Play(Explosion)
		}

	case addresses.SoundSaucer:
		prev := sq.prev[ev.Register]
		if value > prev {
			if sq.prev[addresses.SoundSaucerSel] == 0xa0 {
				sq.player.Loop(SaucerBig)
			} else {
				sq.player.Loop(SaucerSmall)
			}
		} else if value < prev {
			sq.player.Stop(SaucerBig)
			sq.player.Stop(SaucerSmall)
		}

	case addresses.SoundSaucerFire:
		if value > sq.prev[ev.Register] {
			sq.player.Play(SaucerFire)
		}

	case addresses.SoundBonus:
		if value > 0 && time.Since(sq.lastBonus) >= sq.BonusCooldown {
			sq.player.Play(ExtraLife)
			sq.lastBonus = time.Now()
		}

	case addresses.SoundThump:
		// bit 4 enables the thump and the low four bits set its pitch.
		// the lowest pitch the game uses is the enable bit alone
		if value > 0x04 && sq.prev[ev.Register] <= 0x04 {
			if value == 0x10 {
				sq.player.Play(ThumpLow)
			} else {
				sq.player.Play(ThumpHigh)
			}
		}

	case addresses.SoundThrust:
		prev := sq.prev[ev.Register]
		if value > prev {
			sq.player.Loop(Thrust)
		} else if value < prev {
			sq.player.Stop(Thrust)
		}
	}

	sq.prev[ev.Register] = value
}
