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

package audio

import (
	"github.com/hockleyj/gopheroids/hardware/memory/addresses"
)

// Event is one write to a sound register.
type Event struct {
	// the register that was written. one of the addresses.Sound* values
	Register uint16

	// the value placed on the bus
	Value uint8
}

// Tap is anything that wants to hear about sound register writes as they
// happen. Implementations must not block: the machine calls AudioEvent
// from inside the CPU write cycle.
type Tap interface {
	AudioEvent(Event)
}

// Latches holds the most recent value written to each sound register,
// mirroring the discrete latches on the board that hold their value until
// the program writes again. Writes are forwarded to any attached taps.
type Latches struct {
	values map[uint16]uint8
	taps   []Tap
}

// NewLatches is the preferred method of initialisation for the Latches type.
func NewLatches() *Latches {
	lt := &Latches{
		values: make(map[uint16]uint8, len(addresses.SoundRegisters)),
	}
	for _, reg := range addresses.SoundRegisters {
		lt.values[reg] = 0x00
	}
	return lt
}

// Attach adds a tap to the notification list. There is no way to detach.
func (lt *Latches) Attach(tap Tap) {
	lt.taps = append(lt.taps, tap)
}

// Write latches a new value for a sound register and notifies the taps.
// Addresses outside the sound register set are ignored.
func (lt *Latches) Write(address uint16, data uint8) {
	if _, ok := lt.values[address]; !ok {
		return
	}

	lt.values[address] = data
	for _, tap := range lt.taps {
		tap.AudioEvent(Event{Register: address, Value: data})
	}
}

// Value returns the latched value for a sound register. Registers that have
// never been written read as zero, as do addresses outside the sound set.
func (lt *Latches) Value(address uint16) uint8 {
	return lt.values[address]
}

// Reset returns every latch to zero. Taps are not notified and remain
// attached.
func (lt *Latches) Reset() {
	for reg := range lt.values {
		lt.values[reg] = 0x00
	}
}
