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

// Package input represents the cabinet's switch inputs: the five player
// buttons, the coin and start switches, the service switches and the bank
// of eight option dips.
//
// The Switches type is a value, not a live device. User interfaces build a
// Switches snapshot from whatever real input they have (keyboard, joystick,
// playback script) and hand it to the machine, which latches it at the next
// frame boundary. Latching per frame keeps emulation deterministic: the
// same sequence of snapshots always produces the same sequence of frames,
// no matter how the host delivers its events.
//
// The Read function implements the bus view of the switches. Each switch
// has its own register address and reads as 0xff when closed and 0x00 when
// open, so the program's BIT/BMI style tests on bit 7 work as they do on
// the real board. The dip registers are different: each of the four reads
// two option bits in the low two bits of the value.
package input
