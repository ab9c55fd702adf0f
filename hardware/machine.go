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

package hardware

import (
	"github.com/hockleyj/gopheroids/display"
	"github.com/hockleyj/gopheroids/hardware/audio"
	"github.com/hockleyj/gopheroids/hardware/clocks"
	"github.com/hockleyj/gopheroids/hardware/cpu"
	"github.com/hockleyj/gopheroids/hardware/dvg"
	"github.com/hockleyj/gopheroids/hardware/input"
	"github.com/hockleyj/gopheroids/hardware/memory"
	"github.com/hockleyj/gopheroids/hardware/memory/addresses"
	"github.com/hockleyj/gopheroids/hardware/memory/memorymap"
	"github.com/hockleyj/gopheroids/romloader"
)

// The vector generator always begins the display list at word one,
// regardless of the value the program writes to the go register.
const dvgListStart = 1

// The CPU spends this many cycles on its reset sequence before the first
// fetch from the reset address.
const resetCycles = 6

// Machine is the assembled board: CPU, vector generator, memory and the
// devices behind the register areas, all running in the shared 1.5MHz clock
// domain.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	VG  *dvg.DVG

	// sound register latches. attach an audio.Tap here to hear about
	// sound writes
	Audio *audio.Latches

	// ROM is the loader the machine was built from. useful for its Hash
	// and ShortName
	ROM romloader.Loader

	// Switches is the snapshot the program is currently reading. it is
	// replaced from the pending snapshot at every frame boundary
	Switches input.Switches

	// Lamps is the output latch byte. bits 1 and 2 drive the player start
	// button lamps
	Lamps uint8

	// the snapshot that will be latched at the next frame boundary
	pending input.Switches

	renderers []display.Renderer

	// CPU cycles since reset. the single clock every other piece of
	// timing is derived from
	totalCycles uint64

	// the cycle at which the next periodic NMI is due
	nextNMI uint64

	// completed frames since reset
	frameNum int
}

// NewMachine creates a new Machine around a ROM image. The loader is loaded
// first if the caller has not already done so.
func NewMachine(loader romloader.Loader) (*Machine, error) {
	if !loader.HasLoaded() {
		if err := loader.Load(); err != nil {
			return nil, err
		}
	}

	mch := &Machine{
		ROM: loader,
	}

	mch.Mem = memory.NewMemory(loader.VectorROM(), loader.ProgramROM())
	mch.CPU = cpu.NewCPU(mch.Mem)
	mch.VG = dvg.NewDVG(mch.Mem)
	mch.Audio = audio.NewLatches()

	mch.wireRegisters()

	if err := mch.Reset(); err != nil {
		return nil, err
	}

	return mch, nil
}

// wireRegisters connects the device registers to the components behind
// them. Called once; the mappings survive Reset().
func (mch *Machine) wireRegisters() {
	mch.Mem.MapReadRegister(addresses.Clock3kHz, func(_ uint16) uint8 {
		return uint8((mch.totalCycles / clocks.PerTick) & 0xff)
	})

	mch.Mem.MapReadRegister(addresses.VgHalt, func(_ uint16) uint8 {
		if mch.VG.Halted() {
			return 0x00
		}
		return 0xff
	})

	switchRead := func(address uint16) uint8 {
		return mch.Switches.Read(address)
	}
	for _, a := range []uint16{
		addresses.Hyperspace, addresses.Fire, addresses.DiagStep,
		addresses.Slam, addresses.SelfTest,
		addresses.CoinLeft, addresses.CoinCenter, addresses.CoinRight,
		addresses.Player1Start, addresses.Player2Start,
		addresses.Thrust, addresses.RotateRight, addresses.RotateLeft,
	} {
		mch.Mem.MapReadRegister(a, switchRead)
	}
	for a := addresses.OriginDipSwitches; a <= addresses.MemtopDipSwitches; a++ {
		mch.Mem.MapReadRegister(a, switchRead)
	}

	// starting the vector generator also acknowledges the halt interrupt
	mch.Mem.MapWriteRegister(addresses.DmaGo, func(_ uint16, _ uint8) {
		mch.VG.Trigger(dvgListStart)
		mch.CPU.SignalIRQ(false)
	})

	for _, a := range addresses.SoundRegisters {
		mch.Mem.MapWriteRegister(a, mch.Audio.Write)
	}

	mch.Mem.MapWriteRegister(addresses.Lamps, func(_ uint16, data uint8) {
		mch.Lamps = data
	})

	// the program strobes the watchdog on every NMI. the reset circuit
	// behind it is not emulated so the strobe is accepted and forgotten
	mch.Mem.MapWriteRegister(addresses.WatchdogClear, func(_ uint16, _ uint8) {})
}

// Reset the machine to its power-on state: RAM cleared, sound latches
// quiet, vector generator halted, CPU started through the reset vector.
// Attached renderers and audio taps survive a reset.
func (mch *Machine) Reset() error {
	mch.Mem.Reset()
	mch.Audio.Reset()
	mch.VG.Reset()
	mch.VG.ResetSegments()

	mch.Switches = input.Switches{}
	mch.pending = input.Switches{}
	mch.Lamps = 0x00

	mch.CPU.Reset()
	if err := mch.CPU.LoadPCIndirect(memorymap.VectorReset); err != nil {
		return err
	}

	mch.totalCycles = resetCycles
	mch.nextNMI = clocks.PerNMI
	mch.frameNum = 0

	return nil
}

// AttachRenderer adds a renderer to the list notified at every frame
// boundary.
func (mch *Machine) AttachRenderer(rend display.Renderer) {
	mch.renderers = append(mch.renderers, rend)
}

// SetSwitches replaces the switch snapshot that will be latched at the
// start of the next frame. The program does not see the new snapshot until
// then.
func (mch *Machine) SetSwitches(sw input.Switches) {
	mch.pending = sw
}

// Cycles returns the number of CPU cycles since reset.
func (mch *Machine) Cycles() uint64 {
	return mch.totalCycles
}

// Frame returns the number of completed frames since reset.
func (mch *Machine) Frame() int {
	return mch.frameNum
}

// End gently closes every attached renderer. The machine itself needs no
// shutdown.
func (mch *Machine) End() error {
	var err error
	for _, rend := range mch.renderers {
		if e := rend.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
