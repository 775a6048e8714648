// This file is part of Scimitar.
//
// Scimitar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scimitar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scimitar.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/hardware/audio"
	"github.com/scimitar-emu/scimitar/hardware/cpu"
	"github.com/scimitar-emu/scimitar/hardware/joypad"
	"github.com/scimitar-emu/scimitar/hardware/memory"
	"github.com/scimitar-emu/scimitar/hardware/memory/bootrom"
	"github.com/scimitar-emu/scimitar/hardware/memory/cartridge"
	"github.com/scimitar-emu/scimitar/hardware/memory/cpubus"
	"github.com/scimitar-emu/scimitar/hardware/model"
	"github.com/scimitar-emu/scimitar/hardware/preferences"
	"github.com/scimitar-emu/scimitar/hardware/serial"
	"github.com/scimitar-emu/scimitar/hardware/timer"
	"github.com/scimitar-emu/scimitar/hardware/video"
	"github.com/scimitar-emu/scimitar/logger"
	"github.com/scimitar-emu/scimitar/random"
)

// GameBoy is the main container for the emulated components of the Game Boy.
type GameBoy struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Mem *memory.Memory

	Cart   *cartridge.Cartridge
	Video  *video.Video
	Audio  *audio.Audio
	Timer  *timer.Timer
	Joypad *joypad.Joypad
	Serial *serial.Serial

	// the model being emulated. decided by the boot ROM if there is one,
	// otherwise by the preferences
	Model model.Model

	// the boot ROM. can be nil
	boot *bootrom.BootROM

	// number of cycles since the last reset
	cycles uint64

	rnd *random.Random
}

// NewGameBoy creates a new GameBoy and everything associated with the
// hardware. The boot ROM can be nil, in which case the emulation starts at the
// cartridge entry point.
//
// The GameBoy is reset before it is returned.
func NewGameBoy(prefs *preferences.Preferences, cart *cartridge.Cartridge, boot *bootrom.BootROM) (*GameBoy, error) {
	if prefs == nil {
		return nil, curated.Errorf("hardware: no preferences")
	}
	if cart == nil {
		cart = cartridge.NewCartridge()
	}

	gb := &GameBoy{
		Prefs:  prefs,
		Cart:   cart,
		Video:  video.NewVideo(),
		Audio:  audio.NewAudio(),
		Timer:  timer.NewTimer(),
		Joypad: joypad.NewJoypad(),
		Serial: serial.NewSerial(),
		Model:  prefs.GetModel(),
		boot:   boot,
	}

	if boot != nil {
		gb.Model = boot.Model
	}

	gb.Mem = memory.NewMemory(gb.Cart, memory.Peripherals{
		Video:  gb.Video,
		Audio:  gb.Audio,
		Timer:  gb.Timer,
		Joypad: gb.Joypad,
		Serial: gb.Serial,
	})

	gb.CPU = cpu.NewCPU(gb.Mem)
	gb.rnd = random.NewRandom(gb)

	gb.Reset()

	return gb, nil
}

// Cycles implements the random.Clock interface.
func (gb *GameBoy) Cycles() uint64 {
	return gb.cycles
}

// Reset the GameBoy to the power on state. If there is a boot ROM the CPU
// starts at address zero with the boot ROM overlaying the cartridge.
func (gb *GameBoy) Reset() {
	gb.cycles = 0

	gb.Mem.Reset()
	gb.Video.Reset()
	gb.Audio.Reset()
	gb.Timer.Reset()
	gb.Joypad.Reset()
	gb.Serial.Reset()

	if gb.boot != nil {
		gb.Cart.AttachBootROM(gb.boot.Data())
	} else {
		// the boot ROM would have disabled itself before handing control to
		// the cartridge
		gb.Mem.WriteByte(cpubus.BOOT, 0x01)
	}

	if gb.Prefs.RandomState.Get().(bool) {
		gb.Mem.Randomise(gb.rnd)
	}

	for _, w := range gb.Mem.Watchpoints() {
		gb.Mem.RemoveWatchpoint(w)
	}
	for _, w := range gb.Prefs.GetWatchpoints() {
		gb.Mem.AddWatchpoint(w)
	}

	gb.CPU.Reset(gb.Model, gb.boot != nil)

	logger.Logf(logger.Allow, "hardware", "reset %s (boot ROM: %v)", gb.Model, gb.boot != nil)
}

// FindBootROM returns the boot ROM specified by the preferences. If the
// BootROM preference is empty then the boot ROM for the model in the
// preferences is looked for with bootrom.Lookup().
//
// Returns nil and no error if the UseBootROM preference is false.
func FindBootROM(prefs *preferences.Preferences) (*bootrom.BootROM, error) {
	if !prefs.UseBootROM.Get().(bool) {
		return nil, nil
	}

	if pth := prefs.BootROM.String(); pth != "" {
		b, err := bootrom.Load(pth)
		if err != nil {
			return nil, err
		}
		b.Model = prefs.GetModel()
		return b, nil
	}

	return bootrom.Lookup([]model.Model{prefs.GetModel()})
}
