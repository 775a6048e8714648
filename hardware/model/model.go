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

// Package model defines the variants of the Game Boy hardware that can be
// emulated. The model decides the name of the boot ROM file and the state of
// the CPU registers when the emulation starts without a boot ROM.
package model

import (
	"strings"

	"github.com/scimitar-emu/scimitar/curated"
)

// Model is a variant of the Game Boy hardware.
type Model int

// List of supported models.
const (
	DMG0 Model = iota
	DMG
	MGB
	SGB
	SGB2
)

// DefaultPriority is the order in which models are tried when looking for a
// boot ROM.
var DefaultPriority = []Model{DMG, DMG0, MGB, SGB2, SGB}

func (m Model) String() string {
	switch m {
	case DMG0:
		return "DMG0"
	case DMG:
		return "DMG"
	case MGB:
		return "MGB"
	case SGB:
		return "SGB"
	case SGB2:
		return "SGB2"
	}
	return "unknown model"
}

// FromString returns the model named by the string. The comparison is case
// insensitive.
func FromString(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DMG0":
		return DMG0, nil
	case "DMG":
		return DMG, nil
	case "MGB":
		return MGB, nil
	case "SGB":
		return SGB, nil
	case "SGB2":
		return SGB2, nil
	}
	return DMG, curated.Errorf("model: unrecognised model type (%s)", s)
}

// BootROMName returns the filename of the boot ROM for the model.
func (m Model) BootROMName() string {
	switch m {
	case DMG0:
		return "dmg0_rom.bin"
	case DMG:
		return "dmg_boot.bin"
	case MGB:
		return "mgb_boot.bin"
	case SGB:
		return "sgb_boot.bin"
	case SGB2:
		return "sgb2_boot.bin"
	}
	return ""
}

// Registers is the state of the CPU registers left behind by the boot ROM.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16
}

// PostBoot returns the state of the CPU registers at the moment the boot ROM
// hands control to the cartridge.
func (m Model) PostBoot() Registers {
	r := Registers{
		SP: 0xfffe,
		PC: 0x0100,
	}

	switch m {
	case DMG0:
		r.A, r.F = 0x01, 0x00
		r.B, r.C = 0xff, 0x13
		r.D, r.E = 0x00, 0xc1
		r.H, r.L = 0x84, 0x03
	case DMG, MGB:
		r.A, r.F = 0x01, 0xb0
		r.B, r.C = 0x00, 0x13
		r.D, r.E = 0x00, 0xd8
		r.H, r.L = 0x01, 0x4d
		if m == MGB {
			r.A = 0xff
		}
	case SGB, SGB2:
		r.A, r.F = 0x01, 0x00
		r.B, r.C = 0x00, 0x14
		r.D, r.E = 0x00, 0x00
		r.H, r.L = 0xc0, 0x60
		if m == SGB2 {
			r.A = 0xff
		}
	}

	return r
}
