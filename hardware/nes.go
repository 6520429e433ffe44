// This file is part of gopher6502.
//
// gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package hardware assembles the components of the console. The only
// components in this emulation are the CPU and its memory; there is no PPU,
// APU, cartridge mapper or input device.
package hardware

import (
	"github.com/sulevin/gopher6502/hardware/cpu"
	"github.com/sulevin/gopher6502/hardware/memory"
)

// NES is the top of the hardware hierarchy. Every NES owns its CPU and RAM
// exclusively; create one instance per concurrent use, they share nothing.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewNES is the preferred method of initialisation for the NES structure.
func NewNES() *NES {
	mem := memory.NewRAM()
	return &NES{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// Load writes the program image into memory at the program origin and
// points the reset vector at it. The CPU is not touched; follow with
// Reset() before running.
func (nes *NES) Load(program []byte) error {
	return nes.Mem.Load(program)
}

// Reset restores the CPU registers to their power-up values and loads the
// PC from the reset vector.
func (nes *NES) Reset() error {
	return nes.CPU.Reset()
}

// Run executes instructions from the current PC until the CPU halts on a
// BRK instruction. The error is non-nil if an undecodable opcode was found
// in the instruction stream.
func (nes *NES) Run() error {
	return nes.CPU.Run(cpu.NilCallback)
}

// LoadAndRun composes Load(), Reset() and Run(). It is the primary
// interface for client code that just wants to execute a program image.
func (nes *NES) LoadAndRun(program []byte) error {
	if err := nes.Load(program); err != nil {
		return err
	}
	if err := nes.Reset(); err != nil {
		return err
	}
	return nes.Run()
}
