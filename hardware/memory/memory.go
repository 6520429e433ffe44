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

// Package memory implements the 64KiB address space visible to the CPU.
// There is no mirroring and no memory mapped hardware; every address is
// plain RAM. The region above cpubus.ProgramOrigin is reserved for the
// program image written by the Load() function.
package memory

import (
	"github.com/sulevin/gopher6502/curated"
	"github.com/sulevin/gopher6502/hardware/memory/cpubus"
	"github.com/sulevin/gopher6502/logger"
)

// sentinel error returned by Load().
const ProgramTooLarge = "memory: program of %d bytes will not fit above %#04x"

// RAM is a flat 64KiB memory. It implements the cpubus.Memory interface.
// Each RAM is owned by exactly one console instance; the backing array never
// escapes.
type RAM struct {
	ram []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Memory
// is zero filled.
func NewRAM() *RAM {
	return &RAM{
		ram: make([]uint8, 0x10000),
	}
}

// Read implements the cpubus.Memory interface. It never fails for RAM;
// every address is readable.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.ram[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.ram[address] = data
	return nil
}

// Load copies the program image verbatim to cpubus.ProgramOrigin and points
// the reset vector at it. Registers are untouched; call Reset() on the CPU
// before running.
//
// The reset vector itself lives inside the program region so the practical
// limit on the image is slightly less than the region size. An image that
// would overwrite the top of memory is rejected.
func (ram *RAM) Load(program []byte) error {
	if len(program) > 0x10000-int(cpubus.ProgramOrigin) {
		return curated.Errorf(ProgramTooLarge, len(program), cpubus.ProgramOrigin)
	}

	copy(ram.ram[cpubus.ProgramOrigin:], program)

	ram.ram[cpubus.Reset] = uint8(cpubus.ProgramOrigin & 0x00ff)
	ram.ram[cpubus.Reset+1] = uint8(cpubus.ProgramOrigin >> 8)

	logger.Logf("memory", "%d byte program loaded at %#04x", len(program), cpubus.ProgramOrigin)

	return nil
}
