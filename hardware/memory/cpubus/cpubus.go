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

// Package cpubus defines how the CPU sees memory. The CPU never holds a
// concrete memory type, only the Memory interface, so tests and tools can
// substitute their own implementations.
package cpubus

// Memory defines the operations the CPU requires of the memory system.
// Addresses cover the full 16 bit space; implementations decide what, if
// anything, lives at each address.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Reset is the address of the reset vector. The 16 bit address stored here
// (little-endian) is where the CPU begins execution after a reset.
const Reset = uint16(0xfffc)

// ProgramOrigin is the address at which program images are loaded. The
// region from here to the top of memory is reserved for the program.
const ProgramOrigin = uint16(0x8000)
