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

// Package cpu emulates the 6502 found in the NES. It is not cycle accurate
// and does not emulate interrupts; it reproduces the documented register,
// memory and flag behaviour of each instruction.
//
// The CPU type requires an implementation of the cpubus.Memory interface.
// ExecuteInstruction() steps the CPU by one instruction; Run() loops until
// the CPU halts on a BRK instruction or an undecodable opcode is found in
// the instruction stream. The undecodable opcode condition is returned as a
// curated error with the UnknownOpcode pattern; it is the caller's decision
// whether that is fatal.
//
// Register logic is implemented by the registers sub-package and the decode
// table by the instructions sub-package. Details of the most recently
// executed instruction are recorded in the LastResult field, using the
// Result type of the execution sub-package.
package cpu
