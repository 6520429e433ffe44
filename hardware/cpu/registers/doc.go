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

// Package registers implements the three registers-like types found in the
// 6502: the general purpose 8 bit register (used for the accumulator and the
// two index registers), the 16 bit program counter and the status register.
//
// All register arithmetic wraps. Overflow out of a register is never an
// error; where it is meaningful (the Add() function of the Register type)
// the carry and overflow conditions are returned for the CPU to fold into
// the status register.
package registers
