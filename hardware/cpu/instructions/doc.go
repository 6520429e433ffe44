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

// Package instructions defines the instruction set understood by the CPU. A
// Definition pairs an opcode with its operator, addressing mode and effect
// category; GetDefinitions() returns the full 256-entry decode table,
// indexed by opcode.
//
// Not every opcode of the 6502 is defined. Table entries that are nil decode
// to the "unknown opcode" condition in the cpu package. Extending coverage
// is a matter of adding table rows (and, for a new operator, an arm to the
// execution switch in the cpu package).
package instructions
