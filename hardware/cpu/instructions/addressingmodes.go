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

package instructions

// AddressingMode describes the method by which the instruction's operand
// address is computed from the bytes following the opcode.
type AddressingMode int

// List of addressing modes. NoAddressing is for instructions that take no
// operand at all; it has no resolution rule and the address resolver will
// treat it as a table wiring defect if it ever sees it.
const (
	NoAddressing AddressingMode = iota
	Immediate
	Relative // only used by branch instructions

	Absolute // abs
	ZeroPage // zpg

	IndirectX // (ind,X)
	IndirectY // (ind),Y

	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case NoAddressing:
		return "NoAddressing"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes, following the opcode, consumed
// by operands of the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case NoAddressing:
		return 0
	case Absolute, AbsoluteX, AbsoluteY:
		return 2
	}
	return 1
}
