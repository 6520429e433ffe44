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

import "fmt"

// Operator identifies the operation performed by an instruction,
// independently of its addressing mode.
type Operator int

// List of operators.
const (
	Brk Operator = iota

	Adc
	And
	Asl
	Bit
	Cmp
	Cpx
	Cpy
	Eor
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Sta
	Stx
	Sty

	Clc
	Cld
	Cli
	Clv
	Sec
	Sed
	Sei

	Tax
	Tay
	Txa
	Tya

	Dex
	Dey
	Inx
	Iny

	Bcc
	Bcs
	Beq
	Bmi
	Bne
	Bpl
	Bvc
	Bvs
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories. Read instructions fetch a value from the
// effective address before the operator runs; Write instructions only use
// the address as a target; RMW instructions do both. Flow instructions
// (branches) have a variable effect on the program counter. Interrupt is
// used by BRK alone.
const (
	Read EffectCategory = iota
	Write
	RMW
	Flow
	Interrupt
)

// Definition describes a single opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operator       Operator
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns the instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s [%s]", defn.OpCode, defn.Mnemonic, defn.AddressingMode)
}

// Bytes returns the total length of the instruction, opcode included.
func (defn Definition) Bytes() int {
	return defn.AddressingMode.OperandBytes() + 1
}

// IsBranch returns true if the instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}
