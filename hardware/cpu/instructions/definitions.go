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

// the table is grouped by mnemonic rather than ordered by opcode. adding an
// opcode is a one line change; opcodes that are absent decode to nil and
// surface as the unknown opcode condition at run time.
var definitions = []Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Operator: Brk, AddressingMode: NoAddressing, Effect: Interrupt},

	{OpCode: 0x69, Mnemonic: "ADC", Operator: Adc, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x65, Mnemonic: "ADC", Operator: Adc, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x75, Mnemonic: "ADC", Operator: Adc, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x6d, Mnemonic: "ADC", Operator: Adc, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x7d, Mnemonic: "ADC", Operator: Adc, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x79, Mnemonic: "ADC", Operator: Adc, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x61, Mnemonic: "ADC", Operator: Adc, AddressingMode: IndirectX, Effect: Read},
	{OpCode: 0x71, Mnemonic: "ADC", Operator: Adc, AddressingMode: IndirectY, Effect: Read},

	{OpCode: 0x29, Mnemonic: "AND", Operator: And, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x25, Mnemonic: "AND", Operator: And, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x35, Mnemonic: "AND", Operator: And, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x2d, Mnemonic: "AND", Operator: And, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x3d, Mnemonic: "AND", Operator: And, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x39, Mnemonic: "AND", Operator: And, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x21, Mnemonic: "AND", Operator: And, AddressingMode: IndirectX, Effect: Read},
	{OpCode: 0x31, Mnemonic: "AND", Operator: And, AddressingMode: IndirectY, Effect: Read},

	{OpCode: 0x0a, Mnemonic: "ASL", Operator: Asl, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x06, Mnemonic: "ASL", Operator: Asl, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x16, Mnemonic: "ASL", Operator: Asl, AddressingMode: ZeroPageX, Effect: RMW},
	{OpCode: 0x0e, Mnemonic: "ASL", Operator: Asl, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x1e, Mnemonic: "ASL", Operator: Asl, AddressingMode: AbsoluteX, Effect: RMW},

	{OpCode: 0x24, Mnemonic: "BIT", Operator: Bit, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x2c, Mnemonic: "BIT", Operator: Bit, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0x10, Mnemonic: "BPL", Operator: Bpl, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x30, Mnemonic: "BMI", Operator: Bmi, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x50, Mnemonic: "BVC", Operator: Bvc, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x70, Mnemonic: "BVS", Operator: Bvs, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0x90, Mnemonic: "BCC", Operator: Bcc, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xb0, Mnemonic: "BCS", Operator: Bcs, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xd0, Mnemonic: "BNE", Operator: Bne, AddressingMode: Relative, Effect: Flow},
	{OpCode: 0xf0, Mnemonic: "BEQ", Operator: Beq, AddressingMode: Relative, Effect: Flow},

	{OpCode: 0x18, Mnemonic: "CLC", Operator: Clc, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x38, Mnemonic: "SEC", Operator: Sec, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x58, Mnemonic: "CLI", Operator: Cli, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x78, Mnemonic: "SEI", Operator: Sei, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0xb8, Mnemonic: "CLV", Operator: Clv, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0xd8, Mnemonic: "CLD", Operator: Cld, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0xf8, Mnemonic: "SED", Operator: Sed, AddressingMode: NoAddressing, Effect: Read},

	{OpCode: 0xc9, Mnemonic: "CMP", Operator: Cmp, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc5, Mnemonic: "CMP", Operator: Cmp, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xd5, Mnemonic: "CMP", Operator: Cmp, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xcd, Mnemonic: "CMP", Operator: Cmp, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xdd, Mnemonic: "CMP", Operator: Cmp, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0xd9, Mnemonic: "CMP", Operator: Cmp, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0xc1, Mnemonic: "CMP", Operator: Cmp, AddressingMode: IndirectX, Effect: Read},
	{OpCode: 0xd1, Mnemonic: "CMP", Operator: Cmp, AddressingMode: IndirectY, Effect: Read},

	{OpCode: 0xe0, Mnemonic: "CPX", Operator: Cpx, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xe4, Mnemonic: "CPX", Operator: Cpx, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xec, Mnemonic: "CPX", Operator: Cpx, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0xc0, Mnemonic: "CPY", Operator: Cpy, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xc4, Mnemonic: "CPY", Operator: Cpy, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xcc, Mnemonic: "CPY", Operator: Cpy, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0x49, Mnemonic: "EOR", Operator: Eor, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x45, Mnemonic: "EOR", Operator: Eor, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x55, Mnemonic: "EOR", Operator: Eor, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x4d, Mnemonic: "EOR", Operator: Eor, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x5d, Mnemonic: "EOR", Operator: Eor, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x59, Mnemonic: "EOR", Operator: Eor, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x41, Mnemonic: "EOR", Operator: Eor, AddressingMode: IndirectX, Effect: Read},
	{OpCode: 0x51, Mnemonic: "EOR", Operator: Eor, AddressingMode: IndirectY, Effect: Read},

	{OpCode: 0xa9, Mnemonic: "LDA", Operator: Lda, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa5, Mnemonic: "LDA", Operator: Lda, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb5, Mnemonic: "LDA", Operator: Lda, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xad, Mnemonic: "LDA", Operator: Lda, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbd, Mnemonic: "LDA", Operator: Lda, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0xb9, Mnemonic: "LDA", Operator: Lda, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0xa1, Mnemonic: "LDA", Operator: Lda, AddressingMode: IndirectX, Effect: Read},
	{OpCode: 0xb1, Mnemonic: "LDA", Operator: Lda, AddressingMode: IndirectY, Effect: Read},

	{OpCode: 0xa2, Mnemonic: "LDX", Operator: Ldx, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa6, Mnemonic: "LDX", Operator: Ldx, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb6, Mnemonic: "LDX", Operator: Ldx, AddressingMode: ZeroPageY, Effect: Read},
	{OpCode: 0xae, Mnemonic: "LDX", Operator: Ldx, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbe, Mnemonic: "LDX", Operator: Ldx, AddressingMode: AbsoluteY, Effect: Read},

	{OpCode: 0xa0, Mnemonic: "LDY", Operator: Ldy, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa4, Mnemonic: "LDY", Operator: Ldy, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb4, Mnemonic: "LDY", Operator: Ldy, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0xac, Mnemonic: "LDY", Operator: Ldy, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0xbc, Mnemonic: "LDY", Operator: Ldy, AddressingMode: AbsoluteX, Effect: Read},

	{OpCode: 0x4a, Mnemonic: "LSR", Operator: Lsr, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x46, Mnemonic: "LSR", Operator: Lsr, AddressingMode: ZeroPage, Effect: RMW},
	{OpCode: 0x56, Mnemonic: "LSR", Operator: Lsr, AddressingMode: ZeroPageX, Effect: RMW},
	{OpCode: 0x4e, Mnemonic: "LSR", Operator: Lsr, AddressingMode: Absolute, Effect: RMW},
	{OpCode: 0x5e, Mnemonic: "LSR", Operator: Lsr, AddressingMode: AbsoluteX, Effect: RMW},

	{OpCode: 0xea, Mnemonic: "NOP", Operator: Nop, AddressingMode: NoAddressing, Effect: Read},

	{OpCode: 0x09, Mnemonic: "ORA", Operator: Ora, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0x05, Mnemonic: "ORA", Operator: Ora, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0x15, Mnemonic: "ORA", Operator: Ora, AddressingMode: ZeroPageX, Effect: Read},
	{OpCode: 0x0d, Mnemonic: "ORA", Operator: Ora, AddressingMode: Absolute, Effect: Read},
	{OpCode: 0x1d, Mnemonic: "ORA", Operator: Ora, AddressingMode: AbsoluteX, Effect: Read},
	{OpCode: 0x19, Mnemonic: "ORA", Operator: Ora, AddressingMode: AbsoluteY, Effect: Read},
	{OpCode: 0x01, Mnemonic: "ORA", Operator: Ora, AddressingMode: IndirectX, Effect: Read},
	{OpCode: 0x11, Mnemonic: "ORA", Operator: Ora, AddressingMode: IndirectY, Effect: Read},

	{OpCode: 0x85, Mnemonic: "STA", Operator: Sta, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x95, Mnemonic: "STA", Operator: Sta, AddressingMode: ZeroPageX, Effect: Write},
	{OpCode: 0x8d, Mnemonic: "STA", Operator: Sta, AddressingMode: Absolute, Effect: Write},
	{OpCode: 0x9d, Mnemonic: "STA", Operator: Sta, AddressingMode: AbsoluteX, Effect: Write},
	{OpCode: 0x99, Mnemonic: "STA", Operator: Sta, AddressingMode: AbsoluteY, Effect: Write},
	{OpCode: 0x81, Mnemonic: "STA", Operator: Sta, AddressingMode: IndirectX, Effect: Write},
	{OpCode: 0x91, Mnemonic: "STA", Operator: Sta, AddressingMode: IndirectY, Effect: Write},

	{OpCode: 0x86, Mnemonic: "STX", Operator: Stx, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x96, Mnemonic: "STX", Operator: Stx, AddressingMode: ZeroPageY, Effect: Write},
	{OpCode: 0x8e, Mnemonic: "STX", Operator: Stx, AddressingMode: Absolute, Effect: Write},

	{OpCode: 0x84, Mnemonic: "STY", Operator: Sty, AddressingMode: ZeroPage, Effect: Write},
	{OpCode: 0x94, Mnemonic: "STY", Operator: Sty, AddressingMode: ZeroPageX, Effect: Write},
	{OpCode: 0x8c, Mnemonic: "STY", Operator: Sty, AddressingMode: Absolute, Effect: Write},

	{OpCode: 0xaa, Mnemonic: "TAX", Operator: Tax, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0xa8, Mnemonic: "TAY", Operator: Tay, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x8a, Mnemonic: "TXA", Operator: Txa, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x98, Mnemonic: "TYA", Operator: Tya, AddressingMode: NoAddressing, Effect: Read},

	{OpCode: 0xca, Mnemonic: "DEX", Operator: Dex, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0x88, Mnemonic: "DEY", Operator: Dey, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0xe8, Mnemonic: "INX", Operator: Inx, AddressingMode: NoAddressing, Effect: Read},
	{OpCode: 0xc8, Mnemonic: "INY", Operator: Iny, AddressingMode: NoAddressing, Effect: Read},
}

// GetDefinitions returns the decode table: 256 entries indexed by opcode,
// nil for opcodes with no definition. The returned slice is shared; callers
// must not mutate it.
func GetDefinitions() []*Definition {
	return decodeTable
}

var decodeTable []*Definition

func init() {
	decodeTable = make([]*Definition, 256)
	for i := range definitions {
		if decodeTable[definitions[i].OpCode] != nil {
			panic(fmt.Sprintf("instructions: opcode %#02x defined twice", definitions[i].OpCode))
		}
		decodeTable[definitions[i].OpCode] = &definitions[i]
	}
}
