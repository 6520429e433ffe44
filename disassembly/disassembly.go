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

// Package disassembly decodes a program image back into 6502 assembly
// mnemonics using the same instruction table the CPU decodes with.
//
// Decoding is linear from the start of the image. A byte that does not
// decode (either an opcode with no definition, or trailing operand bytes
// cut short by the end of the image) is emitted as a data byte; decoding
// resumes at the next byte. Linear decoding cannot distinguish data
// embedded in the instruction stream from code, a limit shared by any
// static disassembly.
package disassembly

import (
	"fmt"
	"io"

	"github.com/sulevin/gopher6502/hardware/cpu/instructions"
)

// Entry is one disassembled instruction, or one undecodable byte.
type Entry struct {
	Address uint16
	OpCode  uint8

	// nil when the byte at Address does not decode to an instruction
	Defn *instructions.Definition

	// the operand value. for single byte operands only the low byte is
	// meaningful.
	Operand uint16
}

// String returns the entry in conventional 6502 assembler notation.
func (e Entry) String() string {
	if e.Defn == nil {
		return fmt.Sprintf("$%04x .byte $%02x", e.Address, e.OpCode)
	}

	s := fmt.Sprintf("$%04x %s", e.Address, e.Defn.Mnemonic)

	switch e.Defn.AddressingMode {
	case instructions.NoAddressing:
		// no operand

	case instructions.Immediate:
		s = fmt.Sprintf("%s #$%02x", s, e.Operand)

	case instructions.Relative:
		// show the branch target rather than the raw displacement
		target := e.Address + 2 + e.Operand
		if e.Operand&0x0080 == 0x0080 {
			target += 0xff00
		}
		s = fmt.Sprintf("%s $%04x", s, target)

	case instructions.ZeroPage:
		s = fmt.Sprintf("%s $%02x", s, e.Operand)

	case instructions.ZeroPageX:
		s = fmt.Sprintf("%s $%02x,X", s, e.Operand)

	case instructions.ZeroPageY:
		s = fmt.Sprintf("%s $%02x,Y", s, e.Operand)

	case instructions.Absolute:
		s = fmt.Sprintf("%s $%04x", s, e.Operand)

	case instructions.AbsoluteX:
		s = fmt.Sprintf("%s $%04x,X", s, e.Operand)

	case instructions.AbsoluteY:
		s = fmt.Sprintf("%s $%04x,Y", s, e.Operand)

	case instructions.IndirectX:
		s = fmt.Sprintf("%s ($%02x,X)", s, e.Operand)

	case instructions.IndirectY:
		s = fmt.Sprintf("%s ($%02x),Y", s, e.Operand)
	}

	return s
}

// FromProgram disassembles the program image as though it were loaded at
// the origin address.
func FromProgram(program []byte, origin uint16) []Entry {
	entries := make([]Entry, 0, len(program))

	i := 0
	for i < len(program) {
		e := Entry{
			Address: origin + uint16(i),
			OpCode:  program[i],
			Defn:    instructions.GetDefinitions()[program[i]],
		}

		if e.Defn == nil {
			entries = append(entries, e)
			i++
			continue
		}

		operandBytes := e.Defn.AddressingMode.OperandBytes()
		if i+operandBytes >= len(program) {
			// the image ends mid-instruction. emit what remains as data.
			e.Defn = nil
			entries = append(entries, e)
			i++
			continue
		}

		switch operandBytes {
		case 1:
			e.Operand = uint16(program[i+1])
		case 2:
			e.Operand = (uint16(program[i+2]) << 8) | uint16(program[i+1])
		}

		entries = append(entries, e)
		i += operandBytes + 1
	}

	return entries
}

// Write the disassembly of the program image to the io.Writer, one entry
// per line.
func Write(output io.Writer, program []byte, origin uint16) {
	for _, e := range FromProgram(program, origin) {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}
