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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/sulevin/gopher6502/disassembly"
	"github.com/sulevin/gopher6502/test"
)

func TestFromProgram(t *testing.T) {
	// LDA #$c0; TAX; INX; BRK
	program := []byte{0xa9, 0xc0, 0xaa, 0xe8, 0x00}

	entries := disassembly.FromProgram(program, 0x8000)
	test.Equate(t, len(entries), 4)

	test.Equate(t, entries[0].String(), "$8000 LDA #$c0")
	test.Equate(t, entries[1].String(), "$8002 TAX")
	test.Equate(t, entries[2].String(), "$8003 INX")
	test.Equate(t, entries[3].String(), "$8004 BRK")
}

func TestAddressingModeNotation(t *testing.T) {
	program := []byte{
		0xa5, 0x10, // LDA $10
		0xb5, 0x10, // LDA $10,X
		0xad, 0xef, 0xbe, // LDA $beef
		0xbd, 0xef, 0xbe, // LDA $beef,X
		0xa1, 0xde, // LDA ($de,X)
		0xb1, 0xde, // LDA ($de),Y
		0xf0, 0x0a, // BEQ +$0a
		0xd0, 0xfc, // BNE -$04
	}

	entries := disassembly.FromProgram(program, 0x8000)
	test.Equate(t, len(entries), 8)

	test.Equate(t, entries[0].String(), "$8000 LDA $10")
	test.Equate(t, entries[1].String(), "$8002 LDA $10,X")
	test.Equate(t, entries[2].String(), "$8004 LDA $beef")
	test.Equate(t, entries[3].String(), "$8007 LDA $beef,X")
	test.Equate(t, entries[4].String(), "$800a LDA ($de,X)")
	test.Equate(t, entries[5].String(), "$800c LDA ($de),Y")

	// branch operands display as the branch target
	test.Equate(t, entries[6].String(), "$800e BEQ $801a")
	test.Equate(t, entries[7].String(), "$8010 BNE $800e")
}

func TestUndecodableBytes(t *testing.T) {
	// 0xff does not decode; a trailing operand-less LDA is data too
	program := []byte{0xff, 0xea, 0xa9}

	entries := disassembly.FromProgram(program, 0x8000)
	test.Equate(t, len(entries), 3)
	test.Equate(t, entries[0].String(), "$8000 .byte $ff")
	test.Equate(t, entries[1].String(), "$8001 NOP")
	test.Equate(t, entries[2].String(), "$8002 .byte $a9")
}

func TestWrite(t *testing.T) {
	s := strings.Builder{}
	disassembly.Write(&s, []byte{0xe8, 0x00}, 0x8000)
	test.Equate(t, s.String(), "$8000 INX\n$8001 BRK\n")
}
