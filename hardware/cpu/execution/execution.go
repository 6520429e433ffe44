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

// Package execution records the result of individual instructions. The
// cpu package updates a Result value on every call to ExecuteInstruction();
// the debugger and the disassembler use it for display.
package execution

import (
	"fmt"

	"github.com/sulevin/gopher6502/hardware/cpu/instructions"
)

// Result records a single execution of an instruction.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// the opcode byte itself
	OpCode uint8

	// decoded definition. nil when the opcode was not recognised or when
	// the CPU has not yet executed anything.
	Defn *instructions.Definition

	// the effective address the instruction read from or wrote to. only
	// meaningful for instructions whose addressing mode resolves one.
	EffectiveAddress uint16

	// whether a branch instruction took its branch
	BranchTaken bool
}

// Reset forgets the previous instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.OpCode = 0
	r.Defn = nil
	r.EffectiveAddress = 0
	r.BranchTaken = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x: %#02x (undecoded)", r.Address, r.OpCode)
	}

	s := fmt.Sprintf("%#04x: %s", r.Address, r.Defn.Mnemonic)
	switch {
	case r.Defn.IsBranch():
		if r.BranchTaken {
			s = fmt.Sprintf("%s -> %#04x", s, r.EffectiveAddress)
		} else {
			s = fmt.Sprintf("%s (not taken)", s)
		}
	case r.Defn.AddressingMode != instructions.NoAddressing:
		s = fmt.Sprintf("%s <%#04x>", s, r.EffectiveAddress)
	}

	return s
}
