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

package cpu

import (
	"fmt"

	"github.com/sulevin/gopher6502/hardware/cpu/instructions"
)

// effectiveAddress resolves the addressing mode to the address the
// instruction should read from or write to. On entry the PC points at the
// first operand byte; the resolver reads operand bytes through the PC but
// never moves it. All address arithmetic wraps: 8 bit wrapping for zero
// page indexing and for the zero page pointer reads of the indirect modes,
// 16 bit wrapping everywhere else.
//
// A mode without a resolution rule here is a defect in the instruction
// table, not a runtime condition, and panics accordingly.
func (mc *CPU) effectiveAddress(mode instructions.AddressingMode) (uint16, error) {
	switch mode {
	case instructions.Immediate:
		// the operand byte itself is the value so the effective address is
		// the PC
		return mc.PC.Address(), nil

	case instructions.ZeroPage:
		v, err := mc.read8Bit(mc.PC.Address())
		return uint16(v), err

	case instructions.ZeroPageX:
		v, err := mc.read8Bit(mc.PC.Address())
		return uint16(v + mc.X.Value()), err

	case instructions.ZeroPageY:
		v, err := mc.read8Bit(mc.PC.Address())
		return uint16(v + mc.Y.Value()), err

	case instructions.Absolute:
		return mc.read16Bit(mc.PC.Address())

	case instructions.AbsoluteX:
		base, err := mc.read16Bit(mc.PC.Address())
		return base + mc.X.Address(), err

	case instructions.AbsoluteY:
		base, err := mc.read16Bit(mc.PC.Address())
		return base + mc.Y.Address(), err

	case instructions.IndirectX:
		v, err := mc.read8Bit(mc.PC.Address())
		if err != nil {
			return 0, err
		}

		// the pointer stays in the zero page, as do both bytes of the
		// address it points to
		ptr := v + mc.X.Value()

		lo, err := mc.read8Bit(uint16(ptr))
		if err != nil {
			return 0, err
		}
		hi, err := mc.read8Bit(uint16(ptr + 1))
		if err != nil {
			return 0, err
		}

		return (uint16(hi) << 8) | uint16(lo), nil

	case instructions.IndirectY:
		ptr, err := mc.read8Bit(mc.PC.Address())
		if err != nil {
			return 0, err
		}

		lo, err := mc.read8Bit(uint16(ptr))
		if err != nil {
			return 0, err
		}
		hi, err := mc.read8Bit(uint16(ptr + 1))
		if err != nil {
			return 0, err
		}

		base := (uint16(hi) << 8) | uint16(lo)

		return base + mc.Y.Address(), nil
	}

	panic(fmt.Sprintf("cpu: addressing mode (%s) has no resolution rule", mode))
}
