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

package registers_test

import (
	"testing"

	"github.com/sulevin/gopher6502/hardware/cpu/registers"
	"github.com/sulevin/gopher6502/test"
)

func TestRegisterAdd(t *testing.T) {
	r := registers.NewRegister(0x7f, "A")

	carry, overflow := r.Add(0x01, false)
	test.Equate(t, r.Value(), 0x80)
	test.ExpectedFailure(t, carry)
	test.ExpectedSuccess(t, overflow)
	test.ExpectedSuccess(t, r.IsNegative())

	r.Load(0xff)
	carry, overflow = r.Add(0x01, false)
	test.Equate(t, r.Value(), 0x00)
	test.ExpectedSuccess(t, carry)
	test.ExpectedFailure(t, overflow)
	test.ExpectedSuccess(t, r.IsZero())

	// carry in
	r.Load(0x01)
	carry, overflow = r.Add(0x01, true)
	test.Equate(t, r.Value(), 0x03)
	test.ExpectedFailure(t, carry)
	test.ExpectedFailure(t, overflow)
}

func TestRegisterSubtract(t *testing.T) {
	// subtract with carry set is a plain subtract in 6502 terms
	r := registers.NewRegister(0x02, "A")
	carry, _ := r.Subtract(0x01, true)
	test.Equate(t, r.Value(), 0x01)
	test.ExpectedSuccess(t, carry)

	// subtracting a larger value clears carry
	r.Load(0x01)
	carry, _ = r.Subtract(0x02, true)
	test.Equate(t, r.Value(), 0xff)
	test.ExpectedFailure(t, carry)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "A")

	carry := r.ASL()
	test.ExpectedSuccess(t, carry)
	test.Equate(t, r.Value(), 0x02)

	carry = r.LSR()
	test.ExpectedFailure(t, carry)
	test.Equate(t, r.Value(), 0x01)

	carry = r.LSR()
	test.ExpectedSuccess(t, carry)
	test.Equate(t, r.Value(), 0x00)
}

func TestRegisterLogical(t *testing.T) {
	r := registers.NewRegister(0x55, "A")

	r.AND(0xaa)
	test.Equate(t, r.Value(), 0x00)

	r.ORA(0x0f)
	test.Equate(t, r.Value(), 0x0f)

	r.EOR(0xff)
	test.Equate(t, r.Value(), 0xf0)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.Equate(t, pc.Address(), 0xfffe)

	// program counter arithmetic wraps around the top of the address space
	pc.Add(0x03)
	test.Equate(t, pc.Address(), 0x0001)

	pc.Load(0x8000)
	test.Equate(t, pc.Address(), 0x8000)
	test.Equate(t, pc.String(), "0x8000")
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// power-up pattern has the interrupt disable and break2 flags set
	test.Equate(t, sr.Value(), registers.PowerUp)
	test.Equate(t, sr.String(), "svUbdIzc")

	sr.Carry = true
	sr.Zero = true
	sr.Sign = true
	test.Equate(t, sr.String(), "SvUbdIZC")

	// round trip through the packed representation
	v := sr.Value()
	sr2 := registers.NewStatusRegister()
	sr2.FromValue(v)
	test.Equate(t, sr2.Value(), v)

	// reset is idempotent
	sr.Reset()
	sr.Reset()
	test.Equate(t, sr.Value(), registers.PowerUp)
}
