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

package cpu_test

import (
	"testing"

	"github.com/sulevin/gopher6502/curated"
	"github.com/sulevin/gopher6502/hardware/cpu"
	"github.com/sulevin/gopher6502/test"
)

// mockMem is a bare 64KiB memory with no load/reset-vector logic. using it
// rather than the memory package keeps these tests independent of that
// package; with a zeroed reset vector the CPU starts execution at address
// zero, which is where the test programs live.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	v, _ := mem.Read(address)
	if v != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", v, value, address)
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
}

func newTestCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	if err := mc.Reset(); err != nil {
		t.Fatal(err)
	}
	return mc, mem
}

func TestZeroAndSignFlags(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$00; LDA #$80; LDA #$01
	mem.putInstructions(0, 0xa9, 0x00, 0xa9, 0x80, 0xa9, 0x01)

	step(t, mc) // LDA #$00
	test.Equate(t, mc.Status.String(), "svUbdIZc")

	step(t, mc) // LDA #$80
	test.Equate(t, mc.Status.String(), "SvUbdIzc")

	step(t, mc) // LDA #$01
	test.Equate(t, mc.Status.String(), "svUbdIzc")
}

func TestAddWithCarry(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$7f; ADC #$01
	mem.putInstructions(0, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x80)
	test.ExpectedSuccess(t, mc.Status.Overflow)
	test.ExpectedFailure(t, mc.Status.Carry)
	test.ExpectedSuccess(t, mc.Status.Sign)

	// LDA #$ff; ADC #$01
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa9, 0xff, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectedSuccess(t, mc.Status.Carry)
	test.ExpectedFailure(t, mc.Status.Overflow)
	test.ExpectedSuccess(t, mc.Status.Zero)

	// the carry flag feeds into the next addition
	// SEC; LDA #$01; ADC #$01
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0x38, 0xa9, 0x01, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x03)
}

func TestZeroPageAddressing(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA $aa
	mem.putInstructions(0, 0xa5, 0xaa)
	_ = mem.Write(0x00aa, 0x99)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x99)
	test.Equate(t, mc.PC.Address(), 0x0002)
}

func TestZeroPageIndexedAddressing(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDX #$02; LDA $fe,X -- the zero page index wraps within the page
	mem.putInstructions(0, 0xa2, 0x02, 0xb5, 0xfe)
	_ = mem.Write(0x0000, 0xa2) // 0xfe + 0x02 wraps to 0x00

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xa2)
}

func TestAbsoluteIndexedAddressing(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDX #$01; LDA $beef,X
	mem.putInstructions(0, 0xa2, 0x01, 0xbd, 0xef, 0xbe)
	_ = mem.Write(0xbef0, 0x77)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x77)
	test.Equate(t, mc.PC.Address(), 0x0005)
}

func TestIndirectXAddressing(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDX #$01; LDA ($de,X) -- pointer 0xde+1=0xdf holds 0xbeef
	mem.putInstructions(0, 0xa2, 0x01, 0xa1, 0xde)
	_ = mem.Write(0x00df, 0xef)
	_ = mem.Write(0x00e0, 0xbe)
	_ = mem.Write(0xbeef, 0x55)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x55)
}

func TestIndirectYAddressing(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDY #$01; LDA ($de),Y -- base 0xbeef plus Y
	mem.putInstructions(0, 0xa0, 0x01, 0xb1, 0xde)
	_ = mem.Write(0x00de, 0xef)
	_ = mem.Write(0x00df, 0xbe)
	_ = mem.Write(0xbef0, 0x66)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x66)
}

func TestBranches(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$00; BEQ +$0a
	mem.putInstructions(0, 0xa9, 0x00, 0xf0, 0x0a)

	step(t, mc) // LDA sets the zero flag
	step(t, mc) // BEQ taken

	// the displacement byte is at 0x0003; a taken branch with displacement
	// 0x0a lands 0x0b past it
	test.Equate(t, mc.PC.Address(), 0x000e)

	// a branch that is not taken consumes the displacement byte only
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa9, 0x01, 0xf0, 0x0a)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0004)

	// backward branch, wrapping 16 bit arithmetic
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa9, 0x01, 0xd0, 0xfc)
	step(t, mc)
	step(t, mc) // BNE taken, displacement -4
	test.Equate(t, mc.PC.Address(), 0x0000)
}

func TestCompare(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$02; CMP #$01 -- operand less than the register sets carry
	mem.putInstructions(0, 0xa9, 0x02, 0xc9, 0x01)
	step(t, mc)
	step(t, mc)
	test.ExpectedSuccess(t, mc.Status.Carry)
	test.ExpectedFailure(t, mc.Status.Zero)
	test.Equate(t, mc.A.Value(), 0x02) // compare never modifies the register

	// equal values set carry and zero
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa2, 0x10, 0xe0, 0x10)
	step(t, mc)
	step(t, mc) // CPX
	test.ExpectedSuccess(t, mc.Status.Carry)
	test.ExpectedSuccess(t, mc.Status.Zero)

	// operand greater than the register clears carry
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa0, 0x01, 0xc0, 0x02)
	step(t, mc)
	step(t, mc) // CPY
	test.ExpectedFailure(t, mc.Status.Carry)
}

func TestShifts(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$81; ASL
	mem.putInstructions(0, 0xa9, 0x81, 0x0a)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x02)
	test.ExpectedSuccess(t, mc.Status.Carry)

	// memory form of ASL leaves the accumulator alone
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa9, 0x0f, 0x06, 0x10)
	_ = mem.Write(0x0010, 0x81)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0010, 0x02)
	test.Equate(t, mc.A.Value(), 0x0f)
	test.ExpectedSuccess(t, mc.Status.Carry)

	// LSR shifts bit zero into carry
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa9, 0x01, 0x4a)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectedSuccess(t, mc.Status.Carry)
	test.ExpectedSuccess(t, mc.Status.Zero)
}

func TestBit(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$0f; BIT $10 -- operand 0xf0 shares no bits with A
	mem.putInstructions(0, 0xa9, 0x0f, 0x24, 0x10)
	_ = mem.Write(0x0010, 0xf0)

	step(t, mc)
	step(t, mc)

	// BIT leaves the accumulator untouched; only the flags change. Zero
	// from the AND result, Sign and Overflow from bits 7 and 6 of the
	// operand.
	test.Equate(t, mc.A.Value(), 0x0f)
	test.ExpectedSuccess(t, mc.Status.Zero)
	test.ExpectedSuccess(t, mc.Status.Sign)
	test.ExpectedSuccess(t, mc.Status.Overflow)
}

func TestStores(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$00; STA $1234 -- stores never affect the flags
	mem.putInstructions(0, 0xa9, 0x42, 0x8d, 0x34, 0x12, 0xa9, 0x00, 0x8d, 0x35, 0x12)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x1234, 0x42)

	step(t, mc) // LDA #$00 sets zero
	step(t, mc) // STA
	mem.assert(t, 0x1235, 0x00)
	test.ExpectedSuccess(t, mc.Status.Zero)
}

func TestTransfersAndCounts(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$c0; TAX; INX
	mem.putInstructions(0, 0xa9, 0xc0, 0xaa, 0xe8)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0xc0)
	test.ExpectedSuccess(t, mc.Status.Sign)

	step(t, mc)
	test.Equate(t, mc.X.Value(), 0xc1)

	// INX wraps at 0xff
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xa2, 0xff, 0xe8)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0x00)
	test.ExpectedSuccess(t, mc.Status.Zero)

	// DEX from zero wraps the other way
	mc, mem = newTestCPU(t)
	mem.putInstructions(0, 0xca)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0xff)
	test.ExpectedSuccess(t, mc.Status.Sign)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newTestCPU(t)

	// SEC; CLC; SEI; CLI; SED; CLD
	mem.putInstructions(0, 0x38, 0x18, 0x78, 0x58, 0xf8, 0xd8)

	step(t, mc)
	test.Equate(t, mc.Status.String(), "svUbdIzC")
	step(t, mc)
	test.Equate(t, mc.Status.String(), "svUbdIzc")
	step(t, mc)
	test.Equate(t, mc.Status.String(), "svUbdIzc")
	step(t, mc)
	test.Equate(t, mc.Status.String(), "svUbdizc")
	step(t, mc)
	test.Equate(t, mc.Status.String(), "svUbDizc")
	step(t, mc)
	test.Equate(t, mc.Status.String(), "svUbdizc")
}

func TestHalt(t *testing.T) {
	mc, mem := newTestCPU(t)

	mem.putInstructions(0, 0x00)

	step(t, mc)
	test.ExpectedSuccess(t, mc.Halted)

	// a halted CPU does nothing until the next reset
	pc := mc.PC.Address()
	step(t, mc)
	test.Equate(t, mc.PC.Address(), pc)

	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedFailure(t, mc.Halted)
}

func TestUnknownOpcode(t *testing.T) {
	mc, mem := newTestCPU(t)

	mem.putInstructions(0, 0xff)

	err := mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.UnknownOpcode))
}

func TestResetIdempotence(t *testing.T) {
	mc, mem := newTestCPU(t)

	// point the reset vector somewhere specific and disturb the registers
	_ = mem.Write(0xfffc, 0x00)
	_ = mem.Write(0xfffd, 0x80)
	mem.putInstructions(0x8000, 0xa9, 0xc0, 0xaa)

	test.ExpectedSuccess(t, mc.Reset())
	step(t, mc)
	step(t, mc)

	test.ExpectedSuccess(t, mc.Reset())
	first := mc.String()
	test.ExpectedSuccess(t, mc.Reset())
	test.Equate(t, mc.String(), first)
	test.Equate(t, mc.PC.Address(), 0x8000)
}

func TestRunCallback(t *testing.T) {
	mc, mem := newTestCPU(t)

	// LDA #$01; BNE -4 -- loops forever. the callback bounds execution,
	// which is the caller's job, not the run loop's.
	mem.putInstructions(0, 0xa9, 0x01, 0xd0, 0xfc)

	boundary := curated.Errorf("test: instruction budget spent")
	count := 0
	err := mc.Run(func() error {
		count++
		if count >= 100 {
			return boundary
		}
		return nil
	})

	test.ExpectedFailure(t, err)
	test.Equate(t, err.Error(), boundary.Error())
	test.Equate(t, count, 100)
}
