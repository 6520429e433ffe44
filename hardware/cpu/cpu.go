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

	"github.com/sulevin/gopher6502/curated"
	"github.com/sulevin/gopher6502/hardware/cpu/execution"
	"github.com/sulevin/gopher6502/hardware/cpu/instructions"
	"github.com/sulevin/gopher6502/hardware/cpu/registers"
	"github.com/sulevin/gopher6502/hardware/memory/cpubus"
)

// UnknownOpcode is returned by ExecuteInstruction() when the byte at the
// program counter does not decode to any instruction definition.
const UnknownOpcode = "cpu: unknown opcode (%#02x) at (%#04x)"

// CPU implements the 6502 found in the NES. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	Status registers.StatusRegister

	// scratch register for operations that need accumulator-like behaviour
	// without touching A. compare instructions and memory-form shifts use it.
	scratch registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// Halted is true once a BRK instruction has been executed. The CPU does
	// nothing further until the next Reset().
	Halted bool

	// details of the most recently executed instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Registers are zeroed and the status flags take the power-up pattern.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		Status:       registers.NewStatusRegister(),
		scratch:      registers.NewRegister(0, "scratch"),
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers to their power-up values and loads the
// PC from the reset vector. Memory is not touched; calling Reset() twice in
// a row leaves the CPU in the same state both times.
func (mc *CPU) Reset() error {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()
	mc.Halted = false
	mc.LastResult.Reset()

	return mc.LoadPCIndirect(cpubus.Reset)
}

// LoadPCIndirect loads the PC with the 16 bit little-endian value stored at
// indirectAddress.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	v, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(v)
	return nil
}

// read8Bit returns the 8 bit value at the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// read16Bit returns the little-endian 16 bit value at the specified
// address. The second byte is read from address+1, wrapping around the top
// of the address space.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// write8Bit writes an 8 bit value to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// setZeroAndSign updates the Zero and Sign flags from the value. Every
// instruction that the 6502 reference says affects these flags funnels
// through here.
func (mc *CPU) setZeroAndSign(value uint8) {
	mc.Status.Zero = value == 0
	mc.Status.Sign = value&0x80 == 0x80
}

// loadA is the single funnel for accumulator writes that affect the status
// flags.
func (mc *CPU) loadA(value uint8) {
	mc.A.Load(value)
	mc.setZeroAndSign(value)
}

// addWithCarry adds the value and the current carry flag to the
// accumulator, updating the Carry, Overflow, Zero and Sign flags.
func (mc *CPU) addWithCarry(value uint8) {
	carry, overflow := mc.A.Add(value, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.setZeroAndSign(mc.A.Value())
}

// compare subtracts the value from a copy of the register, setting the
// Carry, Zero and Sign flags. Neither the register nor the value is
// modified.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.scratch.Load(r.Value())
	carry, _ := mc.scratch.Subtract(value, true)
	mc.Status.Carry = carry
	mc.setZeroAndSign(mc.scratch.Value())
}

// branch implements the eight branch instructions. On entry the PC points
// at the displacement byte. A taken branch moves the PC to the instruction
// after the displacement byte plus the sign extended displacement; a branch
// that is not taken just consumes the displacement byte. All arithmetic
// wraps.
func (mc *CPU) branch(op instructions.Operator) error {
	displacement, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return err
	}

	var flag bool

	switch op {
	case instructions.Bcc:
		flag = !mc.Status.Carry
	case instructions.Bcs:
		flag = mc.Status.Carry
	case instructions.Beq:
		flag = mc.Status.Zero
	case instructions.Bne:
		flag = !mc.Status.Zero
	case instructions.Bmi:
		flag = mc.Status.Sign
	case instructions.Bpl:
		flag = !mc.Status.Sign
	case instructions.Bvc:
		flag = !mc.Status.Overflow
	case instructions.Bvs:
		flag = mc.Status.Overflow
	default:
		panic(fmt.Sprintf("cpu: operator (%d) is not a branch", op))
	}

	mc.LastResult.BranchTaken = flag

	if !flag {
		mc.PC.Add(1)
		return nil
	}

	// sign extend the displacement into the 16 bit address space
	offset := uint16(displacement)
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	// the +1 accounts for the displacement byte itself
	mc.PC.Add(1 + offset)
	mc.LastResult.EffectiveAddress = mc.PC.Address()

	return nil
}

// ExecuteInstruction steps the CPU forward one instruction: read the opcode
// at the PC, decode it through the instruction table, resolve the effective
// address for the addressing mode, perform the operation and consume the
// operand bytes. A BRK instruction puts the CPU into the Halted state.
//
// An opcode with no table entry returns a curated error with the
// UnknownOpcode pattern. The CPU stops at the offending opcode; it never
// guesses or skips.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	opcodeAddr := mc.PC.Address()

	opcode, err := mc.read8Bit(opcodeAddr)
	if err != nil {
		return err
	}
	mc.PC.Add(1)

	defn := mc.instructions[opcode]
	if defn == nil {
		return curated.Errorf(UnknownOpcode, opcode, opcodeAddr)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = opcodeAddr
	mc.LastResult.OpCode = opcode
	mc.LastResult.Defn = defn

	if defn.Effect == instructions.Interrupt {
		// BRK. without interrupt emulation this is a halt
		mc.Halted = true
		return nil
	}

	if defn.IsBranch() {
		return mc.branch(defn.Operator)
	}

	// resolve the effective address and fetch the operand value as the
	// effect category requires. the resolver does not move the PC; operand
	// bytes are consumed at the end of the function.
	var address uint16
	var value uint8

	if defn.AddressingMode != instructions.NoAddressing {
		address, err = mc.effectiveAddress(defn.AddressingMode)
		if err != nil {
			return err
		}
		mc.LastResult.EffectiveAddress = address

		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Cld:
		mc.Status.Decimal = false

	case instructions.Sed:
		mc.Status.Decimal = true

	case instructions.Lda:
		mc.loadA(value)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZeroAndSign(value)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZeroAndSign(value)

	case instructions.Sta:
		// stores do not affect the status flags
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZeroAndSign(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZeroAndSign(mc.Y.Value())

	case instructions.Txa:
		mc.loadA(mc.X.Value())

	case instructions.Tya:
		mc.loadA(mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.setZeroAndSign(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.setZeroAndSign(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.setZeroAndSign(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.setZeroAndSign(mc.Y.Value())

	case instructions.And:
		mc.loadA(mc.A.Value() & value)

	case instructions.Eor:
		mc.loadA(mc.A.Value() ^ value)

	case instructions.Ora:
		mc.loadA(mc.A.Value() | value)

	case instructions.Adc:
		mc.addWithCarry(value)

	case instructions.Asl:
		if defn.Effect == instructions.RMW {
			mc.scratch.Load(value)
			mc.Status.Carry = mc.scratch.ASL()
			mc.setZeroAndSign(mc.scratch.Value())
			err = mc.write8Bit(address, mc.scratch.Value())
			if err != nil {
				return err
			}
		} else {
			mc.Status.Carry = mc.A.ASL()
			mc.setZeroAndSign(mc.A.Value())
		}

	case instructions.Lsr:
		if defn.Effect == instructions.RMW {
			mc.scratch.Load(value)
			mc.Status.Carry = mc.scratch.LSR()
			mc.setZeroAndSign(mc.scratch.Value())
			err = mc.write8Bit(address, mc.scratch.Value())
			if err != nil {
				return err
			}
		} else {
			mc.Status.Carry = mc.A.LSR()
			mc.setZeroAndSign(mc.A.Value())
		}

	case instructions.Bit:
		// the AND result feeds the Zero flag only; the accumulator keeps
		// its value. Sign and Overflow come from the unmasked operand.
		mc.Status.Zero = mc.A.Value()&value == 0
		mc.Status.Sign = value&0x80 == 0x80
		mc.Status.Overflow = value&0x40 == 0x40

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	default:
		panic(fmt.Sprintf("cpu: no execution arm for %s", defn.Mnemonic))
	}

	// consume the operand bytes
	mc.PC.Add(uint16(defn.AddressingMode.OperandBytes()))

	return nil
}

// NilCallback can be passed as the callback argument to Run() when no
// per-instruction work is required.
func NilCallback() error {
	return nil
}

// Run loops ExecuteInstruction() until the CPU halts on a BRK instruction
// or an error occurs. The callback function runs after every instruction;
// returning an error from the callback ends the loop with that error. A
// program that never reaches a BRK runs forever; bounding execution is the
// caller's responsibility, through the callback.
func (mc *CPU) Run(callback func() error) error {
	if callback == nil {
		callback = NilCallback
	}

	for !mc.Halted {
		err := mc.ExecuteInstruction()
		if err != nil {
			return err
		}

		err = callback()
		if err != nil {
			return err
		}
	}

	return nil
}
