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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Each flag is an independent boolean; Value() and FromValue()
// convert to and from the packed byte representation.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break2           bool
	Break1           bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// PowerUp is the documented state of the status register after a reset:
// InterruptDisable and Break2 set, everything else clear.
const PowerUp = uint8(0x24)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{}
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns one rune per flag, in bit order from most significant to
// least significant. Upper case indicates the flag is set. The Break2 flag
// (bit 5, unused by the hardware) is represented by the rune 'u'.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	runes := []struct {
		flag bool
		r    rune
	}{
		{sr.Sign, 's'},
		{sr.Overflow, 'v'},
		{sr.Break2, 'u'},
		{sr.Break1, 'b'},
		{sr.Decimal, 'd'},
		{sr.InterruptDisable, 'i'},
		{sr.Zero, 'z'},
		{sr.Carry, 'c'},
	}

	for _, f := range runes {
		if f.flag {
			s.WriteRune(f.r + 'A' - 'a')
		} else {
			s.WriteRune(f.r)
		}
	}

	return s.String()
}

// Reset the status flags to the power-up pattern.
func (sr *StatusRegister) Reset() {
	sr.FromValue(PowerUp)
}

// Value converts the StatusRegister struct into the packed byte
// representation.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break2 {
		v |= 0x20
	}
	if sr.Break1 {
		v |= 0x10
	}
	if sr.Decimal {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts a packed byte to the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break2 = v&0x20 == 0x20
	sr.Break1 = v&0x10 == 0x10
	sr.Decimal = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
