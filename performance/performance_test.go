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

package performance_test

import (
	"strings"
	"testing"

	"github.com/sulevin/gopher6502/performance"
	"github.com/sulevin/gopher6502/test"
)

func TestCheck(t *testing.T) {
	// INX; BNE -3 counts X around the houses before hitting BRK
	program := []byte{0xe8, 0xd0, 0xfd, 0x00}

	s := strings.Builder{}
	err := performance.Check(&s, performance.ProfileNone, program, "100ms")
	test.ExpectedSuccess(t, err)

	if !strings.Contains(s.String(), "instructions/sec") {
		t.Errorf("performance report looks wrong: %s", s.String())
	}
}

func TestCheckBadDuration(t *testing.T) {
	err := performance.Check(&strings.Builder{}, performance.ProfileNone, []byte{0x00}, "wibble")
	test.ExpectedFailure(t, err)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileCPU))

	p, err = performance.ParseProfile("ALL")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(performance.ProfileAll))

	_, err = performance.ParseProfile("wibble")
	test.ExpectedFailure(t, err)
}
