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

package debugger_test

import (
	"io"
	"strings"
	"testing"

	"github.com/sulevin/gopher6502/debugger"
	"github.com/sulevin/gopher6502/debugger/terminal"
	"github.com/sulevin/gopher6502/test"
)

// scriptTerm feeds a prepared list of commands to the debugger and records
// everything printed back.
type scriptTerm struct {
	script []string
	output strings.Builder
}

func (tm *scriptTerm) Initialise() error {
	return nil
}

func (tm *scriptTerm) CleanUp() {
}

func (tm *scriptTerm) IsInteractive() bool {
	return false
}

func (tm *scriptTerm) TermRead(_ terminal.Prompt) (string, error) {
	if len(tm.script) == 0 {
		return "", io.EOF
	}
	s := tm.script[0]
	tm.script = tm.script[1:]
	return s, nil
}

func (tm *scriptTerm) TermPrintLine(_ terminal.Style, s string) {
	tm.output.WriteString(s)
	tm.output.WriteString("\n")
}

func (tm *scriptTerm) sawLine(t *testing.T, fragment string) {
	t.Helper()
	if !strings.Contains(tm.output.String(), fragment) {
		t.Errorf("debugger output does not contain %q", fragment)
	}
}

func TestScriptedSession(t *testing.T) {
	term := &scriptTerm{
		script: []string{"STEP", "REGS", "RUN", "REGS", "QUIT"},
	}

	dbg, err := debugger.NewDebugger(term)
	test.ExpectedSuccess(t, err)

	// LDA #$c0; TAX; INX; BRK
	err = dbg.Start([]byte{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)

	term.sawLine(t, "0x8000: LDA")
	term.sawLine(t, "X=0xc1")
}

func TestStepCountAndMem(t *testing.T) {
	term := &scriptTerm{
		script: []string{"STEP 2", "MEM 8000 5", "QUIT"},
	}

	dbg, err := debugger.NewDebugger(term)
	test.ExpectedSuccess(t, err)

	err = dbg.Start([]byte{0xa9, 0xc0, 0xaa, 0xe8, 0x00})
	test.ExpectedSuccess(t, err)

	term.sawLine(t, "0x8002: TAX")
	term.sawLine(t, "0x8000: a9 c0 aa e8 00")
}

func TestUnrecognisedCommand(t *testing.T) {
	term := &scriptTerm{
		script: []string{"WOBBLE"},
	}

	dbg, err := debugger.NewDebugger(term)
	test.ExpectedSuccess(t, err)

	// command errors are reported to the terminal, not returned
	err = dbg.Start([]byte{0x00})
	test.ExpectedSuccess(t, err)

	term.sawLine(t, "unrecognised command (WOBBLE)")
}
