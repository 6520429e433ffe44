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

// Package plainterm implements the Terminal interface for the gopher6502
// debugger. It's as simple as simple can be and offers no special features.
// It works just as well with a pipe as with a real terminal, which makes it
// the terminal of choice for scripted debugger sessions.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sulevin/gopher6502/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode.
type PlainTerminal struct {
	input       *bufio.Scanner
	output      io.Writer
	interactive bool
}

// Initialise performs any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = bufio.NewScanner(os.Stdin)
	pt.output = os.Stdout
	pt.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	return nil
}

// CleanUp performs any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.interactive
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// only show the prompt when a user is watching. piped input reads just
	// the same without it.
	if pt.interactive {
		fmt.Fprint(pt.output, prompt.String())
	}

	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return pt.input.Text(), nil
}
