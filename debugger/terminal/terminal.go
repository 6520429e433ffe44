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

// Package terminal defines the operations required by the debugger's
// command line interface. Implementations can be found in the plainterm
// and colorterm sub-packages.
package terminal

// Prompt is the text presented to the user when the debugger is waiting
// for input.
type Prompt struct {
	Content string
}

func (p Prompt) String() string {
	return p.Content
}

// Style is used to hint at how a line of output should be presented.
// Implementations that cannot differentiate styles can ignore the hint.
type Style int

// List of terminal styles.
const (
	StyleInput Style = iota
	StyleHelp
	StyleFeedback
	StyleCPUStep
	StyleError
)

// Sentinel error returned by TermRead() when the user has interrupted input
// (with ctrl-c for example). Use with the curated package.
const UserInterrupt = "user interrupt"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input, without the trailing
	// newline. An io.EOF error indicates the input stream has closed and
	// the debugger should wind up.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that expect a
	// user at the other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// we use this to make sure the terminal is returned to canonical mode.
	CleanUp()
}
