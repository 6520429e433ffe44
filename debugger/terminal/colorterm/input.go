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

package colorterm

import (
	"unicode"

	"github.com/sulevin/gopher6502/curated"
	"github.com/sulevin/gopher6502/debugger/terminal"
	"github.com/sulevin/gopher6502/debugger/terminal/colorterm/easyterm"
	"github.com/sulevin/gopher6502/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := make([]byte, 0, 255)
	history := len(ct.commandHistory)

	// the latest input is restored when the user scrolls back down past the
	// end of the command history
	var buffInput []byte

	for {
		// redraw the whole line on every iteration. this keeps editing and
		// history recall simple at the cost of a little flicker on very slow
		// terminals.
		ct.TermPrint("\r%s", ansi.ClearLine)
		ct.TermPrint("%s%s%s", ansi.Pens["cyan"], prompt.String(), ansi.NormalPen)
		ct.TermPrint("%s", string(input))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.TermPrint("\n")

			// only remember non-empty input that differs from the most
			// recent history entry
			if len(input) > 0 {
				l := len(ct.commandHistory)
				if l == 0 || string(ct.commandHistory[l-1].input) != string(input) {
					h := make([]byte, len(input))
					copy(h, input)
					ct.commandHistory = append(ct.commandHistory, command{input: h})
				}
			}

			return string(input), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffInput = input
					}
					history--
					input = append([]byte(nil), ct.commandHistory[history].input...)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = buffInput
					} else {
						input = append([]byte(nil), ct.commandHistory[history].input...)
					}
				}
			}

		case easyterm.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) && r < 128 {
				input = append(input, byte(r))
				history = len(ct.commandHistory)
			}
		}
	}
}
