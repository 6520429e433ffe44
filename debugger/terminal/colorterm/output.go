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
	"github.com/sulevin/gopher6502/debugger/terminal"
	"github.com/sulevin/gopher6502/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	ct.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.Pens["white"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.Pens["white"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleError:
		ct.TermPrint("%s* ", ansi.Pens["red"])
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}
