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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

func pen(color int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[3%d;1m", color)
	}
	return fmt.Sprintf("\033[3%dm", color)
}

func init() {
	Pens = make(map[string]string)
	Pens["red"] = pen(colRed, true)
	Pens["green"] = pen(colGreen, true)
	Pens["yellow"] = pen(colYellow, true)
	Pens["blue"] = pen(colBlue, true)
	Pens["magenta"] = pen(colMagenta, true)
	Pens["cyan"] = pen(colCyan, true)
	Pens["white"] = pen(colWhite, true)
}
