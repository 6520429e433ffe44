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

// Package logger is the central log for the project. Entries are tagged
// with the package or subsystem that produced them and are kept in memory;
// nothing reaches the user unless a mode asks for it with Write()/Tail() or
// switches on echoing with SetEcho().
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// the maximum number of entries kept by the log. once reached, the oldest
// entries are lost.
const maxEntries = 256

// Entry represents a single line in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

type central struct {
	entries []Entry
	echo    io.Writer
}

// the central logger. the package level functions below all work with this
// single instance.
var logger = central{
	entries: make([]Entry, 0, maxEntries),
}

// Log adds a new entry to the central logger. A detail string identical to
// the previous entry (with the same tag) bumps a repeat count rather than
// adding a line.
func Log(tag, detail string) {
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if len(logger.entries) > 0 {
		last := &logger.entries[len(logger.entries)-1]
		if last.tag == tag && last.detail == detail {
			last.repeated++
			last.Timestamp = time.Now()
			return
		}
	}

	e := Entry{
		Timestamp: time.Now(),
		tag:       tag,
		detail:    detail,
	}

	logger.entries = append(logger.entries, e)
	if len(logger.entries) > maxEntries {
		logger.entries = logger.entries[len(logger.entries)-maxEntries:]
	}

	if logger.echo != nil {
		io.WriteString(logger.echo, e.String())
	}
}

// Logf is Log() with a formatted detail string.
func Logf(tag, detail string, args ...interface{}) {
	Log(tag, fmt.Sprintf(detail, args...))
}

// Clear the central logger of all entries.
func Clear() {
	logger.entries = logger.entries[:0]
}

// SetEcho to echo new entries to the io.Writer as they arrive. A nil
// writer switches echoing off.
func SetEcho(output io.Writer) {
	logger.echo = output
}

// Write the entire log to the io.Writer.
func Write(output io.Writer) {
	for _, e := range logger.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last number of entries to the io.Writer.
func Tail(output io.Writer, number int) {
	if number > len(logger.entries) {
		number = len(logger.entries)
	}
	for _, e := range logger.entries[len(logger.entries)-number:] {
		io.WriteString(output, e.String())
	}
}
