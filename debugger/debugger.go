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

// Package debugger implements an interactive monitor for the emulated
// machine. Instructions can be stepped through one at a time with the
// machine state inspected between steps.
package debugger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/sulevin/gopher6502/curated"
	"github.com/sulevin/gopher6502/debugger/terminal"
	"github.com/sulevin/gopher6502/disassembly"
	"github.com/sulevin/gopher6502/hardware"
	"github.com/sulevin/gopher6502/hardware/memory/cpubus"
	"github.com/sulevin/gopher6502/logger"
	"github.com/sulevin/gopher6502/version"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vcs  *hardware.NES
	term terminal.Terminal

	// the program image as it was loaded. kept for the DISASM command.
	program []byte

	// set to true when the QUIT command has been received
	running bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		vcs:  hardware.NewNES(),
		term: term,
	}

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main debugger sequence with the supplied program image.
func (dbg *Debugger) Start(program []byte) error {
	defer dbg.term.CleanUp()

	dbg.program = program
	if err := dbg.vcs.Load(program); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	if err := dbg.vcs.Reset(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	ver, _, _ := version.Version()
	dbg.printLine(terminal.StyleFeedback, "%s (%s)", version.ApplicationName, ver)
	dbg.printLine(terminal.StyleFeedback, "%d byte program loaded at %#04x", len(program), cpubus.ProgramOrigin)

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(terminal.Prompt{Content: "[6502] "})
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

// parseInput splits the input line into a command and its arguments and
// dispatches it. an empty line means STEP, which makes single-stepping a
// matter of leaning on the return key.
func (dbg *Debugger) parseInput(input string) error {
	toks := strings.Fields(strings.ToUpper(input))
	if len(toks) == 0 {
		toks = []string{"STEP"}
	}

	switch toks[0] {
	case "STEP", "S":
		return dbg.step(toks[1:])
	case "RUN", "R":
		return dbg.runToHalt()
	case "REGS":
		dbg.printLine(terminal.StyleFeedback, dbg.vcs.CPU.String())
	case "MEM", "M":
		return dbg.peek(toks[1:])
	case "LAST", "L":
		dbg.printLine(terminal.StyleCPUStep, dbg.vcs.CPU.LastResult.String())
	case "DISASM", "D":
		s := strings.Builder{}
		disassembly.Write(&s, dbg.program, cpubus.ProgramOrigin)
		dbg.printLine(terminal.StyleFeedback, strings.TrimSuffix(s.String(), "\n"))
	case "VIZ":
		return dbg.memviz(toks[1:])
	case "LOG":
		s := strings.Builder{}
		logger.Tail(&s, 10)
		dbg.printLine(terminal.StyleFeedback, strings.TrimSuffix(s.String(), "\n"))
	case "RESET":
		if err := dbg.vcs.Reset(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")
	case "QUIT", "Q":
		dbg.running = false
	case "HELP", "H":
		dbg.printLine(terminal.StyleHelp, "STEP [n]  execute the next n instructions (default 1)")
		dbg.printLine(terminal.StyleHelp, "RUN       execute instructions until the CPU halts")
		dbg.printLine(terminal.StyleHelp, "REGS      show CPU registers")
		dbg.printLine(terminal.StyleHelp, "MEM a [n] show n bytes of memory from address a (hex)")
		dbg.printLine(terminal.StyleHelp, "LAST      show the most recently executed instruction")
		dbg.printLine(terminal.StyleHelp, "DISASM    disassemble the loaded program")
		dbg.printLine(terminal.StyleHelp, "VIZ [f]   write execution graph in graphviz format to file f")
		dbg.printLine(terminal.StyleHelp, "LOG       show the tail of the emulation log")
		dbg.printLine(terminal.StyleHelp, "RESET     reset the machine")
		dbg.printLine(terminal.StyleHelp, "QUIT      leave the debugger")
	default:
		return curated.Errorf("debugger: unrecognised command (%s)", toks[0])
	}

	return nil
}

func (dbg *Debugger) step(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return curated.Errorf("debugger: not a step count (%s)", args[0])
		}
	}

	for i := 0; i < n; i++ {
		if dbg.vcs.CPU.Halted {
			dbg.printLine(terminal.StyleFeedback, "CPU has halted. use RESET to continue")
			return nil
		}
		if err := dbg.vcs.CPU.ExecuteInstruction(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.vcs.CPU.LastResult.String())
	}

	return nil
}

func (dbg *Debugger) runToHalt() error {
	if dbg.vcs.CPU.Halted {
		dbg.printLine(terminal.StyleFeedback, "CPU has halted. use RESET to continue")
		return nil
	}

	if err := dbg.vcs.Run(); err != nil {
		return err
	}

	dbg.printLine(terminal.StyleCPUStep, dbg.vcs.CPU.LastResult.String())
	dbg.printLine(terminal.StyleFeedback, dbg.vcs.CPU.String())

	return nil
}

func (dbg *Debugger) peek(args []string) error {
	if len(args) == 0 {
		return curated.Errorf("debugger: MEM requires an address")
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return err
	}

	n := 16
	if len(args) > 1 {
		n, err = strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return curated.Errorf("debugger: not a byte count (%s)", args[1])
		}
	}

	s := strings.Builder{}
	for i := 0; i < n; i++ {
		if i%8 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%#04x:", addr+uint16(i)))
		}
		v, err := dbg.vcs.Mem.Read(addr + uint16(i))
		if err != nil {
			return err
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	dbg.printLine(terminal.StyleFeedback, s.String())

	return nil
}

// memviz writes a graphviz visualisation of the most recent execution
// result. the output file can be rendered with the dot tool. the result is
// mapped rather than the CPU itself, which would drag the whole of memory
// into the graph.
func (dbg *Debugger) memviz(args []string) error {
	fn := "gopher6502.dot"
	if len(args) > 0 {
		fn = strings.ToLower(args[0])
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &dbg.vcs.CPU.LastResult)

	dbg.printLine(terminal.StyleFeedback, "execution graph written to %s", fn)

	return nil
}

func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0X")
	addr, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: not an address (%s)", s)
	}
	return uint16(addr), nil
}
