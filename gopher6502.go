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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sulevin/gopher6502/debugger"
	"github.com/sulevin/gopher6502/debugger/terminal"
	"github.com/sulevin/gopher6502/debugger/terminal/colorterm"
	"github.com/sulevin/gopher6502/debugger/terminal/plainterm"
	"github.com/sulevin/gopher6502/disassembly"
	"github.com/sulevin/gopher6502/hardware"
	"github.com/sulevin/gopher6502/hardware/memory/cpubus"
	"github.com/sulevin/gopher6502/logger"
	"github.com/sulevin/gopher6502/modalflag"
	"github.com/sulevin/gopher6502/performance"
	"github.com/sulevin/gopher6502/statsview"
	"github.com/sulevin/gopher6502/version"
)

// demoProgram is run when no program file has been specified. it loads a
// value into the accumulator, copies it to X and increments it.
var demoProgram = []byte{0xa9, 0xc0, 0xaa, 0xe8, 0x00}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *ver {
		v, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, v)
		if !release {
			fmt.Println(rev)
		}
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// loadProgram reads the program image named in the remaining arguments. the
// demo program is substituted when there are no remaining arguments.
func loadProgram(md *modalflag.Modes) ([]byte, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return demoProgram, nil
	case 1:
		return os.ReadFile(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	vcs := hardware.NewNES()
	if err := vcs.LoadAndRun(program); err != nil {
		return err
	}

	fmt.Println(vcs.CPU.String())

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	return dbg.Start(program)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	disassembly.Write(os.Stdout, program, cpubus.ProgramOrigin)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run profiler: NONE, CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, "launch statistics server (requires statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, program, *duration)
}
