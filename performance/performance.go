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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/sulevin/gopher6502/curated"
	"github.com/sulevin/gopher6502/hardware"
)

// checking the timer channel on every instruction is relatively expensive.
// only check once per this many instructions.
const performanceBrake = 1000

// sentinel error returned by the Run() callback when the measurement
// period has elapsed.
const timedOut = "performance timed out"

// Check the performance of the emulation using the supplied program image.
//
// The program will run for the specified duration, restarting at the reset
// vector whenever it halts. A cpu and/or memory profile is created as
// defined by the Profile argument. The result is presented as instructions
// per second.
func Check(output io.Writer, profile Profile, program []byte, duration string) error {
	vcs := hardware.NewNES()

	if err := vcs.Load(program); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if err := vcs.Reset(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	instructions := 0

	runner := func() error {
		// setup trigger that expires when duration has elapsed
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0

		callback := func() error {
			instructions++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return curated.Errorf(timedOut)
				default:
				}
			}

			return nil
		}

		// run until the specified time elapses. a machine that halts before
		// then is simply reset and run again.
		for {
			err := vcs.CPU.Run(callback)
			if err != nil {
				return err
			}
			if err := vcs.Reset(); err != nil {
				return err
			}
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !curated.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	ips := float64(instructions) / dur.Seconds()
	fmt.Fprintf(output, "%.0f instructions/sec (%d instructions in %.2f seconds)\n", ips, instructions, dur.Seconds())

	return nil
}
