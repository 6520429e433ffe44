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
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/sulevin/gopher6502/curated"
)

// Profile is used to specify the type of profile to run.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileAll = ProfileCPU | ProfileMem
)

// ParseProfile converts a string to a Profile value.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf("profile: unrecognised profile (%s)", s)
}

// RunProfiler runs the supplied function while gathering the requested
// profiles. Profile files are named after the supplied tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		f, merr := os.Create(tag + "_mem.profile")
		if merr != nil {
			return curated.Errorf("profile: %v", merr)
		}
		defer f.Close()

		runtime.GC()
		if merr := pprof.WriteHeapProfile(f); merr != nil {
			return curated.Errorf("profile: %v", merr)
		}
	}

	return err
}
