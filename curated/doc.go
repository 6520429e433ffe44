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

// Package curated is the error mechanism used throughout the project. A
// curated error is created with a pattern string rather than a preformatted
// message. The pattern doubles as the error's identity: other packages can
// ask whether an error was created from a specific pattern with the Is()
// and Has() functions, without string matching on the formatted message.
//
// Patterns that are sensed in this way are declared as exported string
// constants by the package that creates them. For example, the cpu package
// declares UnknownOpcode and a caller of the Run() loop can test for it
// with:
//
//	if curated.Is(err, cpu.UnknownOpcode) {
//		...
//	}
package curated
