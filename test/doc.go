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

// Package test contains helper functions that remove common boilerplate from
// the project's tests.
//
// Equate() compares like-typed values for equality. For convenience, some
// types can be compared against int literals; see the function documentation.
//
// ExpectedFailure() and ExpectedSuccess() test a bool or error value for the
// named condition. Note that a nil value is treated as a success, consistent
// with how a nil error indicates that nothing went wrong.
package test
