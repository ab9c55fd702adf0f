// This file is part of Gopheroids.
//
// Gopheroids is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheroids is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheroids.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
//
// Errors are created with the Errorf() function. It works like Errorf() in
// the fmt package except that the format string doubles as the error's
// identity. The Is() function checks an error against a pattern:
//
//	e := curated.Errorf("dvg: %v", err)
//
//	if curated.Is(e, "dvg: %v") {
//		...
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, not just at the outermost wrapping. IsAny() says only whether
// the error is curated at all, which is usefully thought of as the
// difference between an expected and an unexpected error.
//
// Patterns intended for matching should be stored as const strings near the
// code that creates them.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts, where parts are separated by the sub-string ': '. This
// means functions can wrap errors on the way up without worrying about
// stuttering messages like:
//
//	dvg: dvg: subroutine stack
package curated
