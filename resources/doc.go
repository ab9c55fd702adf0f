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

// Package resources prepares paths for support files: the regression
// database, sound sample banks, etc.
//
// JoinPath() roots the supplied path in a directory named .gopheroids. If
// such a directory exists in the current working directory it is used, which
// is the convenient arrangement during development. Otherwise the directory
// is rooted in the user's config directory (on Linux, typically
// ~/.config/gopheroids).
package resources
