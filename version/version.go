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

// Package version records the name and release number of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopheroids"

// the version string is set at build time with the -X linker flag. if it is
// empty then the binary was built directly with the go command.
var version string

// revision is taken from vcs information embedded by the go toolchain.
var revision string

// Version returns the version and revision strings. The version string is
// "unreleased" if no version number was stamped at build time.
func Version() (string, string) {
	return version, revision
}

func init() {
	if version == "" {
		version = "unreleased"
	}

	revision = "no revision information"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision string
	var vcsModified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}
}
