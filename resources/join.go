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

package resources

import (
	"os"
	"path/filepath"
)

// the base directory for all resources. not used directly except through
// basePath().
const baseResourceDir = ".gopheroids"

// basePath returns the resource directory. a directory named baseResourceDir
// in the current working directory takes precedence, which is convenient
// during development. otherwise the user's config directory is used.
func basePath() string {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourceDir
	}

	return filepath.Join(home, baseResourceDir[1:])
}

// JoinPath returns the supplied path elements joined and prepended with the
// resource base path. All directories necessary to reach the end of the path
// are created. The file itself is not touched or created.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(basePath(), filepath.Join(path...))

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
