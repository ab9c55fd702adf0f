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

package regression

import (
	"fmt"
	"time"

	"github.com/hockleyj/gopheroids/resources"
	"github.com/hockleyj/gopheroids/romloader"
)

// create a unique filename for a script in the regression scripts directory.
// the name is composed from the loader's short name and the current time, so
// repeated additions of the same ROM do not collide.
func uniqueFilename(prepend string, loader romloader.Loader) (string, error) {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	name := fmt.Sprintf("%s_%s_%s", prepend, loader.ShortName(), timestamp)
	return resources.JoinPath(regressionScripts, name)
}
