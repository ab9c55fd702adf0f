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

package performance_test

import (
	"testing"

	"github.com/hockleyj/gopheroids/performance"
	"github.com/hockleyj/gopheroids/test"
)

func TestCalcFPS(t *testing.T) {
	// a full-speed run matches the cabinet exactly
	fps, accuracy := performance.CalcFPS(300, 5.0)
	test.Equate(t, fps, 60.0)
	test.Equate(t, accuracy, 100.0)

	// half-speed
	fps, accuracy = performance.CalcFPS(150, 5.0)
	test.Equate(t, fps, 30.0)
	test.Equate(t, accuracy, 50.0)

	// faster than the cabinet
	fps, accuracy = performance.CalcFPS(1200, 5.0)
	test.Equate(t, fps, 240.0)
	test.Equate(t, accuracy, 400.0)
}
