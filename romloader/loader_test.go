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

package romloader_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/romloader"
	"github.com/hockleyj/gopheroids/test"
)

func testImage() []byte {
	img := make([]byte, romloader.ImageSize)
	for i := range img {
		img[i] = byte(i)
	}
	return img
}

func TestLoadFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "board.bin")
	if err := ioutil.WriteFile(fn, testImage(), 0o644); err != nil {
		t.Fatal(err)
	}

	cl := romloader.NewLoader(fn)
	test.Equate(t, cl.HasLoaded(), false)

	err := cl.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, cl.HasLoaded(), true)
	test.Equate(t, len(cl.VectorROM()), romloader.VectorROMSize)
	test.Equate(t, len(cl.ProgramROM()), romloader.ImageSize-romloader.VectorROMSize)

	// the split preserves address order
	test.Equate(t, cl.VectorROM()[0], 0x00)
	test.Equate(t, cl.ProgramROM()[0], 0x00)
	test.Equate(t, cl.ProgramROM()[1], 0x01)

	// loading again is a no-op
	test.ExpectedSuccess(t, cl.Load())
}

func TestWrongSize(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "short.bin")
	if err := ioutil.WriteFile(fn, make([]byte, 4096), 0o644); err != nil {
		t.Fatal(err)
	}

	cl := romloader.NewLoader(fn)
	err := cl.Load()
	test.ExpectedFailure(t, err)
	if !curated.Is(err, romloader.WrongImageSize) {
		t.Errorf("unexpected error: %v", err)
	}
	test.Equate(t, cl.HasLoaded(), false)
}

func TestHashValidation(t *testing.T) {
	cl, err := romloader.NewLoaderFromData("test", testImage())
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(cl.Hash), 40)

	fn := filepath.Join(t.TempDir(), "board.bin")
	if err := ioutil.WriteFile(fn, testImage(), 0o644); err != nil {
		t.Fatal(err)
	}

	// a loader pinned to the known hash accepts the image
	pinned := romloader.NewLoader(fn)
	pinned.Hash = cl.Hash
	test.ExpectedSuccess(t, pinned.Load())

	// and one pinned to a different hash refuses it
	bad := romloader.NewLoader(fn)
	bad.Hash = "0000000000000000000000000000000000000000"
	test.ExpectedFailure(t, bad.Load())
	test.Equate(t, bad.HasLoaded(), false)
}

func TestShortName(t *testing.T) {
	cl := romloader.NewLoader("/home/somebody/roms/asteroids.bin")
	test.Equate(t, cl.ShortName(), "asteroids")
}
