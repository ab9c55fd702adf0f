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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/hockleyj/gopheroids/curated"
)

// Sizes of the pieces of a ROM image. The image is the concatenation of the
// vector ROM and the program ROM in address order.
const (
	VectorROMSize = 2048
	ImageSize     = 8192
)

// Error patterns for ROM loading. WrongImageSize can be tested for with
// curated.Is.
const WrongImageSize = "romloader: wrong image size (%d bytes; an image is %d bytes)"

// Loader is used to specify the ROM image to load into the machine. The
// image is a single file: 2K of vector ROM followed by 6K of program ROM.
type Loader struct {
	// filename of the image to load
	Filename string

	// expected hash of the image. the empty string means the hash is
	// unknown and will not be validated. after a successful load the field
	// holds the hash of the loaded data
	Hash string

	// copy of the loaded image
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData builds a loader around an image that is already in
// memory. Used by tests and by anything that embeds an image directly.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	cl := Loader{
		Filename: name,
		Data:     make([]byte, len(data)),
	}
	copy(cl.Data, data)

	if err := cl.finalise(); err != nil {
		return Loader{}, err
	}

	return cl, nil
}

// ShortName returns a shortened version of the loader's filename, with the
// path and extension removed.
func (cl Loader) ShortName() string {
	sn := path.Base(cl.Filename)
	return strings.TrimSuffix(sn, path.Ext(sn))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// VectorROM returns the portion of the image that sits in the vector ROM
// area. Returns nil if the image has not been loaded.
func (cl Loader) VectorROM() []byte {
	if !cl.HasLoaded() {
		return nil
	}
	return cl.Data[:VectorROMSize]
}

// ProgramROM returns the portion of the image that sits in the program ROM
// area. Returns nil if the image has not been loaded.
func (cl Loader) ProgramROM() []byte {
	if !cl.HasLoaded() {
		return nil
	}
	return cl.Data[VectorROMSize:]
}

// Load the ROM image. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = ioutil.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	return cl.finalise()
}

// finalise checks the image size and hash. The size check is strict: the
// board decodes exactly 2K of vector ROM and 6K of program ROM, so any other
// length means the file is not an image of this board.
func (cl *Loader) finalise() error {
	if len(cl.Data) != ImageSize {
		n := len(cl.Data)
		cl.Data = nil
		return curated.Errorf(WrongImageSize, n, ImageSize)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}
