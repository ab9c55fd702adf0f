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
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/database"
	"github.com/hockleyj/gopheroids/digest"
	"github.com/hockleyj/gopheroids/hardware"
	"github.com/hockleyj/gopheroids/macro"
	"github.com/hockleyj/gopheroids/performance/limiter"
	"github.com/hockleyj/gopheroids/romloader"
)

const digestEntryID = "digest"

const (
	digestFieldMode int = iota
	digestFieldROM
	digestFieldNumFrames
	digestFieldMacro
	digestFieldNotes
	digestFieldVideoDigest
	digestFieldAudioDigest
	numDigestFields
)

// DigestRegression runs a ROM for a set number of frames and compares a hash
// of the vector and/or sound output against the stored result. An optional
// macro script can drive the machine's switches while the test runs.
type DigestRegression struct {
	Mode      DigestMode
	ROM       string
	NumFrames int
	Macro     string
	Notes     string

	videoDigest string
	audioDigest string
}

func deserialiseDigestEntry(fields []string) (database.Entry, error) {
	reg := &DigestRegression{}

	// basic sanity check
	if len(fields) > numDigestFields {
		return nil, curated.Errorf("regression: digest: too many fields")
	}
	if len(fields) < numDigestFields {
		return nil, curated.Errorf("regression: digest: too few fields")
	}

	var err error

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, err
	}

	// string fields need no conversion
	reg.ROM = fields[digestFieldROM]
	reg.Macro = fields[digestFieldMacro]
	reg.Notes = fields[digestFieldNotes]
	reg.videoDigest = fields[digestFieldVideoDigest]
	reg.audioDigest = fields[digestFieldAudioDigest]

	reg.NumFrames, err = strconv.Atoi(fields[digestFieldNumFrames])
	if err != nil {
		return nil, curated.Errorf("regression: digest: invalid numFrames field [%s]", fields[digestFieldNumFrames])
	}

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg DigestRegression) ID() string {
	return digestEntryID
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s/%s] %s frames=%d", reg.ID(), reg.Mode, path.Base(reg.ROM), reg.NumFrames))
	if reg.Macro != "" {
		s.WriteString(fmt.Sprintf(" [%s]", path.Base(reg.Macro)))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Mode.String(),
			reg.ROM,
			strconv.Itoa(reg.NumFrames),
			reg.Macro,
			reg.Notes,
			reg.videoDigest,
			reg.audioDigest,
		},
		nil
}

// CleanUp implements the database.Entry interface. The stored copy of the
// macro script, if there is one, is removed.
func (reg DigestRegression) CleanUp() error {
	if reg.Macro == "" {
		return nil
	}

	err := os.Remove(reg.Macro)
	if _, ok := err.(*os.PathError); ok {
		return nil
	}
	return err
}

// regress implements the Regressor interface.
func (reg *DigestRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	loader := romloader.NewLoader(reg.ROM)

	mch, err := hardware.NewMachine(loader)
	if err != nil {
		return false, curated.Errorf("regression: digest: %v", err)
	}
	defer mch.End()

	vid := digest.NewVideo()
	aud := digest.NewAudio()

	if reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth {
		mch.AttachRenderer(vid)
	}
	if reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth {
		mch.Audio.Attach(aud)
	}

	var mcr *macro.Macro
	if reg.Macro != "" {
		mcr, err = macro.NewMacro(reg.Macro, mch.Mem)
		if err != nil {
			return false, curated.Errorf("regression: digest: %v", err)
		}
	}

	// a progress meter is shown every second, in case the test is a long one
	meter, err := limiter.NewFPSLimiter(1)
	if err != nil {
		return false, curated.Errorf("regression: digest: %v", err)
	}

	// the macro is stepped before the frame it affects, so that its switch
	// settings are latched when the frame starts
	for frame := 0; frame < reg.NumFrames; frame++ {
		if mcr != nil {
			mcr.Step()
			mch.SetSwitches(mcr.Switches())
		}

		if err := mch.StepFrame(); err != nil {
			return false, curated.Errorf("regression: digest: %v", err)
		}

		if meter.HasWaited() {
			output.Write([]byte(fmt.Sprintf("\r%s [%d/%d (%.1f%%)]", msg, frame, reg.NumFrames, 100*(float64(frame)/float64(reg.NumFrames)))))
		}
	}

	if newRegression {
		// store a copy of the macro script in the regression scripts
		// directory. the copy belongs to the database entry from here on
		if reg.Macro != "" {
			newScript, err := uniqueFilename("digest", loader)
			if err != nil {
				return false, curated.Errorf("regression: digest: %v", err)
			}

			nf, err := os.Create(newScript)
			if err != nil {
				return false, curated.Errorf("regression: digest: while copying macro script: %v", err)
			}
			defer nf.Close()

			of, err := os.Open(reg.Macro)
			if err != nil {
				return false, curated.Errorf("regression: digest: while copying macro script: %v", err)
			}
			defer of.Close()

			if _, err := io.Copy(nf, of); err != nil {
				return false, curated.Errorf("regression: digest: while copying macro script: %v", err)
			}

			reg.Macro = newScript
		}

		if reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth {
			reg.videoDigest = vid.Hash()
		}
		if reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth {
			reg.audioDigest = aud.Hash()
		}

		return true, nil
	}

	// compare the new hashes against the stored ones
	res := true
	if reg.Mode == DigestVideoOnly || reg.Mode == DigestBoth {
		res = res && vid.Hash() == reg.videoDigest
	}
	if reg.Mode == DigestAudioOnly || reg.Mode == DigestBoth {
		res = res && aud.Hash() == reg.audioDigest
	}

	return res, nil
}
