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
	"sort"
	"strconv"

	"github.com/hockleyj/gopheroids/curated"
	"github.com/hockleyj/gopheroids/database"
	"github.com/hockleyj/gopheroids/resources"
)

// locations of the regression database and the scripts directory, relative
// to the resource path.
const regressionDBFile = "regressionDB"
const regressionScripts = "regressionScripts"

// the CSI sequence to clear the current line. progress and result messages
// share a line so the line needs wiping between them.
const ansiClearLine = "\033[2K"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the test is being run for the first time and that
	// the result should be stored rather than compared
	//
	// message is the string that is to be printed during the regression
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(digestEntryID, deserialiseDigestEntry); err != nil {
		return err
	}

	// make sure the regression script directory exists
	scripts, err := resources.JoinPath(regressionScripts)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	if err := os.MkdirAll(scripts, 0700); err != nil {
		return curated.Errorf("regression: script directory: %v", err)
	}

	return nil
}

func dbPath() (string, error) {
	p, err := resources.JoinPath(regressionDBFile)
	if err != nil {
		return "", curated.Errorf("regression: %v", err)
	}
	return p, nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: list: output is nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes a test from the regression database. The request is
// confirmed through the confirmation reader before anything happens.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: delete: output is nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key [%s]", key)
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from the regression database\n", key)))
	}

	return nil
}

// RegressAdd adds a new test to the regression database. The test is run
// once to record the result that later runs will be compared against.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: add: output is nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	ok, err := reg.regress(true, output, msg)
	if err != nil {
		return err
	}
	if !ok {
		return curated.Errorf("regression: add: %s", reg.String())
	}

	output.Write([]byte(ansiClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressRunTests runs the tests in the regression database. An empty
// filterKeys list means that every entry is tested.
func RegressRunTests(output io.Writer, verbose bool, failOnError bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: run: output is nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	// convert filter keys and sort so tests run in key order
	keys := make([]int, 0, len(filterKeys))
	for i := range filterKeys {
		v, err := strconv.Atoi(filterKeys[i])
		if err != nil {
			return curated.Errorf("regression: invalid key [%s]", filterKeys[i])
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0
	numError := 0
	numSkipped := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	testKeys := db.SortedKeyList()
	if len(keys) > 0 {
		numSkipped = db.NumEntries() - len(keys)
		testKeys = keys
	}

	for _, key := range testKeys {
		ent, err := db.Get(key)
		if err != nil {
			return err
		}

		// database entry should also satisfy the Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: entry does not satisfy the Regressor interface")
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, err = reg.regress(false, output, msg)

		// once regress() has completed, clear the line ready for the
		// completion message
		output.Write([]byte(ansiClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r  error: %03d %s\n", key, reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
			if failOnError {
				return nil
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %03d %s\n", key, reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %03d %s\n", key, reg)))
		}
	}

	return nil
}
