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

package database

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/hockleyj/gopheroids/curated"
)

// Activity describes the purpose of a database session. The activity decides
// how the database file is opened and whether the session can be committed.
type Activity int

// Valid activities.
const (
	ActivityReading Activity = iota
	ActivityCreating
	ActivityModifying
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries map[int]Entry

	entryTypes map[string]deserialiser
}

// StartSession is the preferred method of initialisation for the Session
// type. The init function is called once the database file has been opened
// but before any entries have been read; use it to register the entry types
// the session should expect.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{activity: activity}
	db.entryTypes = make(map[string]deserialiser)

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	case ActivityModifying:
		flags = os.O_RDWR
	}

	var err error
	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if init != nil {
		if err := init(db); err != nil {
			db.dbfile.Close()
			return nil, err
		}
	}

	if err := db.readDBFile(); err != nil {
		db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Entries are written back to the database
// file if commit is true. Committing a session that was started with
// ActivityReading is an error.
func (db *Session) EndSession(commit bool) error {
	if db.dbfile == nil {
		return curated.Errorf("database: session already ended")
	}

	var commitErr error
	if commit {
		commitErr = db.commit()
	}

	closeErr := db.dbfile.Close()
	db.dbfile = nil

	if commitErr != nil {
		return commitErr
	}
	if closeErr != nil {
		return curated.Errorf("database: %v", closeErr)
	}

	return nil
}

// write all entries back to the database file, replacing the previous
// contents entirely.
func (db *Session) commit() error {
	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot commit a read-only session")
	}

	if err := db.dbfile.Truncate(0); err != nil {
		return curated.Errorf("database: %v", err)
	}

	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return err
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.ID()))
		for i := 0; i < len(ser); i++ {
			s.WriteString(fieldSep)
			s.WriteString(ser[i])
		}
		s.WriteString(entrySep)

		if _, err := db.dbfile.WriteString(s.String()); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	return nil
}

func (db *Session) readDBFile() error {
	// clobbers the contents of db.entries
	db.entries = make(map[int]Entry)

	// make sure we're at the beginning of the file
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	buffer, err := ioutil.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	// split entries
	lines := strings.Split(string(buffer), entrySep)

	for i := 0; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if len(l) == 0 {
			continue
		}

		fields := strings.Split(l, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key [%s] at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key [%03d] at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type [%s] at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return err
		}

		db.entries[key] = ent
	}

	return nil
}
