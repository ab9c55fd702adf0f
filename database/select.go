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

import "github.com/hockleyj/gopheroids/curated"

// SelectAll entries in the database, in key order. onSelect can be nil. An
// error from onSelect() ends the selection.
//
// Returns the last entry in the selection or, with an error, the entry being
// considered when the error occurred.
func (db Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := db.SortedKeyList()

	for k := range keyList {
		entry = db.entries[keyList[k]]
		if err := onSelect(entry); err != nil {
			return entry, err
		}
	}

	return entry, nil
}

// SelectKeys matches entries with the specified key(s). keys can be
// singular. If the list of keys is empty then all keys are matched
// (SelectAll() may be more appropriate in that case). onSelect can be nil.
// An error from onSelect() ends the selection.
//
// Returns the last entry in the selection or, with an error, the entry being
// considered when the error occurred.
func (db Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for i := range keyList {
		e, ok := db.entries[keyList[i]]
		if !ok {
			return entry, curated.Errorf("database: key not available (%03d)", keyList[i])
		}

		entry = e
		if err := onSelect(entry); err != nil {
			return entry, err
		}
	}

	if entry == nil {
		return nil, curated.Errorf("database: select empty")
	}

	return entry, nil
}
