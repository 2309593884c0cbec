// Package history persists a record of every finished download attempt.
package history

import (
	"encoding/binary"
	"encoding/json"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/khanhnv219/nexus-downloader/internal/model"
)

const entriesBucket = "entries"

// Store is a bbolt-backed history log. Entries are keyed by an
// auto-incrementing sequence so iteration order is insertion order.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(entriesBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a finished download attempt.
func (s *Store) Append(entry model.HistoryEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(entriesBucket))

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		value, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return bucket.Put(key, value)
	})
}

// List returns up to limit entries, most recent first. A non-positive
// limit returns everything.
func (s *Store) List(limit int) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket([]byte(entriesBucket)).Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry model.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				// skip records from older incompatible versions
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Search returns entries whose title, URL, or platform contains the query,
// case-insensitively, most recent first. An empty query matches everything.
func (s *Store) Search(query string) ([]model.HistoryEntry, error) {
	all, err := s.List(0)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}

	needle := strings.ToLower(query)
	var matched []model.HistoryEntry
	for _, entry := range all {
		if strings.Contains(strings.ToLower(entry.Title), needle) ||
			strings.Contains(strings.ToLower(entry.URL), needle) ||
			strings.Contains(strings.ToLower(entry.Platform), needle) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// Get returns the entry with the given ID, or false if absent.
func (s *Store) Get(id string) (model.HistoryEntry, bool, error) {
	var found model.HistoryEntry
	var ok bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket([]byte(entriesBucket)).Cursor()
		for k, v := cursor.Last(); k != nil; k, v = cursor.Prev() {
			var entry model.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				continue
			}
			if entry.ID == id {
				found = entry
				ok = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return model.HistoryEntry{}, false, err
	}

	return found, ok, nil
}
