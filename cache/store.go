package cache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/hn2v/transition"
)

// Store wraps a badger database holding gob-encoded transition.Tables
// values. A nil *Store (returned by OpenDisabled) treats every Get as a
// miss and every Put as a no-op, so callers can wire caching optionally
// without branching on whether it is enabled.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a badger database rooted at dir.
func Open(dir string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenDisabled returns a Store that never hits disk — the no-cache wiring.
func OpenDisabled() *Store { return nil }

// Close releases the underlying badger database. Safe to call on a nil
// (disabled) Store.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Key derives the cache key for a graph hash built under mode and params.
// Distinct parameters must never collide on the same key, so every field
// that changes the resulting tables is mixed in.
func Key(graphHash string, mode transition.Mode, params transition.Params) []byte {
	return []byte(fmt.Sprintf("hn2v/tables/%s/%s/p=%g/q=%g/gamma=%g", graphHash, mode, params.P, params.Q, params.Gamma))
}

// Get fetches and decodes the tables stored at key. Returns ErrNotFound on
// a cache miss, including when s is nil (caching disabled).
func (s *Store) Get(key []byte) (*transition.Tables, error) {
	if s == nil {
		return nil, ErrNotFound
	}

	var payload []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get: %w", err)
	}

	var tbl transition.Tables
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&tbl); err != nil {
		return nil, fmt.Errorf("cache: decode: %w", err)
	}
	return &tbl, nil
}

// Put encodes and stores tbl under key. A nil (disabled) Store is a no-op.
func (s *Store) Put(key []byte, tbl *transition.Tables) error {
	if s == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(tbl); err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf.Bytes())
	})
}
