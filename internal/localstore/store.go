// Package localstore persists the gateway's two durable pieces of client
// state, the auth token and the working journal mirror, in a small bbolt
// file. Everything else lives upstream.
package localstore

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/insanmekan/journal_management_app/internal/core/domain"
)

var (
	bucketState = []byte("state")

	keyAuthToken     = []byte("authToken")
	keyActiveJournal = []byte("activeJournal")
)

// Store is a handle on the bbolt file. Safe for concurrent use.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Token returns the stored bearer token, empty when none is stored.
func (s *Store) Token() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketState).Get(keyAuthToken); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

// SaveToken stores the bearer token.
func (s *Store) SaveToken(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyAuthToken, []byte(token))
	})
}

// DeleteToken removes the stored bearer token.
func (s *Store) DeleteToken() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Delete(keyAuthToken)
	})
}

// ActiveJournal returns the mirrored working journal, nil when none is
// stored.
func (s *Store) ActiveJournal() (*domain.Journal, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketState).Get(keyActiveJournal); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return nil, err
	}
	var j domain.Journal
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("decode mirrored journal: %w", err)
	}
	return &j, nil
}

// SaveActiveJournal mirrors the working journal.
func (s *Store) SaveActiveJournal(j *domain.Journal) error {
	raw, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("encode mirrored journal: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keyActiveJournal, raw)
	})
}

// DeleteActiveJournal removes the mirror.
func (s *Store) DeleteActiveJournal() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Delete(keyActiveJournal)
	})
}
