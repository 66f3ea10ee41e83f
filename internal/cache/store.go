// Package cache provides a content-addressable, encrypted-at-rest store for
// expensive intermediate results of the cube attack: rounds 1-4 partial ANF
// (internal/anf.BuildL4 output) and numeric cube-sum vectors
// (internal/ascon.CubeSum output). Recomputing either is costly enough, and
// repeated often enough across exploratory runs over the same cube, that
// caching them on disk pays for itself.
package cache

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogpeppe/go-internal/cache"
)

// Store is a content-addressable cache of gob-encoded, ASCON-encrypted
// entries, backed by a directory-based on-disk cache shared across runs.
type Store struct {
	fsCache *cache.Cache
	seed    []byte
}

// Open opens (creating if necessary) the on-disk cache rooted at dir. seed
// is the key-derivation seed for entry encryption; every Store sharing a
// seed and dir can read each other's entries.
func Open(dir string, seed []byte) (*Store, error) {
	sub := filepath.Join(dir, "asconcube")
	if err := os.MkdirAll(sub, 0o777); err != nil {
		return nil, fmt.Errorf("cache: creating cache dir: %w", err)
	}
	fsCache, err := cache.Open(sub)
	if err != nil {
		return nil, fmt.Errorf("cache: opening cache: %w", err)
	}
	return &Store{fsCache: fsCache, seed: seed}, nil
}

// ActionID derives a content-addressable cache key from a set of
// identifying parts (phase name, column index, cube description, and so
// on), joined with NUL separators before hashing.
func ActionID(parts ...string) cache.ActionID {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	var id cache.ActionID
	copy(id[:], h.Sum(nil))
	return id
}

// Get looks up entryID's cached value and decodes it into out. The second
// return value is false on a cache miss (not an error); a non-nil error
// indicates a present-but-unusable entry (corrupted, wrong seed).
func (s *Store) Get(id cache.ActionID, entryID string, out any) (bool, error) {
	filename, _, err := s.fsCache.GetFile(id)
	if err != nil {
		return false, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return false, nil
	}
	if err := Decrypt(data, s.seed, entryID, out); err != nil {
		return true, fmt.Errorf("cache: entry %s unreadable: %w", entryID, err)
	}
	return true, nil
}

// Put encrypts and stores data under id, tagged with entryID.
func (s *Store) Put(id cache.ActionID, entryID string, data any) error {
	encrypted, err := Encrypt(data, s.seed, entryID)
	if err != nil {
		return fmt.Errorf("cache: encrypting entry %s: %w", entryID, err)
	}
	if _, err := s.fsCache.PutBytes(id, encrypted); err != nil {
		return fmt.Errorf("cache: storing entry %s: %w", entryID, err)
	}
	return nil
}
