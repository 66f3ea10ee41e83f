package cache

import (
	"crypto/hkdf"
	"crypto/sha256"
	"fmt"
)

const entryKeyContext = "asconcube/cache/entry:v1"

// deriveEntryKey derives a 16-byte ASCON key for one cache entry from the
// run's seed and the entry's identifier, so that every entry encrypted under
// a given seed gets an independent key without needing its own stored salt.
func deriveEntryKey(seed []byte, entryID string) []byte {
	if len(seed) == 0 {
		panic("cache: encryption seed is empty")
	}

	info := entryKeyContext + "\x00" + entryID
	key, err := hkdf.Key(sha256.New, seed, nil, info, 16)
	if err != nil {
		panic(fmt.Sprintf("cache: hkdf key derivation failed: %v", err))
	}
	return key
}
