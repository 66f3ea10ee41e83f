package cache

import (
	"bytes"
	"crypto/rand"
	"encoding/gob"
	"fmt"

	"github.com/baudrin-research/asconcube/internal/ascon"
)

const (
	// NonceSize is the size in bytes of the randomly generated nonce used for cache entry encryption.
	NonceSize = ascon.NonceSize
	// TagSize is the size in bytes of the authentication tag appended by the cache's AEAD.
	TagSize = ascon.TagSize
)

// Encrypt gob-encodes data and seals it under the key for entryID, returning
// nonce||ciphertext||tag. entryID names the cache slot the result will be
// stored under (for example a column index and cube description); folding it
// into key derivation means two entries sharing a seed never share a key,
// even though the seed itself stays fixed across a run.
func Encrypt(data any, seed []byte, entryID string) ([]byte, error) {
	plaintext, err := gobEncode(data)
	if err != nil {
		return nil, err
	}
	return seal(plaintext, deriveEntryKey(seed, entryID))
}

// Decrypt reverses Encrypt, authenticating and gob-decoding encrypted into
// out. seed and entryID must match the values Encrypt was called with.
func Decrypt(encrypted []byte, seed []byte, entryID string, out any) error {
	plaintext, err := unseal(encrypted, deriveEntryKey(seed, entryID))
	if err != nil {
		return err
	}
	return gobDecode(plaintext, out)
}

// gobEncode and gobDecode keep the wire-format concern separate from the
// AEAD concern below, so seal/unseal never need to know the payload is gob.
func gobEncode(data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("cache: encoding entry: %w", err)
	}
	return buf.Bytes(), nil
}

func gobDecode(plaintext []byte, out any) error {
	if err := gob.NewDecoder(bytes.NewReader(plaintext)).Decode(out); err != nil {
		return fmt.Errorf("cache: decoding entry: %w", err)
	}
	return nil
}

// seal draws a fresh nonce and appends ASCON-128's ciphertext||tag after it,
// leaving the nonce as a plain prefix so unseal can split the two apart
// without any length field of its own.
func seal(plaintext, key []byte) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cache: drawing nonce: %w", err)
	}
	return append(nonce, ascon.Seal(key, nonce, plaintext)...), nil
}

func unseal(sealed, key []byte) ([]byte, error) {
	if len(sealed) < NonceSize {
		return nil, fmt.Errorf("cache: sealed entry is %d bytes, shorter than the %d-byte nonce", len(sealed), NonceSize)
	}
	nonce, body := sealed[:NonceSize], sealed[NonceSize:]
	plaintext, ok := ascon.Open(key, nonce, body)
	if !ok {
		return nil, fmt.Errorf("cache: entry failed authentication (wrong seed, wrong entry id, or corrupted data)")
	}
	return plaintext, nil
}
