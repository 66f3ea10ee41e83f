package ascon

import (
	"encoding/binary"
)

// ASCON-128 parameters. This AEAD is not the object under attack (the
// attack treats the permutation as a keyless, constant-free primitive,
// see Permute's addConstants flag) — it exists only to give the on-disk
// artifact cache (internal/cache) a concrete confidentiality mechanism,
// adapted from the teacher's internal/literals/ascon.go onto the shared
// Permute instead of a second, private permutation implementation.
const (
	KeySize   = 16
	NonceSize = 16
	TagSize   = 16
	rate      = 8 // bytes absorbed/squeezed per block
)

var iv = uint64(0x80400c0600000000)

func initialize(key, nonce []byte) State {
	var s State
	s[0] = iv
	s[1] = binary.BigEndian.Uint64(key[0:8])
	s[2] = binary.BigEndian.Uint64(key[8:16])
	s[3] = binary.BigEndian.Uint64(nonce[0:8])
	s[4] = binary.BigEndian.Uint64(nonce[8:16])

	Permute(&s, 12, true, true)

	s[3] ^= binary.BigEndian.Uint64(key[0:8])
	s[4] ^= binary.BigEndian.Uint64(key[8:16])
	return s
}

func finalize(s *State, key []byte) []byte {
	s[1] ^= binary.BigEndian.Uint64(key[0:8])
	s[2] ^= binary.BigEndian.Uint64(key[8:16])

	Permute(s, 12, true, true)

	s[3] ^= binary.BigEndian.Uint64(key[0:8])
	s[4] ^= binary.BigEndian.Uint64(key[8:16])

	tag := make([]byte, TagSize)
	binary.BigEndian.PutUint64(tag[0:8], s[3])
	binary.BigEndian.PutUint64(tag[8:16], s[4])
	return tag
}

// Seal encrypts and authenticates plaintext under key/nonce, returning
// ciphertext||tag. There is no associated-data input; callers that need
// to bind context should fold it into the key via HKDF (see
// internal/cache's key derivation).
func Seal(key, nonce, plaintext []byte) []byte {
	if len(key) != KeySize {
		panic("ascon: invalid key size")
	}
	if len(nonce) != NonceSize {
		panic("ascon: invalid nonce size")
	}

	s := initialize(key, nonce)
	s[4] ^= 1 // domain separation before the payload, even if empty

	ciphertext := make([]byte, len(plaintext))
	offset := 0
	for offset+rate <= len(plaintext) {
		block := binary.BigEndian.Uint64(plaintext[offset : offset+rate])
		s[0] ^= block
		binary.BigEndian.PutUint64(ciphertext[offset:offset+rate], s[0])
		Permute(&s, 6, true, true)
		offset += rate
	}

	if offset < len(plaintext) {
		remaining := len(plaintext) - offset
		var padded [rate]byte
		copy(padded[:], plaintext[offset:])
		padded[remaining] = 0x80
		s[0] ^= binary.BigEndian.Uint64(padded[:])

		var block [rate]byte
		binary.BigEndian.PutUint64(block[:], s[0])
		copy(ciphertext[offset:], block[:remaining])
	} else {
		s[0] ^= 0x8000000000000000
	}

	tag := finalize(&s, key)
	return append(ciphertext, tag...)
}

// Open verifies and decrypts ciphertextAndTag, returning the plaintext
// and true on success, or nil and false on authentication failure.
func Open(key, nonce, ciphertextAndTag []byte) ([]byte, bool) {
	if len(key) != KeySize {
		panic("ascon: invalid key size")
	}
	if len(nonce) != NonceSize {
		panic("ascon: invalid nonce size")
	}
	if len(ciphertextAndTag) < TagSize {
		return nil, false
	}

	ciphertextLen := len(ciphertextAndTag) - TagSize
	ciphertext := ciphertextAndTag[:ciphertextLen]
	receivedTag := ciphertextAndTag[ciphertextLen:]

	s := initialize(key, nonce)
	s[4] ^= 1

	plaintext := make([]byte, len(ciphertext))
	offset := 0
	for offset+rate <= len(ciphertext) {
		block := binary.BigEndian.Uint64(ciphertext[offset : offset+rate])
		binary.BigEndian.PutUint64(plaintext[offset:offset+rate], s[0]^block)
		s[0] = block
		Permute(&s, 6, true, true)
		offset += rate
	}

	if offset < len(ciphertext) {
		remaining := len(ciphertext) - offset
		var stateBytes [rate]byte
		binary.BigEndian.PutUint64(stateBytes[:], s[0])

		var padded [rate]byte
		for i := 0; i < remaining; i++ {
			padded[i] = ciphertext[offset+i] ^ stateBytes[i]
			plaintext[offset+i] = padded[i]
		}
		padded[remaining] = 0x80
		s[0] ^= binary.BigEndian.Uint64(padded[:])
	} else {
		s[0] ^= 0x8000000000000000
	}

	expectedTag := finalize(&s, key)

	var diff byte
	for i := 0; i < TagSize; i++ {
		diff |= receivedTag[i] ^ expectedTag[i]
	}
	if diff != 0 {
		for i := range plaintext {
			plaintext[i] = 0
		}
		return nil, false
	}
	return plaintext, true
}
