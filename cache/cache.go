// Package cache is a content-addressed store for compiled classes. Entries
// are keyed by the hash of the source text, so a cache hit skips compilation
// entirely and a single changed character misses.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cache: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Entry is one cached compilation result.
type Entry struct {
	Hash         [32]byte `cbor:"1,keyasint"`
	ClassName    string   `cbor:"2,keyasint"`
	Instructions []string `cbor:"3,keyasint"`
}

// Key hashes source text into a cache key.
func Key(source string) [32]byte {
	return sha256.Sum256([]byte(source))
}

// Marshal serializes an Entry to CBOR bytes.
func Marshal(e *Entry) ([]byte, error) {
	return cborEncMode.Marshal(e)
}

// Unmarshal deserializes an Entry from CBOR bytes.
func Unmarshal(data []byte) (*Entry, error) {
	var e Entry
	if err := cbor.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("cache: unmarshal entry: %w", err)
	}
	return &e, nil
}

// Store is a directory of CBOR entry files, one per source hash.
type Store struct {
	dir string
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cache: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key [32]byte) string {
	return filepath.Join(s.dir, hex.EncodeToString(key[:])+".cbor")
}

// Get looks up the entry for key. A miss returns (nil, nil); a corrupt entry
// is treated as a miss and removed.
func (s *Store) Get(key [32]byte) (*Entry, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: read entry: %w", err)
	}

	e, err := Unmarshal(data)
	if err != nil || e.Hash != key {
		os.Remove(s.path(key))
		return nil, nil
	}
	return e, nil
}

// Put stores an entry under its hash. The write goes through a temp file and
// rename so concurrent compilers never observe a partial entry.
func (s *Store) Put(e *Entry) error {
	data, err := Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: marshal entry: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("cache: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: write entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: close entry: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(e.Hash)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: commit entry: %w", err)
	}
	return nil
}
