package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the string-keyed persistence collaborator. The book's
// collections and the currency preference are the only values persisted
// through it, each as a self-contained serialized blob.
type Store interface {
	// Load returns the value for key, with ok=false when the key is absent.
	Load(key string) (data []byte, ok bool, err error)
	// Save replaces the value for key.
	Save(key string, data []byte) error
}

// DirStore is a Store backed by one file per key inside a directory.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory is created
// lazily on the first save.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot load %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DirStore) Save(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store directory %q: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, key)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot save %q: %w", key, err)
	}
	return nil
}

var _ Store = (*DirStore)(nil)

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore map[string][]byte

func (s MemStore) Load(key string) ([]byte, bool, error) {
	data, ok := s[key]
	return data, ok, nil
}

func (s MemStore) Save(key string, data []byte) error {
	s[key] = data
	return nil
}

var _ Store = (MemStore)(nil)
