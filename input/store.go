package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// BindingsKey is the storage key the mapping is persisted under.
const BindingsKey = "keyBindings"

var ErrNotFound = errors.New("input: stored value not found")

// Store is an opaque key-value persistence backend.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FileStore keeps one <key>.toml file per key under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".toml")
}

func (s *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("input: load %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("input: load %s: %w", key, err)
	}
	return data, nil
}

// Save writes through a temp file so a crash never leaves a torn table.
func (s *FileStore) Save(key string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("input: save %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("input: save %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("input: save %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("input: save %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("input: save %s: %w", key, err)
	}
	return nil
}

// MemoryStore is an in-process Store, used when persistence is disabled.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("input: load %s: %w", key, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.data[key] = append([]byte(nil), data...)
	return nil
}
