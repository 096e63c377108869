package persist

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Storage.Read when a key has never been written.
var ErrNotFound = errors.New("persist: key not found")

// Storage is the durable key/value store the gateway writes to: a directory
// on disk in the shipped app, an in-memory map in tests. Failures are
// expected (quota, permissions) and degrade to best-effort persistence.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}

// DirStorage persists each key as a JSON file under a directory.
type DirStorage struct {
	dir string
}

func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{dir: dir}
}

func (d *DirStorage) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

func (d *DirStorage) Read(key string) ([]byte, error) {
	b, err := os.ReadFile(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

func (d *DirStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(d.path(key), data, 0o644)
}

func (d *DirStorage) Delete(key string) error {
	err := os.Remove(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemStorage is an in-memory Storage for tests. FailWrites simulates a full
// or unavailable store.
type MemStorage struct {
	data       map[string][]byte
	FailWrites bool
}

func NewMemStorage() *MemStorage {
	return &MemStorage{data: map[string][]byte{}}
}

func (m *MemStorage) Read(key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (m *MemStorage) Write(key string, data []byte) error {
	if m.FailWrites {
		return errors.New("persist: storage unavailable")
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemStorage) Delete(key string) error {
	delete(m.data, key)
	return nil
}
