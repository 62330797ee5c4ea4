package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var (
	ErrNotFound   = errors.New("blob not found")
	ErrInvalidKey = errors.New("invalid key")
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// BlobStore holds opaque blobs by key.
type BlobStore interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// ValidateKey reports whether key can be used with every backend.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q must be alphanumeric", ErrInvalidKey, key)
	}
	return nil
}

// Close closes st if it holds any resources.
func Close(st BlobStore) error {
	if c, ok := st.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FileStore keeps each blob in its own file under a directory.
type FileStore struct {
	path string

	mu sync.RWMutex
}

func NewFileStore(path string) (*FileStore, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening store directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening store directory: %s is not a directory", path)
	}

	return &FileStore{path: path}, nil
}

func (s *FileStore) Get(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(s.filePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return b, nil
}

func (s *FileStore) Put(key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return atomicWrite(s.filePath(key), data, 0644)
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.path, key+".blob")
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// MemoryStore keeps blobs in process memory.
type MemoryStore struct {
	blobs map[string][]byte

	mu sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), b...), nil
}

func (s *MemoryStore) Put(key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
