//go:build linux

package storage

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const xattrPrefix = "user."

// XattrStore keeps blobs as extended attributes on a single file, the way a
// desktop app would keep its state on its own bundle.
type XattrStore struct {
	path string
}

// NewXattrStore creates path if it does not exist.
func NewXattrStore(path string) (*XattrStore, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening attribute file: %w", err)
	}
	// Ignoring close error - file is only held to make sure it exists
	_ = f.Close()

	return &XattrStore{path: path}, nil
}

func (s *XattrStore) Get(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	attr := xattrPrefix + key
	for {
		size, err := unix.Getxattr(s.path, attr, nil)
		if err != nil {
			return nil, s.wrap(key, err)
		}

		buf := make([]byte, size)
		n, err := unix.Getxattr(s.path, attr, buf)
		if errors.Is(err, unix.ERANGE) {
			// Grew between the two calls
			continue
		}
		if err != nil {
			return nil, s.wrap(key, err)
		}
		return buf[:n], nil
	}
}

func (s *XattrStore) Put(key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	if err := unix.Setxattr(s.path, xattrPrefix+key, data, 0); err != nil {
		return fmt.Errorf("writing attribute %s: %w", key, err)
	}
	return nil
}

func (s *XattrStore) wrap(key string, err error) error {
	if errors.Is(err, unix.ENODATA) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return fmt.Errorf("reading attribute %s: %w", key, err)
}
