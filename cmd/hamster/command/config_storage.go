package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-hamster/internal/overlay"
	"github.com/pixil98/go-hamster/internal/storage"
)

type BackendType int

const (
	BackendTypeBadger BackendType = iota
	BackendTypeXattr
	BackendTypeFile
)

func (bt *BackendType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "badger":
		*bt = BackendTypeBadger
	case "xattr":
		*bt = BackendTypeXattr
	case "file":
		*bt = BackendTypeFile
	default:
		return fmt.Errorf("unknown storage backend: %s", text)
	}
	return nil
}

type StorageConfig struct {
	Backend  BackendType `json:"backend"`
	Path     string      `json:"path"`
	Key      string      `json:"key,omitempty"`
	Compress bool        `json:"compress"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("storage: path is required"))
	}
	if c.Key != "" {
		if err := storage.ValidateKey(c.Key); err != nil {
			el.Add(fmt.Errorf("storage: %w", err))
		}
	}

	return el.Err()
}

func (c *StorageConfig) key() string {
	if c.Key == "" {
		return overlay.DefaultStoreKey
	}
	return c.Key
}

func (c *StorageConfig) BuildStore() (storage.BlobStore, error) {
	var st storage.BlobStore
	var err error

	switch c.Backend {
	case BackendTypeBadger:
		st, err = storage.NewBadgerStore(c.Path)
	case BackendTypeXattr:
		st, err = storage.NewXattrStore(c.Path)
	case BackendTypeFile:
		st, err = storage.NewFileStore(c.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %v", c.Backend)
	}
	if err != nil {
		return nil, err
	}

	if !c.Compress {
		return st, nil
	}

	compressed, err := storage.NewCompressedStore(st)
	if err != nil {
		// Ignoring close error - the store is being abandoned
		_ = storage.Close(st)
		return nil, err
	}
	return compressed, nil
}
