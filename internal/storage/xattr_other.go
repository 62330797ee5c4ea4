//go:build !linux

package storage

import (
	"errors"
)

var errXattrUnsupported = errors.New("extended attribute storage is only supported on linux")

type XattrStore struct{}

func NewXattrStore(string) (*XattrStore, error) {
	return nil, errXattrUnsupported
}

func (s *XattrStore) Get(string) ([]byte, error) {
	return nil, errXattrUnsupported
}

func (s *XattrStore) Put(string, []byte) error {
	return errXattrUnsupported
}
