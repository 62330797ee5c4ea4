package storage

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// CompressedStore zstd compresses blobs on their way into another store.
type CompressedStore struct {
	inner BlobStore

	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewCompressedStore(inner BlobStore) (*CompressedStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("creating encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		// Ignoring close error - encoder never wrote anything
		_ = encoder.Close()
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	return &CompressedStore{
		inner:   inner,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

func (s *CompressedStore) Get(key string) ([]byte, error) {
	b, err := s.inner.Get(key)
	if err != nil {
		return nil, err
	}

	out, err := s.decoder.DecodeAll(b, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", key, err)
	}
	return out, nil
}

func (s *CompressedStore) Put(key string, data []byte) error {
	return s.inner.Put(key, s.encoder.EncodeAll(data, nil))
}

// Close releases the codecs and closes the wrapped store.
func (s *CompressedStore) Close() error {
	s.decoder.Close()
	encErr := s.encoder.Close()
	if err := Close(s.inner); err != nil {
		return err
	}
	return encErr
}
