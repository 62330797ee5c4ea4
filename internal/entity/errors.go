package entity

import "errors"

var (
	ErrUnknownEntityKind   = errors.New("unknown entity kind")
	ErrMalformedEntityData = errors.New("malformed entity data")
)
