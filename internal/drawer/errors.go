package drawer

import "errors"

var (
	ErrDrawerFull          = errors.New("drawer full")
	ErrGridIndexOutOfRange = errors.New("grid index out of range")
	ErrCellOccupied        = errors.New("cell occupied")
)
