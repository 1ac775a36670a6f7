package catalog

import "errors"

var (
	ErrEmptyCatalog = errors.New("catalog has no hotels")
	ErrDuplicateID  = errors.New("duplicate hotel id")
	ErrInvalidHotel = errors.New("invalid hotel record")
)
