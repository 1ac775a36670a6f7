package sqlite

import "errors"

var (
	ErrEmptyPath      = errors.New("sqlite path is empty")
	ErrEmptyNamespace = errors.New("storage namespace is empty")
	ErrEmptyKey       = errors.New("storage key is empty")
)
