package memory

import "errors"

var (
	ErrEmptyNamespace = errors.New("storage namespace is empty")
	ErrEmptyKey       = errors.New("storage key is empty")
)
