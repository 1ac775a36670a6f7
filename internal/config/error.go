package config

import "errors"

var (
	ErrMissingValue         = errors.New("value is required")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	ErrNegativeDuration     = errors.New("duration must not be negative")
)
