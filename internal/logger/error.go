package logger

import "errors"

var ErrEmptyTagPrefix = errors.New("fluent tag prefix is required")
