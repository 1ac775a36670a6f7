package web

import "errors"

var ErrPanic = errors.New("panic recovered")
