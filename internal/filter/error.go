package filter

import "errors"

var ErrMalformedSnapshot = errors.New("malformed filter snapshot")
