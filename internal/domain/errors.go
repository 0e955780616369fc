package domain

import "errors"

// ErrNotFound is returned by repos when no document matches; handlers map
// it to a 404.
var ErrNotFound = errors.New("not found")
