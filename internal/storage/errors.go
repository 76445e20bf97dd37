package storage

import "errors"

// ErrNotFound is returned by storage lookups addressing an absent entity.
var ErrNotFound = errors.New("not found")
