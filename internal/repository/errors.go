package repository

import "errors"

// ErrNotFound is returned by every backend when no record matches the id,
// so controllers can map it to 404 without knowing which store is active.
var ErrNotFound = errors.New("record not found")
