package repositories

import "errors"

// ErrNotFound is returned by every repository when the requested record does
// not exist in the currently selected backend.
var ErrNotFound = errors.New("record not found")
