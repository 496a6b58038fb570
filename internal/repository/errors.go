package repository

import "errors"

// ErrNotFound is returned when a query matches no row. For exam lookups it
// deliberately covers both "exam does not exist" and "not assigned to this
// student" so callers cannot leak exam existence.
var ErrNotFound = errors.New("record not found")
