package repository

import "errors"

// ErrNotFound is returned when no credential is stored.
var ErrNotFound = errors.New("not found")
