package repository

import "errors"

// ErrNotFound is returned when a visitor is not tracked.
var ErrNotFound = errors.New("visitor not found")
