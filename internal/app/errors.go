package service

import "errors"

// ErrEventNotFound is returned when an event id is not on the requested page.
var ErrEventNotFound = errors.New("event not found")
