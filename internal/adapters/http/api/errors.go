package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// badRequest wraps ErrBadRequest with the failing operation and detail.
func badRequest(op, detail string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrBadRequest, detail)
}
