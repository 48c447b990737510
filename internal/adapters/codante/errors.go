package codante

import "errors"

// Sentinel kinds for upstream failures.
var (
	ErrRequest          = errors.New("olympic-games request failed")
	ErrUnexpectedStatus = errors.New("olympic-games unexpected status")
	ErrDecode           = errors.New("olympic-games decode failed")
)
