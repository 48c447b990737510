package config

import (
	"errors"
)

// Errors returned by Load and Config.Validate.
var (
	ErrInvalidConfig = errors.New("olympia: invalid config")
	ErrLoadConfig    = errors.New("olympia: load config")
)
