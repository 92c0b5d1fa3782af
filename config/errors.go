package config

import "errors"

// Configuration errors.
var (
	// ErrNotFound indicates no configuration file exists yet.
	ErrNotFound = errors.New("configuration not found")

	// ErrInvalid indicates the configuration file could not be parsed
	// or fails validation.
	ErrInvalid = errors.New("invalid configuration")

	// ErrUnknownKey indicates a config set key that does not exist.
	ErrUnknownKey = errors.New("unknown configuration key")
)
