package config

import "errors"

var (
	// ErrConfigFileNotFound is returned when the configuration file does not exist.
	ErrConfigFileNotFound = errors.New("config: file not found")

	// ErrConfigParseError is returned when the file cannot be read or decoded.
	ErrConfigParseError = errors.New("config: parse error")

	// ErrConfigValidation wraps every Validate failure.
	ErrConfigValidation = errors.New("config: validation failed")
)
