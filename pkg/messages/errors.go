package messages

import "errors"

// Package-specific errors.
var (
	// ErrNilSource is returned when a resolver is created without a bundle source.
	ErrNilSource = errors.New("bundle source is nil")

	// ErrEmptyLocale is returned when a bundle carries an empty locale code.
	ErrEmptyLocale = errors.New("empty locale code in bundle")

	// ErrNilBundle is returned when a locale maps to a nil message map.
	ErrNilBundle = errors.New("nil message map for locale")

	// ErrFailedToParseYAML is returned when YAML bundle content cannot be parsed.
	ErrFailedToParseYAML = errors.New("failed to parse YAML bundle")

	// ErrFailedToParseJSON is returned when JSON bundle content cannot be parsed.
	ErrFailedToParseJSON = errors.New("failed to parse JSON bundle")

	// ErrUnsupportedFormat is returned when no parser supports a bundle file extension.
	ErrUnsupportedFormat = errors.New("unsupported bundle file format")

	// ErrLoadCancelled is returned when bundle loading is cancelled via context.
	ErrLoadCancelled = errors.New("bundle loading cancelled")
)
