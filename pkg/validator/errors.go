package validator

import "errors"

// Package-specific errors.
var (
	// ErrNilSchema is returned when validating with a nil schema.
	ErrNilSchema = errors.New("schema is nil")

	// ErrUnknownKind is returned when a schema references a constraint
	// kind the registry does not know.
	ErrUnknownKind = errors.New("unknown constraint kind")

	// ErrCheckFailed wraps a checker fault: a broken declaration or a
	// failed collaborator, as opposed to an ordinary unmet constraint.
	ErrCheckFailed = errors.New("constraint check failed")
)
