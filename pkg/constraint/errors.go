package constraint

import "errors"

// Package-specific errors. Checker faults wrap these so callers can
// distinguish a broken declaration or a failed collaborator from an
// ordinary unmet constraint.
var (
	// ErrEmptyKind is returned when registering a constraint with no kind tag.
	ErrEmptyKind = errors.New("constraint kind is empty")

	// ErrNilCheck is returned when registering a nil check function.
	ErrNilCheck = errors.New("constraint check is nil")

	// ErrKindRegistered is returned when a kind is registered twice.
	ErrKindRegistered = errors.New("constraint kind already registered")

	// ErrTypeMismatch indicates a constraint was declared on a value of an
	// incompatible type.
	ErrTypeMismatch = errors.New("value type does not match constraint")

	// ErrMissingParam indicates a constraint declaration lacks a required parameter.
	ErrMissingParam = errors.New("constraint parameter is missing")

	// ErrMissingLookup indicates a lookup-backed constraint was declared
	// without its collaborator.
	ErrMissingLookup = errors.New("lookup collaborator is missing")
)
