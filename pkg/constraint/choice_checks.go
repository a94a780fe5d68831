package constraint

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Choice constraint kinds.
const (
	KindOneOf    Kind = "one_of"
	KindAccepted Kind = "accepted"
)

func registerChoiceKinds(r *Registry) {
	r.MustRegister(KindOneOf, checkOneOf, "must be one of {choices}")
	r.MustRegister(KindAccepted, checkAccepted, "must be accepted")
}

// OneOf declares that a string must equal one of the allowed choices.
func OneOf(choices ...string) Constraint {
	return New(KindOneOf, Params{
		"allowed": choices,
		"choices": strings.Join(choices, ", "),
	})
}

// Accepted declares that a checkbox-style field must be affirmative:
// true, "yes", "on", "1", or a non-zero number.
func Accepted() Constraint {
	return New(KindAccepted, nil)
}

func checkOneOf(_ context.Context, value any, p Params) (bool, error) {
	allowed, ok := p["allowed"].([]string)
	if !ok || len(allowed) == 0 {
		return false, fmt.Errorf("%w: allowed", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindOneOf, value)
	}
	if s == "" {
		return true, nil
	}
	return slices.Contains(allowed, s), nil
}

func checkAccepted(_ context.Context, value any, _ Params) (bool, error) {
	if isNil(value) {
		return false, nil
	}
	return truthy(value), nil
}
