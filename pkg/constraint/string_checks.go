package constraint

import (
	"context"
	"fmt"
)

// String and length constraint kinds.
const (
	KindRequired    Kind = "required"
	KindMinLength   Kind = "min_length"
	KindMaxLength   Kind = "max_length"
	KindExactLength Kind = "exact_length"
	KindSize        Kind = "size"
)

func registerStringKinds(r *Registry) {
	r.MustRegister(KindRequired, checkRequired, "is required")
	r.MustRegister(KindMinLength, checkMinLength, "must be at least {min} characters")
	r.MustRegister(KindMaxLength, checkMaxLength, "must be at most {max} characters")
	r.MustRegister(KindExactLength, checkExactLength, "must be exactly {length} characters")
	r.MustRegister(KindSize, checkSize, "length must be between {min} and {max}")
}

// Required declares that a field must carry a non-blank value:
// non-nil, not whitespace-only, not an empty collection.
func Required() Constraint {
	return New(KindRequired, nil)
}

// MinLength declares a lower bound on string or collection length.
func MinLength(min int) Constraint {
	return New(KindMinLength, Params{"min": min})
}

// MaxLength declares an upper bound on string or collection length.
func MaxLength(max int) Constraint {
	return New(KindMaxLength, Params{"max": max})
}

// ExactLength declares an exact string or collection length.
func ExactLength(length int) Constraint {
	return New(KindExactLength, Params{"length": length})
}

// Size declares an inclusive length range, the common pairing of
// min/max bounds on a single field.
func Size(min, max int) Constraint {
	return New(KindSize, Params{"min": min, "max": max})
}

func checkRequired(_ context.Context, value any, _ Params) (bool, error) {
	return !isBlank(value), nil
}

func checkMinLength(_ context.Context, value any, p Params) (bool, error) {
	min, ok := p.Int("min")
	if !ok {
		return false, fmt.Errorf("%w: min", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindMinLength, value)
	}
	return n >= min, nil
}

func checkMaxLength(_ context.Context, value any, p Params) (bool, error) {
	max, ok := p.Int("max")
	if !ok {
		return false, fmt.Errorf("%w: max", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindMaxLength, value)
	}
	return n <= max, nil
}

func checkExactLength(_ context.Context, value any, p Params) (bool, error) {
	exact, ok := p.Int("length")
	if !ok {
		return false, fmt.Errorf("%w: length", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindExactLength, value)
	}
	return n == exact, nil
}

func checkSize(_ context.Context, value any, p Params) (bool, error) {
	min, okMin := p.Int("min")
	max, okMax := p.Int("max")
	if !okMin || !okMax {
		return false, fmt.Errorf("%w: min/max", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindSize, value)
	}
	return n >= min && n <= max, nil
}
