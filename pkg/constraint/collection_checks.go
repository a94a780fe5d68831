package constraint

import (
	"context"
	"fmt"
)

// Collection constraint kinds.
const (
	KindMinItems Kind = "min_items"
	KindMaxItems Kind = "max_items"
	KindNotEmpty Kind = "not_empty"
)

func registerCollectionKinds(r *Registry) {
	r.MustRegister(KindMinItems, checkMinItems, "must have at least {min} items")
	r.MustRegister(KindMaxItems, checkMaxItems, "must have at most {max} items")
	r.MustRegister(KindNotEmpty, checkNotEmpty, "must not be empty")
}

// MinItems declares a lower bound on the number of collection elements.
func MinItems(min int) Constraint {
	return New(KindMinItems, Params{"min": min})
}

// MaxItems declares an upper bound on the number of collection elements.
func MaxItems(max int) Constraint {
	return New(KindMaxItems, Params{"max": max})
}

// NotEmpty declares that a present collection must hold at least one
// element. Unlike Required it still passes on an absent field.
func NotEmpty() Constraint {
	return New(KindNotEmpty, nil)
}

func checkMinItems(_ context.Context, value any, p Params) (bool, error) {
	min, ok := p.Int("min")
	if !ok {
		return false, fmt.Errorf("%w: min", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindMinItems, value)
	}
	return n >= min, nil
}

func checkMaxItems(_ context.Context, value any, p Params) (bool, error) {
	max, ok := p.Int("max")
	if !ok {
		return false, fmt.Errorf("%w: max", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindMaxItems, value)
	}
	return n <= max, nil
}

func checkNotEmpty(_ context.Context, value any, _ Params) (bool, error) {
	if isNil(value) {
		return true, nil
	}

	n, ok := lengthOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindNotEmpty, value)
	}
	return n > 0, nil
}
