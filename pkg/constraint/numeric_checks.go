package constraint

import (
	"context"
	"fmt"
)

// Numeric constraint kinds.
const (
	KindMin      Kind = "min"
	KindMax      Kind = "max"
	KindRange    Kind = "range"
	KindPositive Kind = "positive"
)

func registerNumericKinds(r *Registry) {
	r.MustRegister(KindMin, checkMin, "must be at least {min}")
	r.MustRegister(KindMax, checkMax, "must be at most {max}")
	r.MustRegister(KindRange, checkRange, "must be between {min} and {max}")
	r.MustRegister(KindPositive, checkPositive, "must be a positive number")
}

// Min declares a numeric lower bound (inclusive).
func Min(min float64) Constraint {
	return New(KindMin, Params{"min": min})
}

// Max declares a numeric upper bound (inclusive).
func Max(max float64) Constraint {
	return New(KindMax, Params{"max": max})
}

// Range declares an inclusive numeric interval.
func Range(min, max float64) Constraint {
	return New(KindRange, Params{"min": min, "max": max})
}

// Positive declares that a number must be strictly greater than zero.
func Positive() Constraint {
	return New(KindPositive, nil)
}

func numericValue(kind Kind, value any) (float64, bool, error) {
	if isNil(value) {
		return 0, false, nil
	}

	f, ok := floatOf(value)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, kind, value)
	}
	return f, true, nil
}

func checkMin(_ context.Context, value any, p Params) (bool, error) {
	min, ok := p.Float("min")
	if !ok {
		return false, fmt.Errorf("%w: min", ErrMissingParam)
	}

	f, present, err := numericValue(KindMin, value)
	if err != nil || !present {
		return err == nil, err
	}
	return f >= min, nil
}

func checkMax(_ context.Context, value any, p Params) (bool, error) {
	max, ok := p.Float("max")
	if !ok {
		return false, fmt.Errorf("%w: max", ErrMissingParam)
	}

	f, present, err := numericValue(KindMax, value)
	if err != nil || !present {
		return err == nil, err
	}
	return f <= max, nil
}

func checkRange(_ context.Context, value any, p Params) (bool, error) {
	min, okMin := p.Float("min")
	max, okMax := p.Float("max")
	if !okMin || !okMax {
		return false, fmt.Errorf("%w: min/max", ErrMissingParam)
	}

	f, present, err := numericValue(KindRange, value)
	if err != nil || !present {
		return err == nil, err
	}
	return f >= min && f <= max, nil
}

func checkPositive(_ context.Context, value any, _ Params) (bool, error) {
	f, present, err := numericValue(KindPositive, value)
	if err != nil || !present {
		return err == nil, err
	}
	return f > 0, nil
}
