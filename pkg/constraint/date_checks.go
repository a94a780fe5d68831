package constraint

import (
	"context"
	"fmt"
	"time"
)

// Date constraint kinds.
const (
	KindPast   Kind = "past"
	KindFuture Kind = "future"
	KindBefore Kind = "before"
	KindAfter  Kind = "after"
)

func registerDateKinds(r *Registry) {
	r.MustRegister(KindPast, checkPast, "must be a date in the past")
	r.MustRegister(KindFuture, checkFuture, "must be a date in the future")
	r.MustRegister(KindBefore, checkBefore, "must be before {before}")
	r.MustRegister(KindAfter, checkAfter, "must be after {after}")
}

// Past declares that a date must lie before the current time.
func Past() Constraint {
	return New(KindPast, nil)
}

// Future declares that a date must lie after the current time.
func Future() Constraint {
	return New(KindFuture, nil)
}

// Before declares an exclusive upper bound on a date. The bound is
// exposed to message templates in "2006-01-02" form.
func Before(bound time.Time) Constraint {
	return New(KindBefore, Params{"bound": bound, "before": bound.Format("2006-01-02")})
}

// After declares an exclusive lower bound on a date.
func After(bound time.Time) Constraint {
	return New(KindAfter, Params{"bound": bound, "after": bound.Format("2006-01-02")})
}

func dateValue(kind Kind, value any) (time.Time, bool, error) {
	if isNil(value) {
		return time.Time{}, false, nil
	}

	t, ok := timeOf(value)
	if !ok {
		return time.Time{}, false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, kind, value)
	}
	return t, true, nil
}

func checkPast(_ context.Context, value any, _ Params) (bool, error) {
	t, present, err := dateValue(KindPast, value)
	if err != nil || !present {
		return err == nil, err
	}
	return t.Before(time.Now()), nil
}

func checkFuture(_ context.Context, value any, _ Params) (bool, error) {
	t, present, err := dateValue(KindFuture, value)
	if err != nil || !present {
		return err == nil, err
	}
	return t.After(time.Now()), nil
}

func checkBefore(_ context.Context, value any, p Params) (bool, error) {
	bound, ok := p.Time("bound")
	if !ok {
		return false, fmt.Errorf("%w: bound", ErrMissingParam)
	}

	t, present, err := dateValue(KindBefore, value)
	if err != nil || !present {
		return err == nil, err
	}
	return t.Before(bound), nil
}

func checkAfter(_ context.Context, value any, p Params) (bool, error) {
	bound, ok := p.Time("bound")
	if !ok {
		return false, fmt.Errorf("%w: bound", ErrMissingParam)
	}

	t, present, err := dateValue(KindAfter, value)
	if err != nil || !present {
		return err == nil, err
	}
	return t.After(bound), nil
}
