package constraint

import (
	"context"
	"fmt"
)

// Lookup-backed constraint kinds. These depend on an injected
// collaborator that can answer whether a value is already known to a
// backing store.
const (
	KindExists Kind = "exists"
	KindUnique Kind = "unique"
)

// Lookup answers whether a value exists in an external store. A lookup
// failure (connection lost, query error) is a fault and must be
// returned as an error, never encoded as a false result.
type Lookup interface {
	Lookup(ctx context.Context, value any) (bool, error)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(ctx context.Context, value any) (bool, error)

func (f LookupFunc) Lookup(ctx context.Context, value any) (bool, error) {
	return f(ctx, value)
}

func registerLookupKinds(r *Registry) {
	r.MustRegister(KindExists, checkExists, "must reference an existing record")
	r.MustRegister(KindUnique, checkUnique, "is already taken")
}

// Exists declares that a value must be present in the backing store,
// typically a foreign reference.
func Exists(l Lookup) Constraint {
	return New(KindExists, Params{"lookup": l})
}

// Unique declares that a value must not yet be present in the backing
// store. Note that observing persistence-level state may require the
// caller to flush pending writes before validating.
func Unique(l Lookup) Constraint {
	return New(KindUnique, Params{"lookup": l})
}

func lookupOf(p Params) (Lookup, error) {
	l, ok := p["lookup"].(Lookup)
	if !ok || l == nil {
		return nil, ErrMissingLookup
	}
	return l, nil
}

func checkExists(ctx context.Context, value any, p Params) (bool, error) {
	l, err := lookupOf(p)
	if err != nil {
		return false, err
	}
	if isNil(value) {
		return true, nil
	}

	found, err := l.Lookup(ctx, value)
	if err != nil {
		return false, fmt.Errorf("exists lookup: %w", err)
	}
	return found, nil
}

func checkUnique(ctx context.Context, value any, p Params) (bool, error) {
	l, err := lookupOf(p)
	if err != nil {
		return false, err
	}
	if isNil(value) {
		return true, nil
	}

	found, err := l.Lookup(ctx, value)
	if err != nil {
		return false, fmt.Errorf("unique lookup: %w", err)
	}
	return !found, nil
}
