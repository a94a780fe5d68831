package formguard

import (
	"context"

	"github.com/formguard/formguard/pkg/violation"
)

type setContextKey struct{}

// WithSet installs a request-scoped violation set into the context.
// Usually done by the Middleware; exposed for tests and non-HTTP
// callers.
func WithSet(ctx context.Context) context.Context {
	return context.WithValue(ctx, setContextKey{}, violation.NewSet())
}

// Collect returns the violations recorded in this request so far.
// Handlers and view templates query it for presentation:
//
//	formguard.Collect(ctx).Errors().From("email").Join(", ")
//	formguard.Collect(ctx).Warnings().From("password").Join("; ")
//
// Returns an empty set when no set was installed.
func Collect(ctx context.Context) violation.Set {
	if s, ok := ctx.Value(setContextKey{}).(*violation.Set); ok {
		return *s
	}
	return nil
}

// record appends a pass outcome to the request-scoped set, if present.
func record(ctx context.Context, set violation.Set) {
	s, ok := ctx.Value(setContextKey{}).(*violation.Set)
	if !ok {
		return
	}
	for _, v := range set {
		s.Add(v)
	}
}
