package formguard

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/formguard/formguard/pkg/constraint"
	"github.com/formguard/formguard/pkg/dispatch"
	"github.com/formguard/formguard/pkg/messages"
	"github.com/formguard/formguard/pkg/validator"
	"github.com/formguard/formguard/pkg/violation"
)

// Guard is the façade over the validation subsystem: it wires the
// constraint registry, the validator engine, and the message resolver
// into one entry point. A Guard is built once at startup and shared
// across requests.
type Guard struct {
	engine   *validator.Engine
	registry *constraint.Registry
	resolver *messages.Resolver
	logger   *slog.Logger
}

// Option configures a Guard.
type Option func(*Guard)

// WithResolver wires locale-aware message resolution. Without it,
// violations carry each kind's interpolated literal default message.
func WithResolver(r *messages.Resolver) Option {
	return func(g *Guard) {
		g.resolver = r
	}
}

// WithRegistry sets the constraint registry the engine evaluates
// against. Defaults to a registry with all builtin kinds.
func WithRegistry(r *constraint.Registry) Option {
	return func(g *Guard) {
		if r != nil {
			g.registry = r
		}
	}
}

// WithLogger provides a logger for validation diagnostics. A discard
// logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Guard.
func New(opts ...Option) *Guard {
	g := &Guard{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	engineOpts := []validator.Option{validator.WithLogger(g.logger)}
	if g.registry != nil {
		engineOpts = append(engineOpts, validator.WithRegistry(g.registry))
	}
	if g.resolver != nil {
		engineOpts = append(engineOpts, validator.WithResolver(g.resolver))
	}
	g.engine = validator.New(engineOpts...)
	return g
}

// Registry returns the registry in use so applications can register
// custom constraint kinds.
func (g *Guard) Registry() *constraint.Registry {
	return g.engine.Registry()
}

// Validate runs a validation pass and records the outcome in the
// request-scoped set when the Middleware installed one, so downstream
// handlers and templates can query it via Collect.
func (g *Guard) Validate(ctx context.Context, schema *validator.Schema, doc validator.Document) (violation.Set, error) {
	set, err := g.engine.Validate(ctx, schema, doc)
	if err != nil {
		return set, err
	}
	record(ctx, set)
	return set, nil
}

// Dispatch creates an outcome dispatcher for the current request.
func (g *Guard) Dispatch(w http.ResponseWriter, r *http.Request) *dispatch.Dispatcher {
	return dispatch.New(w, r)
}
