package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/formguard/formguard/pkg/constraint"
	"github.com/formguard/formguard/pkg/messages"
	"github.com/formguard/formguard/pkg/violation"
)

// Engine evaluates a schema's constraints against a document and
// collects the resulting violations. Engines are stateless between
// passes and safe for concurrent use.
type Engine struct {
	registry *constraint.Registry
	resolver *messages.Resolver
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the constraint registry. Defaults to a registry
// with all builtin kinds.
func WithRegistry(r *constraint.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithResolver wires locale-aware message resolution. Without a
// resolver the engine interpolates each kind's literal default
// template, so messages are always produced.
func WithResolver(r *messages.Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithLogger provides a logger for pass diagnostics. A discard logger
// is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine.
func New(options ...Option) *Engine {
	e := &Engine{
		registry: constraint.NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Registry returns the engine's constraint registry so applications can
// register custom kinds on it.
func (e *Engine) Registry() *constraint.Registry {
	return e.registry
}

// Validate evaluates every constraint of every binding, in declaration
// order, and returns the collected violations. Constraints are
// evaluated independently: one unmet constraint does not short-circuit
// the rest of the field or the pass.
//
// The returned error is reserved for faults: an unknown constraint
// kind or a checker failure (for example a lost database connection
// behind a unique constraint). Violations collected before a fault are
// returned alongside the error for diagnostics; callers must treat the
// pass as failed.
//
// The message locale is taken from ctx (see messages.WithLocale); a nil
// document validates every field as absent.
func (e *Engine) Validate(ctx context.Context, schema *Schema, doc Document) (violation.Set, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if doc == nil {
		doc = MapDocument(nil)
	}

	locale := messages.LocaleFromContext(ctx)

	var set violation.Set
	for _, binding := range schema.bindings {
		value, _ := doc.Value(binding.Field)

		for _, c := range binding.Constraints {
			check, template, ok := e.registry.Lookup(c.Kind)
			if !ok {
				return set, fmt.Errorf("%w: %q on field %q", ErrUnknownKind, c.Kind, binding.Field)
			}

			met, err := check(ctx, value, c.Params)
			if err != nil {
				return set, errors.Join(
					ErrCheckFailed,
					fmt.Errorf("constraint %q on field %q: %w", c.Kind, binding.Field, err),
				)
			}
			if met {
				continue
			}

			set.Add(violation.Violation{
				Category: binding.Field,
				Kind:     string(c.Kind),
				Message:  e.message(locale, c, template, binding.Field, value),
				Severity: c.Severity,
			})
		}
	}

	if !set.IsEmpty() {
		e.logger.DebugContext(ctx, "validation pass produced violations",
			"violations", len(set),
			"categories", set.Categories(),
		)
	}
	return set, nil
}

// message resolves the violation message for one unmet constraint.
// Constraint parameters, the field name, and the validated value are
// all exposed to the template.
func (e *Engine) message(locale string, c constraint.Constraint, template, field string, value any) string {
	params := make(map[string]any, len(c.Params)+2)
	for k, v := range c.Params {
		params[k] = v
	}
	params["field"] = field
	params[messages.ValidatedValueParam] = value

	if e.resolver != nil {
		return e.resolver.ResolveDefault(locale, c.MessageKey, template, params)
	}
	return messages.Interpolate(template, params)
}
