package constraint

import (
	"context"
	"time"

	"github.com/formguard/formguard/pkg/violation"
)

// Kind tags a constraint with the validation logic it resolves to in
// the registry (e.g. "required", "size", "past").
type Kind string

// Params carries the declarative parameters of a constraint, such as
// bounds or patterns. Values are exposed to message templates under
// their parameter names.
type Params map[string]any

// Int returns the named parameter coerced to int.
func (p Params) Int(key string) (int, bool) {
	f, ok := floatOf(p[key])
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Float returns the named parameter coerced to float64.
func (p Params) Float(key string) (float64, bool) {
	return floatOf(p[key])
}

// String returns the named parameter as a string.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Time returns the named parameter as a time.Time.
func (p Params) Time(key string) (time.Time, bool) {
	t, ok := p[key].(time.Time)
	return t, ok
}

// Check evaluates a single constraint against a value. A false result
// means the constraint is unmet and a violation should be recorded.
// A non-nil error is a checker fault (broken declaration, failed
// collaborator) and must never be folded into a violation.
type Check func(ctx context.Context, value any, p Params) (bool, error)

// Constraint is a declarative validation rule: a kind tag plus its
// parameters, the message key used for localized resolution, and the
// severity of the violation it produces. Constraints are declared once
// per field and treated as immutable afterwards; the With/As helpers
// return copies.
type Constraint struct {
	Kind       Kind
	Params     Params
	MessageKey string
	Severity   violation.Severity
}

// New creates a constraint of the given kind. The message key defaults
// to "validation.<kind>" and severity to error.
func New(kind Kind, p Params) Constraint {
	return Constraint{
		Kind:       kind,
		Params:     p,
		MessageKey: "validation." + string(kind),
		Severity:   violation.SeverityError,
	}
}

// WithMessageKey overrides the resource bundle key used to resolve the
// violation message.
func (c Constraint) WithMessageKey(key string) Constraint {
	if key != "" {
		c.MessageKey = key
	}
	return c
}

// AsWarning downgrades the produced violation to warning severity.
func (c Constraint) AsWarning() Constraint {
	c.Severity = violation.SeverityWarning
	return c
}

// AsInfo downgrades the produced violation to info severity.
func (c Constraint) AsInfo() Constraint {
	c.Severity = violation.SeverityInfo
	return c
}
