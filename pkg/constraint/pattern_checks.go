package constraint

import (
	"context"
	"fmt"
	"regexp"
	"sync"
)

// Pattern constraint kinds.
const (
	KindPattern Kind = "pattern"
	KindEmail   Kind = "email"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// patternCache holds compiled regexes keyed by pattern source so a
// schema validated per request does not recompile on every pass.
var patternCache sync.Map

func registerPatternKinds(r *Registry) {
	r.MustRegister(KindPattern, checkPattern, "must match the {description} format")
	r.MustRegister(KindEmail, checkEmail, "must be a valid email address")
}

// Pattern declares a custom regular expression constraint. The
// description names the expected format in messages ("postal code",
// "username", ...). Invalid patterns surface as checker faults at
// evaluation time, not at declaration time.
func Pattern(pattern, description string) Constraint {
	return New(KindPattern, Params{"pattern": pattern, "description": description})
}

// Email declares that a string must look like an email address.
func Email() Constraint {
	return New(KindEmail, nil)
}

func compiledPattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

func checkPattern(_ context.Context, value any, p Params) (bool, error) {
	pattern, ok := p.String("pattern")
	if !ok || pattern == "" {
		return false, fmt.Errorf("%w: pattern", ErrMissingParam)
	}
	if isNil(value) {
		return true, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindPattern, value)
	}
	if s == "" {
		return true, nil
	}

	re, err := compiledPattern(pattern)
	if err != nil {
		return false, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re.MatchString(s), nil
}

func checkEmail(_ context.Context, value any, _ Params) (bool, error) {
	if isNil(value) {
		return true, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return false, fmt.Errorf("%w: %s on %T", ErrTypeMismatch, KindEmail, value)
	}
	if s == "" {
		return true, nil
	}
	return emailRegex.MatchString(s), nil
}
