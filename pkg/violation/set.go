package violation

import (
	"errors"
	"fmt"
	"strings"
)

// Set is an ordered collection of violations. The zero value is ready
// to use. Set implements the error interface so a whole validation pass
// can be returned as a single error value.
type Set []Violation

// NewSet creates an empty violation set.
func NewSet() *Set {
	return &Set{}
}

// Error implements the error interface by summarizing all violations.
func (s Set) Error() string {
	if len(s) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, v := range s {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Category, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation, preserving collection order.
func (s *Set) Add(v Violation) {
	*s = append(*s, v)
}

// AddIf appends the violation only when cond is true.
func (s *Set) AddIf(cond bool, v Violation) {
	if cond {
		s.Add(v)
	}
}

// Ensure appends the violation only when cond is false. It reads as
// "ensure this condition holds, otherwise record the violation".
func (s *Set) Ensure(cond bool, v Violation) {
	if !cond {
		s.Add(v)
	}
}

// From returns the violations whose category equals the argument,
// in collection order.
func (s Set) From(category string) Set {
	var out Set
	for _, v := range s {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// Join concatenates the messages of all violations in collection order
// using the given separator.
func (s Set) Join(sep string) string {
	if len(s) == 0 {
		return ""
	}

	parts := make([]string, 0, len(s))
	for _, v := range s {
		parts = append(parts, v.Message)
	}
	return strings.Join(parts, sep)
}

// Errors returns only the error-severity violations.
func (s Set) Errors() Set {
	return s.filter(SeverityError)
}

// Warnings returns only the warning-severity violations.
func (s Set) Warnings() Set {
	return s.filter(SeverityWarning)
}

// Infos returns only the info-severity violations.
func (s Set) Infos() Set {
	return s.filter(SeverityInfo)
}

func (s Set) filter(sev Severity) Set {
	var out Set
	for _, v := range s {
		if v.Severity == sev {
			out = append(out, v)
		}
	}
	return out
}

// HasErrors reports whether the set contains at least one
// error-severity violation. Warnings and infos alone do not
// suppress successful completion.
func (s Set) HasErrors() bool {
	for _, v := range s {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Has reports whether any violation exists for the category.
func (s Set) Has(category string) bool {
	for _, v := range s {
		if v.Category == category {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in first-seen order.
func (s Set) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range s {
		if !seen[v.Category] {
			out = append(out, v.Category)
			seen[v.Category] = true
		}
	}
	return out
}

// Messages returns a category-to-messages map suitable for structured
// API responses.
func (s Set) Messages() map[string][]string {
	if len(s) == 0 {
		return nil
	}

	out := make(map[string][]string)
	for _, v := range s {
		out[v.Category] = append(out[v.Category], v.Message)
	}
	return out
}

// IsEmpty returns true if the set holds no violations of any severity.
func (s Set) IsEmpty() bool {
	return len(s) == 0
}

// Extract pulls a violation set out of an error chain. Returns nil when
// the error does not carry one.
func Extract(err error) Set {
	if err == nil {
		return nil
	}

	var set Set
	if errors.As(err, &set) {
		return set
	}
	return nil
}

// IsViolation reports whether the error carries a violation set.
func IsViolation(err error) bool {
	return Extract(err) != nil
}
