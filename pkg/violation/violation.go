package violation

import "fmt"

// Severity classifies the presentational intent of a violation.
type Severity int

const (
	// SeverityError marks a violation that must block successful completion.
	SeverityError Severity = iota
	// SeverityWarning marks a violation that should be surfaced but does not block.
	SeverityWarning
	// SeverityInfo marks an informational notice attached to a field.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Violation is the result of a single failed constraint check.
// Category is the dotted field path the violation belongs to
// (e.g. "user.email"). Violations are plain data, never panics
// or control flow.
type Violation struct {
	Category string
	Kind     string
	Message  string
	Severity Severity
}

// New creates an error-severity violation.
func New(category, kind, message string) Violation {
	return Violation{
		Category: category,
		Kind:     kind,
		Message:  message,
		Severity: SeverityError,
	}
}

// Warn creates a warning-severity violation.
func Warn(category, kind, message string) Violation {
	v := New(category, kind, message)
	v.Severity = SeverityWarning
	return v
}

// Info creates an info-severity violation.
func Info(category, kind, message string) Violation {
	v := New(category, kind, message)
	v.Severity = SeverityInfo
	return v
}
