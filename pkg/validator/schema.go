package validator

import "github.com/formguard/formguard/pkg/constraint"

// Binding attaches an ordered list of constraints to one field. The
// field name doubles as the violation category, so nested fields use
// dotted paths ("address.city").
type Binding struct {
	Field       string
	Constraints []constraint.Constraint
}

// Schema is an ordered set of field bindings, declared once and
// immutable during validation passes.
type Schema struct {
	bindings []Binding
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Field appends a binding and returns the schema for chaining:
//
//	schema := validator.NewSchema().
//		Field("email", constraint.Required(), constraint.Email()).
//		Field("age", constraint.Min(18))
func (s *Schema) Field(name string, cs ...constraint.Constraint) *Schema {
	s.bindings = append(s.bindings, Binding{Field: name, Constraints: cs})
	return s
}

// Bindings returns the declared bindings in declaration order.
func (s *Schema) Bindings() []Binding {
	return s.bindings
}

// Document supplies field values to a validation pass. Value reports
// the value and whether the field is present; absent fields are
// validated as nil.
type Document interface {
	Value(field string) (any, bool)
}

// MapDocument adapts a plain map to the Document interface, the common
// case for decoded form and JSON payloads.
type MapDocument map[string]any

func (d MapDocument) Value(field string) (any, bool) {
	v, ok := d[field]
	return v, ok
}

// DocumentFunc adapts a function to the Document interface.
type DocumentFunc func(field string) (any, bool)

func (f DocumentFunc) Value(field string) (any, bool) {
	return f(field)
}
