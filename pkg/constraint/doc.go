// Package constraint provides the declarative constraint model and the
// registry that maps constraint kinds to validation logic and default
// message templates.
//
// A Constraint is a kind tag ("required", "size", "past", ...) plus its
// parameters, declared once per field through explicit constructors and
// immutable afterwards. Instead of reflection-based annotations,
// constraints are attached to fields via configuration structs at
// schema-declaration time (see the validator package).
//
// # Registry
//
// NewRegistry returns a registry carrying all builtin kinds. Custom
// kinds register a Check function together with a literal default
// template used when no resource bundle entry resolves:
//
//	reg := constraint.NewRegistry()
//	reg.MustRegister("iban", checkIBAN, "must be a valid IBAN")
//
// Check functions report unmet constraints as a false result. A non-nil
// error is reserved for faults: a broken declaration, an incompatible
// value type, or a failed collaborator. Faults propagate to the caller
// as errors; they are never converted into violations.
//
// # Injected collaborators
//
// Constraints that depend on external state, such as uniqueness checks
// against a database, receive their collaborator explicitly:
//
//	constraint.Unique(dbcheck.NewPGLookup(pool, "users", "email"))
//
// # Empty values
//
// Only the required and accepted kinds fail on absent values; all other
// kinds pass vacuously on nil or empty input so that optionality stays
// a separate, explicit declaration.
package constraint
