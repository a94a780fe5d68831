// Package formguard is a declarative validation subsystem for web
// applications: constraints are declared once per field in a schema, a
// stateless engine evaluates them against request payloads, and the
// resulting violations flow through locale-aware message resolution
// into exactly one recovery outcome per request.
//
// The façade wires the pieces together:
//
//	guard := formguard.New(formguard.WithResolver(resolver))
//
//	schema := validator.NewSchema().
//		Field("email", constraint.Required(), constraint.Email()).
//		Field("password", constraint.MinLength(8))
//
//	set, err := guard.Validate(r.Context(), schema, doc)
//	if err != nil {
//		// checker fault, not a validation failure
//	}
//	if set.HasErrors() {
//		return guard.Dispatch(w, r).Status(set)
//	}
//
// Subpackages:
//
//   - pkg/constraint: constraint kinds, parameters, and the registry
//   - pkg/violation: the violation model and the error collector
//   - pkg/validator: schema declaration and the evaluation engine
//   - pkg/messages: locale bundles and template interpolation
//   - pkg/dispatch: terminal per-request outcome dispatching
//   - pkg/dbcheck: persistence-backed lookups for exists/unique
package formguard
