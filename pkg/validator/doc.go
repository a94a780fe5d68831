// Package validator implements the validation engine: it walks a
// schema's declared constraints against a document and collects
// violations.
//
// Schemas attach constraints to fields through explicit configuration,
// no struct tags or reflection metadata:
//
//	schema := validator.NewSchema().
//	    Field("user.email", constraint.Required(), constraint.Email()).
//	    Field("user.name", constraint.Required(), constraint.Size(2, 30)).
//	    Field("user.age", constraint.Range(18, 130))
//
//	engine := validator.New(validator.WithResolver(resolver))
//	set, err := engine.Validate(ctx, schema, validator.MapDocument{
//	    "user.email": "a@b.co",
//	    "user.name":  "x",
//	    "user.age":   17,
//	})
//
// Evaluation order follows declaration order, making violation order
// deterministic per run. Unmet constraints become violations; checker
// faults (unknown kinds, failed lookup collaborators) come back as
// errors and never masquerade as violations.
package validator
