// Package dbcheck provides persistence-backed lookups for exists/unique
// constraints, with PostgreSQL and MongoDB backends and an optional
// Redis-backed cache decorator.
//
// Each backend implements the constraint lookup contract, so it plugs
// directly into constraint.Exists and constraint.Unique:
//
//	lookup, _ := dbcheck.NewPGLookup(pool, dbcheck.ExistsQuery("users", "email"))
//	schema.Field("email", constraint.Unique(lookup))
//
// Note that a lookup observes committed persistence state only: pending
// writes in an open transaction are invisible to it until flushed.
package dbcheck
