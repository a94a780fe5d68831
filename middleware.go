package formguard

import "net/http"

// Middleware installs a fresh violation set into each request context,
// scoping recorded violations to one request/response cycle. Pair it
// with messages.Middleware when locale negotiation is wanted:
//
//	r.Use(messages.Middleware(resolver), formguard.Middleware)
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithSet(r.Context())))
	})
}
